package render

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// LabelFaces 按钮文字字体（普通 / 紧凑）
type LabelFaces struct {
	Normal  *text.GoTextFace
	Compact *text.GoTextFace
}

// NewLabelFaces 使用内置 Go Regular 字体创建两种字号的字体
//
// 参数：
//   - normalSize: 普通文字字号
//   - compactSize: 紧凑文字字号
func NewLabelFaces(normalSize, compactSize float64) (LabelFaces, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return LabelFaces{}, fmt.Errorf("failed to create label font source: %w", err)
	}

	return LabelFaces{
		Normal: &text.GoTextFace{
			Source:    source,
			Size:      normalSize,
			Direction: text.DirectionLeftToRight,
		},
		Compact: &text.GoTextFace{
			Source:    source,
			Size:      compactSize,
			Direction: text.DirectionLeftToRight,
		},
	}, nil
}

// EbitenRenderer 把绘制指令画到 ebiten.Image 上
//
// 颜色通过调色板按名字解析；未知颜色名回退到 ColorForegroundStrong
// （调色板中也没有时回退为白色），并只记录一次警告。
type EbitenRenderer struct {
	dst     *ebiten.Image
	palette Palette
	faces   LabelFaces

	current  color.Color
	saved    color.Color
	hasSaved bool

	warned map[ColorName]bool
}

// NewEbitenRenderer 创建 ebiten 渲染器
// 绘制目标需在每帧 Draw 中通过 SetTarget 设置
func NewEbitenRenderer(palette Palette, faces LabelFaces) *EbitenRenderer {
	r := &EbitenRenderer{
		palette: palette,
		faces:   faces,
		warned:  make(map[ColorName]bool),
	}
	r.current = r.resolve(ColorForegroundStrong)
	return r
}

// SetTarget 设置绘制目标（通常是 Game.Draw 的 screen）
func (r *EbitenRenderer) SetTarget(dst *ebiten.Image) {
	r.dst = dst
}

// CurrentColor 返回当前颜色
func (r *EbitenRenderer) CurrentColor() color.Color {
	return r.current
}

func (r *EbitenRenderer) DrawRect(x, y, w, h float64) {
	if r.dst == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(r.dst, float32(x), float32(y), float32(w), float32(h), r.current, false)
}

func (r *EbitenRenderer) DrawText(s string, x, y float64, opts TextOptions) {
	if r.dst == nil || s == "" {
		return
	}

	face := r.faces.Normal
	if opts.Compact && r.faces.Compact != nil {
		face = r.faces.Compact
	}
	if face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(r.current)
	text.Draw(r.dst, s, face, op)
}

func (r *EbitenRenderer) SetColor(name ColorName) {
	r.current = r.resolve(name)
}

// SaveColor 保存当前颜色（栈深度 1，再次保存会覆盖）
func (r *EbitenRenderer) SaveColor() {
	r.saved = r.current
	r.hasSaved = true
}

// RestoreColor 恢复最近一次保存的颜色
func (r *EbitenRenderer) RestoreColor() {
	if !r.hasSaved {
		return
	}
	r.current = r.saved
	r.hasSaved = false
}

func (r *EbitenRenderer) resolve(name ColorName) color.Color {
	if c, ok := r.palette[name]; ok {
		return c
	}
	if !r.warned[name] {
		r.warned[name] = true
		log.Printf("[EbitenRenderer] Warning: unknown color %q, using foreground", name)
	}
	if c, ok := r.palette[ColorForegroundStrong]; ok {
		return c
	}
	return color.White
}
