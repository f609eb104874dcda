package render

import (
	"image/color"
	"reflect"
	"testing"
)

func recordSample(r Renderer) {
	r.SaveColor()
	r.SetColor(ColorAccentWeak)
	r.DrawRect(1, 2, 3, 4)
	r.SetColor(ColorForegroundStrong)
	r.DrawText("OK", 4, 5, TextOptions{Compact: true})
	r.RestoreColor()
}

// TestCommandBuffer_Record 测试指令录制
func TestCommandBuffer_Record(t *testing.T) {
	buf := NewCommandBuffer()
	recordSample(buf)

	want := []Command{
		{Op: OpSaveColor},
		{Op: OpSetColor, Color: ColorAccentWeak},
		{Op: OpDrawRect, X: 1, Y: 2, W: 3, H: 4},
		{Op: OpSetColor, Color: ColorForegroundStrong},
		{Op: OpDrawText, X: 4, Y: 5, Text: "OK", Compact: true},
		{Op: OpRestoreColor},
	}
	if !reflect.DeepEqual(buf.Commands(), want) {
		t.Errorf("Commands() = %+v, want %+v", buf.Commands(), want)
	}
	if !buf.ColorBalanced() {
		t.Error("ColorBalanced() = false, want true")
	}
}

// TestCommandBuffer_Replay 回放后指令序列应与原序列一致
func TestCommandBuffer_Replay(t *testing.T) {
	src := NewCommandBuffer()
	recordSample(src)

	dst := NewCommandBuffer()
	src.Replay(dst)

	if !reflect.DeepEqual(src.Commands(), dst.Commands()) {
		t.Errorf("Replay mismatch: got %+v, want %+v", dst.Commands(), src.Commands())
	}
}

func TestCommandBuffer_Reset(t *testing.T) {
	buf := NewCommandBuffer()
	recordSample(buf)
	buf.Reset()

	if buf.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", buf.Len())
	}
}

// TestCommandBuffer_ColorBalanced 测试颜色栈配对检测
func TestCommandBuffer_ColorBalanced(t *testing.T) {
	tests := []struct {
		name     string
		ops      func(r Renderer)
		expected bool
	}{
		{name: "空", ops: func(r Renderer) {}, expected: true},
		{name: "未恢复", ops: func(r Renderer) { r.SaveColor() }, expected: false},
		{name: "多余恢复", ops: func(r Renderer) { r.RestoreColor() }, expected: false},
		{name: "嵌套保存", ops: func(r Renderer) {
			r.SaveColor()
			r.SaveColor()
			r.RestoreColor()
			r.RestoreColor()
		}, expected: false},
		{name: "连续两次配对", ops: func(r Renderer) {
			r.SaveColor()
			r.RestoreColor()
			r.SaveColor()
			r.RestoreColor()
		}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewCommandBuffer()
			tt.ops(buf)
			if got := buf.ColorBalanced(); got != tt.expected {
				t.Errorf("ColorBalanced() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestEbitenRenderer_ColorStack 测试颜色保存/恢复（不需要绘制目标）
func TestEbitenRenderer_ColorStack(t *testing.T) {
	blue := color.RGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}
	black := color.RGBA{R: 0x61, G: 0x61, B: 0x61, A: 0xff}
	r := NewEbitenRenderer(Palette{
		ColorAccentStrong:     blue,
		ColorForegroundStrong: black,
	}, LabelFaces{})

	if r.CurrentColor() != black {
		t.Fatalf("initial color = %v, want foreground", r.CurrentColor())
	}

	r.SaveColor()
	r.SetColor(ColorAccentStrong)
	if r.CurrentColor() != blue {
		t.Errorf("after SetColor = %v, want %v", r.CurrentColor(), blue)
	}
	// 没有目标时绘制是空操作
	r.DrawRect(0, 0, 10, 10)
	r.DrawText("x", 0, 0, TextOptions{})
	r.RestoreColor()

	if r.CurrentColor() != black {
		t.Errorf("after RestoreColor = %v, want %v", r.CurrentColor(), black)
	}

	// 未保存时恢复不改变颜色
	r.SetColor(ColorAccentStrong)
	r.RestoreColor()
	if r.CurrentColor() != blue {
		t.Errorf("RestoreColor without save changed color to %v", r.CurrentColor())
	}
}

// TestEbitenRenderer_UnknownColor 未知颜色名回退到前景色
func TestEbitenRenderer_UnknownColor(t *testing.T) {
	black := color.RGBA{R: 0x61, G: 0x61, B: 0x61, A: 0xff}
	r := NewEbitenRenderer(Palette{ColorForegroundStrong: black}, LabelFaces{})

	r.SetColor(ColorName("no_such_color"))
	if r.CurrentColor() != black {
		t.Errorf("unknown color resolved to %v, want %v", r.CurrentColor(), black)
	}

	empty := NewEbitenRenderer(Palette{}, LabelFaces{})
	if empty.CurrentColor() != color.White {
		t.Errorf("empty palette color = %v, want white", empty.CurrentColor())
	}
}
