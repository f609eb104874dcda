// Package render 定义按钮绘制所需的最小渲染接口及其实现
//
// 按钮只通过 Renderer 发出绘制指令，不直接依赖 ebiten.Image，
// 因此交互系统可以在 Update 中录制指令，在 Draw 中回放。
package render

import "image/color"

// ColorName 颜色名（语义角色），由调色板解析为实际颜色
type ColorName string

const (
	// ColorAccentStrong 强调色：按下时的填充色、未悬停时的文字色
	ColorAccentStrong ColorName = "accent_strong"
	// ColorAccentWeak 弱强调色：常态填充色
	ColorAccentWeak ColorName = "accent_weak"
	// ColorMask 遮罩色：未选中切换按钮的内部"镂空"色
	ColorMask ColorName = "mask"
	// ColorForegroundStrong 前景色：悬停时的文字色
	ColorForegroundStrong ColorName = "foreground_strong"
)

// AllColorNames 按钮绘制使用的全部颜色名
var AllColorNames = []ColorName{
	ColorAccentStrong,
	ColorAccentWeak,
	ColorMask,
	ColorForegroundStrong,
}

// Palette 颜色名到实际颜色的映射
type Palette map[ColorName]color.Color

// TextOptions 文字绘制选项
type TextOptions struct {
	// Compact 使用小号字体
	Compact bool
}

// Renderer 绘制指令接收者
//
// 当前颜色栈深度为 1：SaveColor 保存当前颜色，RestoreColor 恢复。
// 实现不得返回错误，绘制失败时静默忽略。
type Renderer interface {
	DrawRect(x, y, w, h float64)
	DrawText(s string, x, y float64, opts TextOptions)
	SetColor(name ColorName)
	SaveColor()
	RestoreColor()
}
