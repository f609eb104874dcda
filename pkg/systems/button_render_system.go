package systems

import (
	"github.com/decker502/ebbutton/pkg/components"
	"github.com/decker502/ebbutton/pkg/render"
)

const (
	// buttonMaskInset 未选中切换按钮的镂空内缩（像素）
	buttonMaskInset = 1
	// buttonLabelOffset 文字相对按钮左上角的偏移（像素）
	buttonLabelOffset = 3
)

// DrawButton 发出单个按钮的绘制指令
//
// 颜色修改是事务性的：开始时保存当前颜色，结束时恢复。
//
// 指令顺序：
//  1. 保存颜色
//  2. 整个矩形：按下 → 强调色，否则 → 弱强调色
//  3. 未选中的切换按钮：内缩 1 像素的遮罩矩形
//  4. 文字 (+3,+3)：悬停 → 前景色，否则 → 强调色
//  5. 恢复颜色
func DrawButton(r render.Renderer, button *components.ButtonComponent) {
	r.SaveColor()

	if button.Pressed {
		r.SetColor(render.ColorAccentStrong)
	} else {
		r.SetColor(render.ColorAccentWeak)
	}
	r.DrawRect(button.Position.X, button.Position.Y, button.Size.X, button.Size.Y)

	if button.IsToggle() && !button.Selected {
		r.SetColor(render.ColorMask)
		r.DrawRect(
			button.Position.X+buttonMaskInset,
			button.Position.Y+buttonMaskInset,
			button.Size.X-2*buttonMaskInset,
			button.Size.Y-2*buttonMaskInset,
		)
	}

	if button.Hovered {
		r.SetColor(render.ColorForegroundStrong)
	} else {
		r.SetColor(render.ColorAccentStrong)
	}
	r.DrawText(button.Label,
		button.Position.X+buttonLabelOffset,
		button.Position.Y+buttonLabelOffset,
		render.TextOptions{Compact: button.CompactLabel},
	)

	r.RestoreColor()
}
