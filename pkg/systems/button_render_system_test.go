package systems

import (
	"reflect"
	"testing"

	"github.com/decker502/ebbutton/pkg/components"
	"github.com/decker502/ebbutton/pkg/entities"
	"github.com/decker502/ebbutton/pkg/render"
	"github.com/decker502/ebbutton/pkg/types"
)

// TestDrawButton 测试各状态下的绘制指令序列
func TestDrawButton(t *testing.T) {
	base := func(mode components.ButtonMode) *components.ButtonComponent {
		return entities.NewButton(entities.ButtonConfig{
			Position: types.Vec2(10, 20),
			Size:     types.Vec2(30, 15),
			Label:    "Go",
			Mode:     mode,
		})
	}

	fill := func(c render.ColorName) []render.Command {
		return []render.Command{
			{Op: render.OpSaveColor},
			{Op: render.OpSetColor, Color: c},
			{Op: render.OpDrawRect, X: 10, Y: 20, W: 30, H: 15},
		}
	}
	mask := []render.Command{
		{Op: render.OpSetColor, Color: render.ColorMask},
		{Op: render.OpDrawRect, X: 11, Y: 21, W: 28, H: 13},
	}
	label := func(c render.ColorName) []render.Command {
		return []render.Command{
			{Op: render.OpSetColor, Color: c},
			{Op: render.OpDrawText, X: 13, Y: 23, Text: "Go", Compact: true},
			{Op: render.OpRestoreColor},
		}
	}
	concat := func(parts ...[]render.Command) []render.Command {
		var out []render.Command
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	}

	tests := []struct {
		name   string
		button func() *components.ButtonComponent
		want   []render.Command
	}{
		{
			name:   "普通按钮常态",
			button: func() *components.ButtonComponent { return base(components.ButtonModeMomentary) },
			want:   concat(fill(render.ColorAccentWeak), label(render.ColorAccentStrong)),
		},
		{
			name: "普通按钮按下且悬停",
			button: func() *components.ButtonComponent {
				b := base(components.ButtonModeMomentary)
				b.Pressed, b.Hovered = true, true
				return b
			},
			want: concat(fill(render.ColorAccentStrong), label(render.ColorForegroundStrong)),
		},
		{
			name:   "切换按钮未选中",
			button: func() *components.ButtonComponent { return base(components.ButtonModeToggle) },
			want:   concat(fill(render.ColorAccentWeak), mask, label(render.ColorAccentStrong)),
		},
		{
			name: "切换按钮已选中",
			button: func() *components.ButtonComponent {
				b := base(components.ButtonModeToggle)
				b.Selected = true
				return b
			},
			want: concat(fill(render.ColorAccentWeak), label(render.ColorAccentStrong)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := render.NewCommandBuffer()
			DrawButton(buf, tt.button())
			if !reflect.DeepEqual(buf.Commands(), tt.want) {
				t.Errorf("commands = %+v\nwant %+v", buf.Commands(), tt.want)
			}
		})
	}
}

// TestDrawButton_Idempotent 状态不变时两次绘制的指令完全相同且颜色栈配对
func TestDrawButton_Idempotent(t *testing.T) {
	compact := false
	button := entities.NewButton(entities.ButtonConfig{
		Position:     types.Vec2(0, 0),
		Size:         types.Vec2(10, 10),
		Label:        "X",
		Mode:         components.ButtonModeToggle,
		CompactLabel: &compact,
	})
	button.Hovered = true

	first := render.NewCommandBuffer()
	second := render.NewCommandBuffer()
	DrawButton(first, button)
	DrawButton(second, button)

	if !reflect.DeepEqual(first.Commands(), second.Commands()) {
		t.Error("draw is not idempotent")
	}
	if !first.ColorBalanced() {
		t.Error("save/restore not balanced")
	}
	for _, c := range first.Commands() {
		if c.Op == render.OpDrawText && c.Compact {
			t.Error("label should use the normal face when CompactLabel is false")
		}
	}
}
