// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerFrame 单帧指针状态
// 同时支持鼠标左键和触摸输入，触摸优先
type PointerFrame struct {
	// 指针位置（屏幕坐标）
	X, Y int
	// 本帧刚按下
	JustPressed bool
	// 本帧刚释放
	JustReleased bool
	// 是否为触摸输入
	IsTouch bool
}

// 保存最后一次触摸位置（触摸释放后 TouchPosition 不再可用）
var lastTouchX, lastTouchY int

// PollPointer 轮询当前帧的指针状态
// 应在每帧 Update 开始时调用一次
func PollPointer() PointerFrame {
	frame := PointerFrame{}

	// 活动的触摸：更新位置
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		frame.X, frame.Y = lastTouchX, lastTouchY
		frame.IsTouch = true
	}

	// 触摸按下
	if pressed := inpututil.AppendJustPressedTouchIDs(nil); len(pressed) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(pressed[0])
		frame.X, frame.Y = lastTouchX, lastTouchY
		frame.JustPressed = true
		frame.IsTouch = true
	}

	// 触摸释放时使用保存的最后触摸位置
	if released := inpututil.AppendJustReleasedTouchIDs(nil); len(released) > 0 {
		frame.X, frame.Y = lastTouchX, lastTouchY
		frame.JustReleased = true
		frame.IsTouch = true
	}

	if frame.IsTouch {
		return frame
	}

	// 鼠标输入（桌面设备）
	frame.X, frame.Y = ebiten.CursorPosition()
	frame.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	frame.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return frame
}
