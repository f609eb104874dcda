package systems

import (
	"github.com/decker502/ebbutton/pkg/types"
	"github.com/decker502/ebbutton/pkg/utils"
)

// PointerInput 按钮系统的指针输入接口
// 用于依赖注入，支持测试时 mock
//
// JustPressed/JustReleased 是边沿触发：只在发生变化的那一帧为 true
type PointerInput interface {
	Position() types.Vector2
	IsJustPressed() bool
	IsJustReleased() bool
}

// PointerState 单帧指针状态快照（值类型实现）
type PointerState struct {
	Pos          types.Vector2
	JustPressed  bool
	JustReleased bool
}

func (p PointerState) Position() types.Vector2 { return p.Pos }

func (p PointerState) IsJustPressed() bool { return p.JustPressed }

func (p PointerState) IsJustReleased() bool { return p.JustReleased }

// EbitenPointerInput Ebitengine 默认实现
// 每帧调用一次 Poll，同一帧内多次读取结果一致
type EbitenPointerInput struct {
	frame utils.PointerFrame
}

// NewEbitenPointerInput 创建 Ebitengine 指针输入
func NewEbitenPointerInput() *EbitenPointerInput {
	return &EbitenPointerInput{}
}

// Poll 轮询鼠标/触摸状态，应在 Game.Update 开始时调用
func (p *EbitenPointerInput) Poll() {
	p.frame = utils.PollPointer()
}

func (p *EbitenPointerInput) Position() types.Vector2 {
	return types.Vec2(float64(p.frame.X), float64(p.frame.Y))
}

func (p *EbitenPointerInput) IsJustPressed() bool {
	return p.frame.JustPressed
}

func (p *EbitenPointerInput) IsJustReleased() bool {
	return p.frame.JustReleased
}
