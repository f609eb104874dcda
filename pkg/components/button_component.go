package components

import (
	"github.com/decker502/ebbutton/pkg/ecs"
	"github.com/decker502/ebbutton/pkg/types"
)

// ButtonMode 按钮模式
type ButtonMode int

const (
	// ButtonModeMomentary 普通按钮：释放时触发，不保留选中状态
	ButtonModeMomentary ButtonMode = iota
	// ButtonModeToggle 切换按钮：参与互斥组，保留 Selected 状态
	ButtonModeToggle
)

// String 返回按钮模式的字符串表示
func (m ButtonMode) String() string {
	switch m {
	case ButtonModeToggle:
		return "toggle"
	default:
		return "momentary"
	}
}

// Activator 按钮点击能力
// 每次有效释放恰好调用一次 Activate
type Activator interface {
	Activate()
}

// ActivatorFunc 将普通函数适配为 Activator
type ActivatorFunc func()

// Activate 调用函数本身
func (f ActivatorFunc) Activate() {
	f()
}

// NopActivator 空操作，按钮未配置回调时使用
var NopActivator Activator = ActivatorFunc(func() {})

// ButtonComponent 按钮组件（ECS 架构）
// 描述一个可点击的矩形区域
//
// 设计原则：
//   - 纯数据组件，交互逻辑在 systems.ButtonSystem 中
//   - Position/Size/Label/Mode/OnActivate 创建后视为不可变
//   - Pressed/Selected/Hovered 由交互系统每帧更新
type ButtonComponent struct {
	// ===== 几何 =====
	// Position 左上角（屏幕坐标）
	Position types.Vector2
	// Size 宽高（像素），不做校验，零或负尺寸永远不会被悬停
	Size types.Vector2

	// ===== 外观 =====
	// Label 按钮文字
	Label string
	// CompactLabel 使用小号字体绘制文字（纯外观提示）
	CompactLabel bool

	// ===== 行为 =====
	// Mode 普通按钮 or 切换按钮
	Mode ButtonMode
	// OnActivate 点击回调
	OnActivate Activator

	// ===== 交互状态 =====
	// Pressed 指针在按钮上按下且尚未释放或移出
	Pressed bool
	// Selected 切换按钮当前被选中
	Selected bool
	// Hovered 指针当前在按钮矩形内
	Hovered bool

	// Peers 注册时同组其他按钮的快照（只读）
	// 不包含自身；之后注册的按钮不会追加到较早按钮的快照中，
	// 互斥逻辑以 ToggleGroup 的实时列表为准
	Peers []ecs.EntityID
}

// IsToggle 是否为切换按钮
func (b *ButtonComponent) IsToggle() bool {
	return b.Mode == ButtonModeToggle
}
