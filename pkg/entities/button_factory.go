package entities

import (
	"github.com/decker502/ebbutton/pkg/components"
	"github.com/decker502/ebbutton/pkg/ecs"
	"github.com/decker502/ebbutton/pkg/types"
)

// ButtonConfig 按钮创建参数
type ButtonConfig struct {
	// Position 左上角（屏幕坐标）
	Position types.Vector2
	// Size 宽高（像素），不做校验
	Size types.Vector2
	// Label 按钮文字
	Label string
	// Mode 默认为普通按钮
	Mode components.ButtonMode
	// OnActivate 点击回调，nil 时为空操作
	OnActivate components.Activator
	// CompactLabel 是否使用小号文字，nil 时默认为 true
	CompactLabel *bool
}

// NewButton 根据配置创建按钮组件，交互状态全部为初始值
func NewButton(cfg ButtonConfig) *components.ButtonComponent {
	onActivate := cfg.OnActivate
	if onActivate == nil {
		onActivate = components.NopActivator
	}

	compact := true
	if cfg.CompactLabel != nil {
		compact = *cfg.CompactLabel
	}

	return &components.ButtonComponent{
		Position:     cfg.Position,
		Size:         cfg.Size,
		Label:        cfg.Label,
		CompactLabel: compact,
		Mode:         cfg.Mode,
		OnActivate:   onActivate,
		Peers:        []ecs.EntityID{},
	}
}

// NewButtonEntity 创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - cfg: 按钮配置
//
// 返回：
//   - 按钮实体ID
func NewButtonEntity(em *ecs.EntityManager, cfg ButtonConfig) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, NewButton(cfg))
	return entity
}

// NewToggleButtonEntity 创建切换按钮实体，并注册到互斥组（group 可为 nil）
func NewToggleButtonEntity(em *ecs.EntityManager, group ToggleRegistrar, cfg ButtonConfig) ecs.EntityID {
	cfg.Mode = components.ButtonModeToggle
	entity := NewButtonEntity(em, cfg)
	if group != nil {
		group.Register(entity)
	}
	return entity
}

// ToggleRegistrar 互斥组注册接口（systems.ToggleGroup 实现）
type ToggleRegistrar interface {
	Register(id ecs.EntityID) bool
}
