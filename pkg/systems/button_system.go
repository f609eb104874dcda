package systems

import (
	"log"

	"github.com/decker502/ebbutton/pkg/components"
	"github.com/decker502/ebbutton/pkg/ecs"
	"github.com/decker502/ebbutton/pkg/render"
)

// ButtonSystem 按钮交互系统（立即模式）
// 负责处理按钮的悬停、按下、点击，并在同一次 Update 中绘制按钮
//
// 职责：
//   - 检测指针悬停（半开矩形）
//   - 按下/释放的边沿检测，移出按钮立即取消按下
//   - 释放时触发 OnActivate 回调
//   - 切换按钮通过 ToggleGroup 互斥；未安装互斥组时各自翻转
//   - 每帧无条件绘制（Update 即 "更新并渲染"）
//
// 注意：ebiten 中绘制应发生在 Draw 回调里，
// 因此这里的 Renderer 通常是 render.CommandBuffer，由 Game.Draw 回放。
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	toggleGroup   *ToggleGroup
	renderer      render.Renderer
	verbose       bool
}

// NewButtonSystem 创建按钮交互系统
//
// 参数：
//   - em: 实体管理器
//   - r: 绘制指令接收者，可为 nil（不绘制）
func NewButtonSystem(em *ecs.EntityManager, r render.Renderer) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		renderer:      r,
	}
}

// SetToggleGroup 安装互斥组（同一时刻最多一个），传 nil 卸载
func (s *ButtonSystem) SetToggleGroup(g *ToggleGroup) {
	s.toggleGroup = g
}

// ToggleGroup 返回当前安装的互斥组（可能为 nil）
func (s *ButtonSystem) ToggleGroup() *ToggleGroup {
	return s.toggleGroup
}

// SetRenderer 替换绘制指令接收者
func (s *ButtonSystem) SetRenderer(r render.Renderer) {
	s.renderer = r
}

// SetVerbose 是否记录每次点击
func (s *ButtonSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Update 更新所有按钮（按创建顺序）并绘制
//
// 返回：
//   - []ecs.EntityID: 本帧被点击的按钮
func (s *ButtonSystem) Update(in PointerInput) []ecs.EntityID {
	var clicked []ecs.EntityID

	entities := ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if button == nil {
			continue
		}

		if UpdateButton(in, entityID, button, s.toggleGroup, s.renderer) {
			clicked = append(clicked, entityID)
			if s.verbose {
				log.Printf("[ButtonSystem] Button %q activated (mode=%s, selected=%v)",
					button.Label, button.Mode, button.Selected)
			}
		}
	}

	return clicked
}

// UpdateButton 单个按钮的每帧更新，严格按以下顺序执行：
//  1. 悬停：指针相对按钮左上角的偏移落在 [0,w)×[0,h) 内
//  2. 悬停且刚按下 → Pressed
//  3. 按下但已移出 → 取消 Pressed（没有容差）
//  4. 按下且刚释放 → 触发回调、清除 Pressed、切换按钮更新选中状态
//  5. 绘制
//
// group 为 nil 时切换按钮翻转自身选中状态；
// 否则先取消组内其他按钮，再把自身设为选中（重复点击不会取消选中）。
// r 为 nil 时跳过绘制。
//
// 返回：
//   - bool: 本帧是否触发了点击
func UpdateButton(in PointerInput, id ecs.EntityID, button *components.ButtonComponent, group *ToggleGroup, r render.Renderer) bool {
	offset := in.Position().Sub(button.Position)
	button.Hovered = offset.InRect(0, 0, button.Size.X, button.Size.Y)

	if button.Hovered && in.IsJustPressed() {
		button.Pressed = true
	}
	if button.Pressed && !button.Hovered {
		button.Pressed = false
	}

	clicked := false
	if button.Pressed && in.IsJustReleased() {
		clicked = true
		if button.OnActivate != nil {
			button.OnActivate.Activate()
		}
		button.Pressed = false

		if button.IsToggle() {
			if group != nil {
				group.DeselectAll(id)
				button.Selected = true
			} else {
				button.Selected = !button.Selected
			}
		}
	}

	if r != nil {
		DrawButton(r, button)
	}
	return clicked
}
