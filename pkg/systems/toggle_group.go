package systems

import (
	"log"

	"github.com/decker502/ebbutton/pkg/components"
	"github.com/decker502/ebbutton/pkg/ecs"
)

// ToggleGroup 切换按钮互斥组
// 注册到同一组的切换按钮表现为单选按钮：选中一个会取消其余所有按钮的选中状态
//
// 成员按注册顺序保存为 EntityID 列表（句柄），不持有按钮指针。
//
// 关于 ButtonComponent.Peers：
//   - Register 时只写入当前按钮的快照（此前已注册的成员）
//   - 较早注册的按钮不会得知之后注册的成员
//   - DeselectAll 始终遍历实时成员列表，因此互斥不受快照影响
type ToggleGroup struct {
	entityManager *ecs.EntityManager
	buttons       []ecs.EntityID
}

// NewToggleGroup 创建空的互斥组
func NewToggleGroup(em *ecs.EntityManager) *ToggleGroup {
	return &ToggleGroup{
		entityManager: em,
	}
}

// Register 注册按钮到互斥组
//
// 重复注册是空操作；实体没有 ButtonComponent 时记录警告并忽略。
//
// 返回：
//   - bool: 是否新加入了组
func (g *ToggleGroup) Register(id ecs.EntityID) bool {
	button, ok := ecs.GetComponent[*components.ButtonComponent](g.entityManager, id)
	if !ok {
		log.Printf("[ToggleGroup] Warning: entity %d has no ButtonComponent, not registered", id)
		return false
	}
	if g.Contains(id) {
		return false
	}

	g.buttons = append(g.buttons, id)
	button.Peers = g.LivePeers(id)
	return true
}

// DeselectAll 取消除 except 以外所有成员的选中状态
// except 本身不受影响（由调用方随后设置）
func (g *ToggleGroup) DeselectAll(except ecs.EntityID) {
	for _, id := range g.buttons {
		if id == except {
			continue
		}
		// 已销毁的实体直接跳过
		if button, ok := ecs.GetComponent[*components.ButtonComponent](g.entityManager, id); ok {
			button.Selected = false
		}
	}
}

// Select 选中指定成员并取消其余成员，不触发点击回调
// 用于恢复持久化的选择
//
// 返回：
//   - bool: id 是否为本组成员
func (g *ToggleGroup) Select(id ecs.EntityID) bool {
	if !g.Contains(id) {
		return false
	}
	button, ok := ecs.GetComponent[*components.ButtonComponent](g.entityManager, id)
	if !ok {
		return false
	}

	g.DeselectAll(id)
	button.Selected = true
	return true
}

// Selected 返回当前选中的成员（按注册顺序的第一个）
func (g *ToggleGroup) Selected() (ecs.EntityID, bool) {
	for _, id := range g.buttons {
		if button, ok := ecs.GetComponent[*components.ButtonComponent](g.entityManager, id); ok && button.Selected {
			return id, true
		}
	}
	return ecs.InvalidEntity, false
}

// Contains 是否为本组成员
func (g *ToggleGroup) Contains(id ecs.EntityID) bool {
	for _, member := range g.buttons {
		if member == id {
			return true
		}
	}
	return false
}

// Buttons 返回按注册顺序排列的成员副本
func (g *ToggleGroup) Buttons() []ecs.EntityID {
	result := make([]ecs.EntityID, len(g.buttons))
	copy(result, g.buttons)
	return result
}

// LivePeers 根据实时成员列表计算 id 的同组按钮（不含自身）
func (g *ToggleGroup) LivePeers(id ecs.EntityID) []ecs.EntityID {
	peers := make([]ecs.EntityID, 0, len(g.buttons))
	for _, member := range g.buttons {
		if member != id {
			peers = append(peers, member)
		}
	}
	return peers
}
