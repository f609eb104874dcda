package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ToolbarState 工具栏持久化状态
// 只记录宿主程序的选择，按钮本身不持久化任何状态
type ToolbarState struct {
	// SelectedLabel 当前选中的切换按钮文字，空表示未选中
	SelectedLabel string `yaml:"selectedLabel"`
}

// SelectionStore 工具栏选择的存储
// 负责选择状态的加载、保存和内存管理
type SelectionStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	state        *ToolbarState  // 当前状态
}

// 存储路径常量
const (
	toolbarObject   = "toolbar"
	toolbarProperty = "selection"
)

// NewSelectionStore 创建选择存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 加载失败不是致命错误：记录警告并使用空状态。
func NewSelectionStore(gdataManager *gdata.Manager) *SelectionStore {
	s := &SelectionStore{
		gdataManager: gdataManager,
		state:        &ToolbarState{},
	}

	if err := s.Load(); err != nil {
		log.Printf("[SelectionStore] Warning: Failed to load toolbar state: %v (using empty selection)", err)
	}

	return s
}

// Load 从 gdata 加载状态
//
// 如果 gdataManager 为 nil 或数据不存在，使用空状态
func (s *SelectionStore) Load() error {
	if s.gdataManager == nil {
		s.state = &ToolbarState{}
		return nil
	}

	if !s.gdataManager.ObjectPropExists(toolbarObject, toolbarProperty) {
		s.state = &ToolbarState{}
		return nil
	}

	data, err := s.gdataManager.LoadObjectProp(toolbarObject, toolbarProperty)
	if err != nil {
		s.state = &ToolbarState{}
		return fmt.Errorf("failed to load toolbar state: %w", err)
	}

	var loaded ToolbarState
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		s.state = &ToolbarState{}
		return fmt.Errorf("failed to unmarshal toolbar state: %w", err)
	}

	s.state = &loaded
	log.Printf("[SelectionStore] Toolbar state loaded (selected=%q)", loaded.SelectedLabel)
	return nil
}

// Save 保存状态到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (s *SelectionStore) Save() error {
	if s.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to marshal toolbar state: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(toolbarObject, toolbarProperty, data); err != nil {
		return fmt.Errorf("failed to save toolbar state: %w", err)
	}

	return nil
}

// SelectedLabel 当前选中的按钮文字
func (s *SelectionStore) SelectedLabel() string {
	return s.state.SelectedLabel
}

// SetSelectedLabel 修改选中的按钮文字
// 注意：仅修改内存中的状态，需调用 Save() 持久化
func (s *SelectionStore) SetSelectedLabel(label string) {
	s.state.SelectedLabel = label
}
