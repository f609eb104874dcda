package app

import (
	"testing"

	"github.com/decker502/ebbutton/pkg/components"
	"github.com/decker502/ebbutton/pkg/config"
	"github.com/decker502/ebbutton/pkg/ecs"
	"github.com/decker502/ebbutton/pkg/systems"
	"github.com/decker502/ebbutton/pkg/types"
)

func newTestApp(t *testing.T, noGroup bool) *App {
	t.Helper()
	a, err := NewApp(Config{Verbose: true, NoSave: true, NoToggleGroup: noGroup})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	return a
}

// click 在指定按钮中心模拟一次点击
func click(t *testing.T, a *App, label string) {
	t.Helper()
	for _, layout := range config.ToolbarButtons {
		if layout.Label != label {
			continue
		}
		pos := types.Vec2(layout.X+layout.Width/2, layout.Y+layout.Height/2)
		a.buttonSystem.Update(systems.PointerState{Pos: pos, JustPressed: true})
		if clicked := a.buttonSystem.Update(systems.PointerState{Pos: pos, JustReleased: true}); len(clicked) > 0 {
			a.syncSelection()
		}
		return
	}
	t.Fatalf("no toolbar button %q", label)
}

func isSelected(t *testing.T, a *App, label string) bool {
	t.Helper()
	button, ok := ecs.GetComponent[*components.ButtonComponent](a.entityManager, a.buttonsByLabel[label])
	if !ok {
		t.Fatalf("button %q not found", label)
	}
	return button.Selected
}

// TestApp_Toolbar 工具栏按钮全部创建，切换按钮注册到互斥组
func TestApp_Toolbar(t *testing.T) {
	a := newTestApp(t, false)

	if len(a.buttonsByLabel) != len(config.ToolbarButtons) {
		t.Fatalf("buttons = %d, want %d", len(a.buttonsByLabel), len(config.ToolbarButtons))
	}
	if len(a.toggleGroup.Buttons()) != 3 {
		t.Errorf("toggle group members = %d, want 3", len(a.toggleGroup.Buttons()))
	}
	if a.frame.Len() != 0 {
		t.Error("nothing should be recorded before the first update")
	}
}

// TestApp_SelectAndClear 选择工具后再点击 Clear
func TestApp_SelectAndClear(t *testing.T) {
	a := newTestApp(t, false)

	click(t, a, "Pen")
	click(t, a, "Line")
	if isSelected(t, a, "Pen") || !isSelected(t, a, "Line") {
		t.Error("only Line should be selected")
	}
	if a.store.SelectedLabel() != "Line" {
		t.Errorf("stored selection = %q, want Line", a.store.SelectedLabel())
	}

	click(t, a, "Clear")
	for _, label := range []string{"Pen", "Line", "Erase"} {
		if isSelected(t, a, label) {
			t.Errorf("%s should be deselected after Clear", label)
		}
	}
	if a.store.SelectedLabel() != "" {
		t.Errorf("stored selection = %q, want empty", a.store.SelectedLabel())
	}
}

// TestApp_RestoreSelection 恢复保存的选择
func TestApp_RestoreSelection(t *testing.T) {
	a := newTestApp(t, false)

	a.store.SetSelectedLabel("Erase")
	a.restoreSelection()
	if !isSelected(t, a, "Erase") {
		t.Error("Erase should be restored")
	}

	// 未知的保存值被忽略
	a.store.SetSelectedLabel("Clear")
	a.restoreSelection()
	if isSelected(t, a, "Clear") {
		t.Error("momentary button should not be selected by restore")
	}
}

// TestApp_NoToggleGroup 未安装互斥组时切换按钮各自翻转
func TestApp_NoToggleGroup(t *testing.T) {
	a := newTestApp(t, true)

	click(t, a, "Pen")
	click(t, a, "Line")
	if !isSelected(t, a, "Pen") || !isSelected(t, a, "Line") {
		t.Error("without a group both tools stay selected")
	}

	click(t, a, "Clear")
	if isSelected(t, a, "Pen") || isSelected(t, a, "Line") {
		t.Error("Clear should deselect all tools")
	}
}
