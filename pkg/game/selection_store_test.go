package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 在临时目录中创建 gdata manager
func createTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

// TestNewSelectionStoreNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSelectionStoreNilGdata(t *testing.T) {
	store := NewSelectionStore(nil)
	if store == nil {
		t.Fatal("NewSelectionStore(nil) returned nil")
	}

	if store.SelectedLabel() != "" {
		t.Errorf("SelectedLabel() = %q, want empty", store.SelectedLabel())
	}

	store.SetSelectedLabel("Pen")
	if err := store.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if store.SelectedLabel() != "Pen" {
		t.Errorf("SelectedLabel() = %q, want Pen", store.SelectedLabel())
	}
}

// TestSelectionStoreLoadSave 测试保存后重新加载
func TestSelectionStoreLoadSave(t *testing.T) {
	manager := createTestGdataManager(t, "test_toolbar_selection")

	first := NewSelectionStore(manager)
	if first.SelectedLabel() != "" {
		t.Errorf("fresh store SelectedLabel() = %q, want empty", first.SelectedLabel())
	}

	first.SetSelectedLabel("Eraser")
	if err := first.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	second := NewSelectionStore(manager)
	if second.SelectedLabel() != "Eraser" {
		t.Errorf("reloaded SelectedLabel() = %q, want Eraser", second.SelectedLabel())
	}
}

// TestSelectionStoreCorruptData 数据损坏时回退到空状态
func TestSelectionStoreCorruptData(t *testing.T) {
	manager := createTestGdataManager(t, "test_toolbar_corrupt")

	if err := manager.SaveObjectProp(toolbarObject, toolbarProperty, []byte("selectedLabel: [\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	store := NewSelectionStore(manager)
	if store.SelectedLabel() != "" {
		t.Errorf("SelectedLabel() = %q, want empty after corrupt data", store.SelectedLabel())
	}
	if err := store.Load(); err == nil {
		t.Error("Load() should report an error for corrupt data")
	}
}
