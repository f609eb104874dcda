// Package app 提供按钮演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/ebbutton/pkg/components"
	"github.com/decker502/ebbutton/pkg/config"
	"github.com/decker502/ebbutton/pkg/ecs"
	"github.com/decker502/ebbutton/pkg/entities"
	"github.com/decker502/ebbutton/pkg/game"
	"github.com/decker502/ebbutton/pkg/render"
	"github.com/decker502/ebbutton/pkg/systems"
	"github.com/decker502/ebbutton/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ThemePath 按钮主题文件，为空使用内置主题
	ThemePath string
	// NoToggleGroup 不安装互斥组（切换按钮各自翻转）
	NoToggleGroup bool
	// NoSave 不持久化工具栏选择
	NoSave bool
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
//
// 每帧流程：Update 中轮询输入、更新按钮并把绘制指令录制到 frame，
// Draw 中把 frame 回放到屏幕。
type App struct {
	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
	toggleGroup   *systems.ToggleGroup
	input         *systems.EbitenPointerInput
	frame         *render.CommandBuffer
	renderer      *render.EbitenRenderer
	store         *game.SelectionStore

	// 按钮文字 -> 实体
	buttonsByLabel map[string]ecs.EntityID
	background     color.Color
	verbose        bool
}

// NewApp 创建并初始化演示程序
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	themePath := cfg.ThemePath
	if themePath == "" {
		themePath = config.DefaultButtonThemePath
	}
	theme, err := config.LoadButtonTheme(themePath)
	if err != nil {
		log.Printf("[App] Warning: %v (using default theme)", err)
		theme = config.DefaultButtonTheme()
	}

	palette, err := theme.RenderPalette()
	if err != nil {
		return nil, fmt.Errorf("按钮主题解析失败: %w", err)
	}

	faces, err := render.NewLabelFaces(theme.Font.NormalSize, theme.Font.CompactSize)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	a := &App{
		entityManager:  ecs.NewEntityManager(),
		input:          systems.NewEbitenPointerInput(),
		frame:          render.NewCommandBuffer(),
		renderer:       render.NewEbitenRenderer(palette, faces),
		buttonsByLabel: make(map[string]ecs.EntityID),
		background:     palette[render.ColorMask],
		verbose:        cfg.Verbose,
	}

	a.buttonSystem = systems.NewButtonSystem(a.entityManager, a.frame)
	a.buttonSystem.SetVerbose(cfg.Verbose)
	if !cfg.NoToggleGroup {
		a.toggleGroup = systems.NewToggleGroup(a.entityManager)
		a.buttonSystem.SetToggleGroup(a.toggleGroup)
	}

	a.store = game.NewSelectionStore(openStorage(cfg))

	a.createToolbar()
	a.restoreSelection()

	log.Printf("[App] Initialized (%d buttons, toggleGroup=%v)", len(a.buttonsByLabel), a.toggleGroup != nil)
	return a, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级为仅内存）
func openStorage(cfg Config) *gdata.Manager {
	if cfg.NoSave {
		return nil
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: "ebbutton_demo",
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (selection will not be saved)", err)
		return nil
	}
	return manager
}

// createToolbar 按布局配置创建工具栏按钮
func (a *App) createToolbar() {
	var group entities.ToggleRegistrar
	if a.toggleGroup != nil {
		group = a.toggleGroup
	}

	for _, layout := range config.ToolbarButtons {
		label := layout.Label
		cfg := entities.ButtonConfig{
			Position: types.Vec2(layout.X, layout.Y),
			Size:     types.Vec2(layout.Width, layout.Height),
			Label:    label,
		}

		var id ecs.EntityID
		if layout.Toggle {
			cfg.OnActivate = components.ActivatorFunc(func() {
				log.Printf("[App] Tool selected: %s", label)
			})
			id = entities.NewToggleButtonEntity(a.entityManager, group, cfg)
		} else {
			cfg.OnActivate = components.ActivatorFunc(a.clearSelection)
			id = entities.NewButtonEntity(a.entityManager, cfg)
		}
		a.buttonsByLabel[label] = id
	}
}

// restoreSelection 恢复上次保存的选择（不触发回调）
func (a *App) restoreSelection() {
	label := a.store.SelectedLabel()
	if label == "" || a.toggleGroup == nil {
		return
	}
	id, ok := a.buttonsByLabel[label]
	if !ok || !a.toggleGroup.Select(id) {
		log.Printf("[App] Warning: saved selection %q is not a toolbar tool", label)
		return
	}
	log.Printf("[App] Restored selection: %s", label)
}

// clearSelection "Clear" 按钮回调：取消所有工具的选中
func (a *App) clearSelection() {
	log.Printf("[App] Clear clicked")
	if a.toggleGroup != nil {
		a.toggleGroup.DeselectAll(ecs.InvalidEntity)
		return
	}
	for _, id := range a.buttonsByLabel {
		if button, ok := ecs.GetComponent[*components.ButtonComponent](a.entityManager, id); ok {
			button.Selected = false
		}
	}
}

// syncSelection 选择变化时写入存储
func (a *App) syncSelection() {
	if a.toggleGroup == nil {
		return
	}

	label := ""
	if id, ok := a.toggleGroup.Selected(); ok {
		if button, ok := ecs.GetComponent[*components.ButtonComponent](a.entityManager, id); ok {
			label = button.Label
		}
	}
	if label == a.store.SelectedLabel() {
		return
	}

	a.store.SetSelectedLabel(label)
	if err := a.store.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save selection: %v", err)
	}
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.input.Poll()
	a.frame.Reset()
	if clicked := a.buttonSystem.Update(a.input); len(clicked) > 0 {
		a.syncSelection()
	}
	a.entityManager.RemoveMarkedEntities()
	return nil
}

// Draw 绘制画面：回放本帧录制的按钮绘制指令
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)
	a.renderer.SetTarget(screen)
	a.frame.Replay(a.renderer)
	a.renderer.SetTarget(nil)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
