package config

// 演示程序窗口配置
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 320
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 180
	// WindowScale 桌面窗口相对逻辑尺寸的缩放
	WindowScale = 3
)

// ToolbarButton 工具栏按钮布局
type ToolbarButton struct {
	Label  string
	X, Y   float64
	Width  float64
	Height float64
	Toggle bool
}

// ToolbarButtons 演示工具栏布局：三个互斥的工具按钮和一个普通按钮
var ToolbarButtons = []ToolbarButton{
	{Label: "Pen", X: 10, Y: 10, Width: 40, Height: 14, Toggle: true},
	{Label: "Line", X: 55, Y: 10, Width: 40, Height: 14, Toggle: true},
	{Label: "Erase", X: 100, Y: 10, Width: 40, Height: 14, Toggle: true},
	{Label: "Clear", X: 160, Y: 10, Width: 40, Height: 14},
}
