// Package main 按钮演示程序
//
// 用法:
//
//	go run . [-theme data/button_theme.yaml] [-no-group] [-no-save] [-verbose]
//
// 功能:
//   - 三个互斥的工具按钮（Pen / Line / Erase）和一个普通按钮（Clear）
//   - 选中的工具通过 gdata 持久化，下次启动时恢复
package main

import (
	"flag"
	"log"

	"github.com/decker502/ebbutton/pkg/app"
	"github.com/decker502/ebbutton/pkg/config"
	"github.com/decker502/ebbutton/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	themePath = flag.String("theme", config.DefaultButtonThemePath, "按钮主题文件（data/ 开头读取内置资源）")
	noGroup   = flag.Bool("no-group", false, "不安装互斥组，切换按钮各自翻转")
	noSave    = flag.Bool("no-save", false, "不保存工具栏选择")
	verbose   = flag.Bool("verbose", false, "详细日志")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		ThemePath:     *themePath,
		NoToggleGroup: *noGroup,
		NoSave:        *noSave,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth*config.WindowScale, config.GameWindowHeight*config.WindowScale)
	ebiten.SetWindowTitle("ebbutton demo")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
