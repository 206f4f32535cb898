// Package main 是发光眼睛的桌面入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--config <path>  外部配置文件（默认使用嵌入的 data/eyes.yaml）
//	--verbose        输出详细日志
//
// Controls:
//
//	鼠标移动    视线跟随
//	Space/点击  立即眨眼
//	1-4 / P    切换配色
//	+ / -      调整光晕
//	F11        切换全屏
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/eyes/data"
	"github.com/decker502/eyes/pkg/app"
	"github.com/decker502/eyes/pkg/embedded"
)

var (
	configFlag  = flag.String("config", "", "Path to eyes.yaml (default: embedded data/eyes.yaml)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	embedded.Init(data.FS)

	eyesApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer eyesApp.Close()

	w, h := eyesApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(eyesApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(eyesApp.Fullscreen())

	if err := ebiten.RunGame(eyesApp); err != nil {
		log.Fatal(err)
	}
}
