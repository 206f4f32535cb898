// Package main 在 I2C 接口的 SSD1306 OLED 上运行眼睛动画
//
// Usage:
//
//	go run ./cmd/eyes_oled [flags]
//
// Flags:
//
//	--config <path>  外部配置文件（默认使用嵌入配置）
//	--bus <name>     I2C 总线名，覆盖配置文件
//	--wander         没有输入时让视线随机移动（默认开启）
//	--verbose        输出详细日志
//
// 渲染画布使用配置中的 window 尺寸，输出时等比缩放到屏幕分辨率。
// Ctrl+C 退出并关闭屏幕。
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/decker502/eyes/data"
	"github.com/decker502/eyes/pkg/config"
	"github.com/decker502/eyes/pkg/display"
	"github.com/decker502/eyes/pkg/embedded"
	"github.com/decker502/eyes/pkg/eyes"
	"github.com/decker502/eyes/pkg/render"
	"github.com/decker502/eyes/pkg/shape"
)

var (
	configFlag  = flag.String("config", "", "Path to eyes.yaml (default: embedded)")
	busFlag     = flag.String("bus", "", "I2C bus name (overrides config)")
	wanderFlag  = flag.Bool("wander", true, "Move the gaze randomly")
	fpsFlag     = flag.Int("fps", 30, "Frames per second")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	embedded.Init(data.FS)

	cfg, err := config.ResolveEyesConfig(*configFlag)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	if *busFlag != "" {
		cfg.OLED.Bus = *busFlag
	}

	oled, err := display.OpenOLED(display.OLEDOptions{
		Bus:    cfg.OLED.Bus,
		Width:  cfg.OLED.Width,
		Height: cfg.OLED.Height,
		Rotate: cfg.OLED.Rotate,
	})
	if err != nil {
		log.Fatalf("OLED 初始化失败: %v", err)
	}
	defer oled.Close()

	w, h := cfg.Window.Width, cfg.Window.Height
	scene := shape.NewScene(w, h)
	clock := eyes.NewSystemClock()
	rnd := eyes.NewRandom(uint64(time.Now().UnixNano()))
	e := eyes.New(scene, clock, rnd, cfg.Options())
	e.Create(scene.Root(), w/2, h/2, cfg.Geometry.Spacing, cfg.Geometry.Size)

	renderer := render.NewRenderer(w, h, cfg.BackgroundColor())
	defer renderer.Close()

	loop := &display.Loop{
		Scene:    scene,
		Eyes:     e,
		Renderer: renderer,
		Sink:     oled,
		Interval: time.Second / time.Duration(max(*fpsFlag, 1)),
	}
	if *wanderFlag {
		wander := display.NewWander(e, clock, rnd)
		loop.BeforeStep = func() bool {
			wander.Tick()
			return true
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[OLED] Running at %d fps", *fpsFlag)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[OLED] Stopped: %v", err)
		oled.Close()
		os.Exit(1)
	}
}
