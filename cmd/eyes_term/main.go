// Package main 在终端里预览眼睛动画
//
// Usage:
//
//	go run ./cmd/eyes_term [flags]
//
// Flags:
//
//	--config <path>  外部配置文件（默认使用嵌入配置）
//	--wander         视线随机移动
//	--verbose        把日志写到 eyes_term.log
//
// Controls:
//
//	方向键      移动视线
//	C          视线回到正前方
//	Space      立即眨眼
//	1-4 / P    切换配色
//	+ / -      调整光晕
//	Q / Esc    退出
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

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
	wanderFlag  = flag.Bool("wander", false, "Move the gaze randomly")
	verboseFlag = flag.Bool("verbose", false, "Write logs to eyes_term.log")
)

func main() {
	flag.Parse()

	// 终端被 tcell 接管，日志只能写文件
	log.SetOutput(io.Discard)
	if *verboseFlag {
		f, err := os.Create("eyes_term.log")
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "eyes_term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	embedded.Init(data.FS)
	cfg, err := config.ResolveEyesConfig(*configFlag)
	if err != nil {
		return err
	}

	term, err := display.NewTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	w, h := cfg.Window.Width, cfg.Window.Height
	scene := shape.NewScene(w, h)
	clock := eyes.NewSystemClock()
	rnd := eyes.NewRandom(uint64(time.Now().UnixNano()))
	e := eyes.New(scene, clock, rnd, cfg.Options())
	e.Create(scene.Root(), w/2, h/2, cfg.Geometry.Spacing, cfg.Geometry.Size)

	renderer := render.NewRenderer(w, h, cfg.BackgroundColor())
	defer renderer.Close()

	current := cfg.Palette
	if cfg.Colors != nil {
		current = ""
	}
	ctl := newControls(e, current)
	var wander *display.Wander
	if *wanderFlag {
		wander = display.NewWander(e, clock, rnd)
	}

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := term.Screen().PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	loop := &display.Loop{
		Scene:    scene,
		Eyes:     e,
		Renderer: renderer,
		Sink:     term,
		Interval: 33 * time.Millisecond,
		BeforeStep: func() bool {
			for {
				select {
				case ev := <-events:
					switch ev := ev.(type) {
					case *tcell.EventKey:
						if !ctl.handleKey(ev) {
							return false
						}
					case *tcell.EventResize:
						term.Screen().Sync()
					}
				default:
					if wander != nil && !ctl.manual {
						wander.Tick()
					}
					return true
				}
			}
		},
	}

	if err := loop.Run(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
