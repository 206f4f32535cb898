// Package main 逐帧导出眼睛动画为 PNG，用于文档和视觉回归
//
// Usage:
//
//	go run ./cmd/eyes_snapshot [flags]
//
// Flags:
//
//	--out <dir>        输出目录（默认 snapshots）
//	--config <path>    外部配置文件（默认使用嵌入配置）
//	--step <ms>        帧间隔（默认 40）
//	--duration <ms>    总时长，0 表示一个呼吸周期
//	--palette <name>   覆盖配置中的配色
//	--look <x,y>       固定视线方向，例如 0.5,-0.3
//	--verbose          输出详细日志
//
// 第一帧立即触发一次眨眼，时钟是手动推进的，输出完全可复现。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/eyes/data"
	"github.com/decker502/eyes/pkg/config"
	"github.com/decker502/eyes/pkg/display"
	"github.com/decker502/eyes/pkg/embedded"
	"github.com/decker502/eyes/pkg/eyes"
	"github.com/decker502/eyes/pkg/render"
	"github.com/decker502/eyes/pkg/shape"
)

var (
	outFlag      = flag.String("out", "snapshots", "Output directory")
	configFlag   = flag.String("config", "", "Path to eyes.yaml (default: embedded)")
	stepFlag     = flag.Uint("step", 40, "Milliseconds between frames")
	durationFlag = flag.Uint("duration", 0, "Total milliseconds (0 = one breathing period)")
	paletteFlag  = flag.String("palette", "", "Palette preset override")
	lookFlag     = flag.String("look", "0,0", "Fixed gaze as x,y in [-1,1]")
	seedFlag     = flag.Uint64("seed", 1, "Random seed for blink scheduling")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "eyes_snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	embedded.Init(data.FS)
	cfg, err := config.ResolveEyesConfig(*configFlag)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if *paletteFlag != "" {
		p, ok := config.LookupPalette(*paletteFlag)
		if !ok {
			return fmt.Errorf("unknown palette %q (available: %v)", *paletteFlag, config.PaletteNames())
		}
		opts.Palette = p
	}

	var lookX, lookY float64
	if _, err := fmt.Sscanf(*lookFlag, "%g,%g", &lookX, &lookY); err != nil {
		return fmt.Errorf("invalid --look %q: %w", *lookFlag, err)
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	scene := shape.NewScene(w, h)
	clock := &eyes.ManualClock{}
	e := eyes.New(scene, clock, eyes.NewRandom(*seedFlag), opts)
	e.Create(scene.Root(), w/2, h/2, cfg.Geometry.Spacing, cfg.Geometry.Size)
	e.Look(lookX, lookY)
	e.BlinkNow()

	renderer := render.NewRenderer(w, h, cfg.BackgroundColor())
	defer renderer.Close()

	writer, err := display.NewPNGWriter(*outFlag, "eyes")
	if err != nil {
		return err
	}
	defer writer.Close()

	loop := &display.Loop{Scene: scene, Eyes: e, Renderer: renderer, Sink: writer}

	duration := uint32(*durationFlag)
	if duration == 0 {
		duration = opts.BreathePeriodMs
	}
	step := uint32(*stepFlag)
	if step == 0 {
		return fmt.Errorf("--step must be positive")
	}

	for t := uint32(0); t <= duration; t += step {
		clock.Now = t
		if err := loop.Step(); err != nil {
			return fmt.Errorf("frame at %dms: %w", t, err)
		}
	}

	fmt.Printf("wrote %d frames to %s\n", writer.Count(), *outFlag)
	return nil
}
