// Package app 提供眼睛动画的 ebiten 应用包装器
//
// 该包把初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/eyes/pkg/config"
	"github.com/decker502/eyes/pkg/eyes"
	"github.com/decker502/eyes/pkg/render"
	"github.com/decker502/eyes/pkg/settings"
	"github.com/decker502/eyes/pkg/shape"
	"github.com/decker502/eyes/pkg/utils"
)

// StorageName gdata 存储使用的应用名
const StorageName = "glowing_eyes"

// glowStep 每次按键调整的光晕微调量
const glowStep = 5

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空时使用嵌入的 data/eyes.yaml
	ConfigPath string
}

// App 实现 ebiten.Game 接口
type App struct {
	config   *config.EyesConfig
	settings *settings.SettingsManager

	scene    *shape.Scene
	eyes     *eyes.Eyes
	renderer *render.Renderer

	offscreen *ebiten.Image
	uploaded  *image.RGBA

	palettes     []string
	paletteIndex int

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	eyesConfig, err := config.ResolveEyesConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[App] Config loaded (palette=%s, %dx%d)", eyesConfig.Palette, eyesConfig.Window.Width, eyesConfig.Window.Height)

	sm := settings.NewSettingsManager(settings.OpenStorage(StorageName))

	a := newApp(eyesConfig, sm, eyes.NewSystemClock(), eyes.NewRandom(uint64(time.Now().UnixNano())))
	return a, nil
}

// newApp 组装场景、眼睛和渲染器，时钟与随机源由调用方提供
func newApp(ec *config.EyesConfig, sm *settings.SettingsManager, clock eyes.Clock, rnd eyes.Random) *App {
	w, h := ec.Window.Width, ec.Window.Height
	scene := shape.NewScene(w, h)

	a := &App{
		config:   ec,
		settings: sm,
		scene:    scene,
		renderer: render.NewRenderer(w, h, ec.BackgroundColor()),
		palettes: config.PaletteNames(),
	}

	// 配置文件中的自定义颜色优先于保存的预设
	opts := ec.Options()
	if ec.Colors == nil {
		name := sm.PaletteOr(ec.Palette)
		if p, ok := config.LookupPalette(name); ok {
			opts.Palette = p
			a.paletteIndex = a.indexOf(name)
		}
	} else {
		a.paletteIndex = -1
	}

	a.eyes = eyes.New(scene, clock, rnd, opts)
	a.eyes.Create(scene.Root(), w/2, h/2, ec.Geometry.Spacing, ec.Geometry.Size)
	a.eyes.SetGlow(sm.GetSettings().GlowTrim)

	log.Printf("[App] Eyes created at (%d,%d), palette index %d", w/2, h/2, a.paletteIndex)
	return a
}

func (a *App) indexOf(name string) int {
	for i, n := range a.palettes {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return 0
}

// Update 更新动画
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.config.Window.Width*2, a.config.Window.Height*2)
			a.pendingWindowSizeReset = false
		}
	}

	in := pollInput(a.config.Window.Width, a.config.Window.Height)
	if in.ToggleFullscreen && !utils.IsMobile() {
		a.toggleFullscreen()
	}
	a.handleInput(in)
	a.eyes.Update()
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
	a.settings.SetFullscreen(fullscreen)
	a.saveSettings()
}

// handleInput 把一帧的输入映射到眼睛操作
func (a *App) handleInput(in Input) {
	if in.HasPointer {
		a.eyes.Look(in.LookX, in.LookY)
	}
	if in.Blink {
		a.eyes.BlinkNow()
	}

	changed := false
	switch {
	case in.Palette >= 0 && in.Palette < len(a.palettes):
		a.selectPalette(in.Palette)
		changed = true
	case in.NextPalette:
		a.selectPalette((a.paletteIndex + 1) % len(a.palettes))
		changed = true
	}

	if in.GlowDelta != 0 {
		a.eyes.SetGlow(a.eyes.GlowTrim() + in.GlowDelta*glowStep)
		a.settings.SetGlowTrim(a.eyes.GlowTrim())
		changed = true
	}

	if changed {
		a.saveSettings()
	}
}

func (a *App) selectPalette(i int) {
	name := a.palettes[i]
	p, ok := config.LookupPalette(name)
	if !ok {
		return
	}
	a.paletteIndex = i
	a.eyes.SetColors(p.Inner, p.Glow)
	a.settings.SetPalette(name)
	log.Printf("[App] Palette -> %s", name)
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 场景没有变化时跳过像素上传
func (a *App) Draw(screen *ebiten.Image) {
	frame, err := a.renderer.Render(a.scene)
	if err != nil {
		log.Printf("[App] Render failed: %v", err)
		return
	}

	if a.offscreen == nil {
		b := frame.Bounds()
		a.offscreen = ebiten.NewImage(b.Dx(), b.Dy())
	}
	if frame != a.uploaded {
		a.offscreen.WritePixels(frame.Pix)
		a.uploaded = frame
	}
	screen.DrawImage(a.offscreen, nil)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.Window.Width, a.config.Window.Height
}

// WindowSize 推荐的初始窗口尺寸（逻辑尺寸的两倍）
func (a *App) WindowSize() (int, int) {
	return a.config.Window.Width * 2, a.config.Window.Height * 2
}

// Title 窗口标题
func (a *App) Title() string {
	return a.config.Window.Title
}

// Fullscreen 上次退出时是否全屏，移动端总是 false
func (a *App) Fullscreen() bool {
	if utils.IsMobile() {
		return false
	}
	return a.settings.GetSettings().Fullscreen
}

// Eyes 返回眼睛实例
func (a *App) Eyes() *eyes.Eyes {
	return a.eyes
}

// Close 保存设置并释放渲染器
func (a *App) Close() error {
	a.saveSettings()
	return a.renderer.Close()
}
