// Package eyes 实现一对发光"眼睛"的待机动画：
// 随机眨眼、呼吸光晕和视线偏移。
//
// 三种效果由同一个 Update 调用驱动，只使用尺寸、位置、不透明度和阴影的修改，
// 不依赖任何变换接口。所有状态都保存在调用方持有的 *Eyes 上，
// 图形操作通过 Surface 接口完成。
//
// 输入越界时一律截断到合法范围，而不是返回错误：
//   - Look 限制到 [-1, 1]
//   - 压缩百分比限制到 [8, 100]
//   - SetGlow 限制到 [-60, 40]
//   - 光晕强度 glowBase+glowAdd 限制到 [0, 100]
//
// *Eyes 不是并发安全的，所有调用必须来自同一个 goroutine。
package eyes

import (
	"image/color"
	"log"

	"github.com/decker502/eyes/pkg/utils"
)

// 创建参数默认值
const (
	DefaultSpacing = 36
	DefaultSize    = 64
)

// Options 动画参数
type Options struct {
	// BlinkDurationMs 闭合（以及睁开）各自耗时
	BlinkDurationMs uint32
	// BreathePeriodMs 呼吸周期
	BreathePeriodMs uint32
	// BlinkIntervalMinMs 两次不自主眨眼之间的最短间隔
	BlinkIntervalMinMs uint32
	// BlinkIntervalSpanMs 间隔随机部分的范围 [0, span)
	BlinkIntervalSpanMs uint32
	// GlowBase 基础光晕强度 0..100
	GlowBase int
	// Palette 初始配色
	Palette Palette
}

// DefaultOptions 返回默认动画参数
func DefaultOptions() Options {
	return Options{
		BlinkDurationMs:     120,
		BreathePeriodMs:     2200,
		BlinkIntervalMinMs:  1500,
		BlinkIntervalSpanMs: 2500,
		GlowBase:            60,
		Palette:             DefaultPalette,
	}
}

// Eyes 一对眼睛的全部状态
type Eyes struct {
	surface Surface
	clock   Clock
	rnd     Random
	opts    Options

	group       Handle
	left, right Eye
	size        int
	spacing     int

	base, core     Style
	baseID, coreID StyleID
	palette        Palette

	blink        BlinkState
	blinkStartMs uint32
	nextBlinkMs  uint32

	breatheStartMs uint32
	glowBase       int
	glowAdd        int

	lookX, lookY float64

	ready bool
}

// New 创建尚未初始化的眼睛上下文，需要再调用 Create
func New(surface Surface, clock Clock, rnd Random, opts Options) *Eyes {
	return &Eyes{
		surface:  surface,
		clock:    clock,
		rnd:      rnd,
		opts:     opts,
		palette:  opts.Palette,
		glowBase: utils.ClampInt(opts.GlowBase, 0, 100),
		size:     DefaultSize,
		spacing:  DefaultSpacing,
	}
}

// CreateDefault 以默认间距和尺寸创建
func (e *Eyes) CreateDefault(parent Handle, cx, cy int) {
	e.Create(parent, cx, cy, DefaultSpacing, DefaultSize)
}

// Create 创建两只眼睛
//
// 参数:
//   - parent: 父对象，为 0 时使用 Surface.Root()
//   - cx, cy: 整组的中心
//   - spacing: 两眼之间的间距（像素）
//   - size: 单只眼睛的宽度（像素）
//
// size 和 spacing 不做校验，0 或负数会得到退化但不会崩溃的图形。
// 重复调用的行为未定义。
func (e *Eyes) Create(parent Handle, cx, cy, spacing, size int) {
	s := e.surface
	if parent == 0 {
		parent = s.Root()
	}
	e.size = size
	e.spacing = spacing

	e.base = baseStyle(e.palette)
	e.core = coreStyle(e.palette)
	e.baseID = s.NewStyle(e.base)
	e.coreID = s.NewStyle(e.core)

	// 透明分组容器
	e.group = s.Create(parent)
	gw := size*2 + spacing + 8
	gh := int(float64(size)*0.9) + 8
	s.SetSize(e.group, gw, gh)
	s.SetPos(e.group, cx-gw/2, cy-gh/2)

	leftX := gw/2 - spacing/2 - size/2
	rightX := gw/2 + spacing/2 + size/2
	y := gh / 2

	makeEye(s, &e.left, e.group, e.baseID, e.coreID, leftX, y, size)
	makeEye(s, &e.right, e.group, e.baseID, e.coreID, rightX, y, size)

	e.lookX, e.lookY = 0, 0
	applyLook(s, &e.left, e.size, 0, 0)
	applyLook(s, &e.right, e.size, 0, 0)

	now := e.clock.NowMillis()
	e.breatheStartMs = now
	e.blink = BlinkIdle
	e.scheduleNextBlink(now)
	e.ready = true

	log.Printf("[Eyes] Created eye pair: center=(%d,%d) spacing=%d size=%d, first blink at %dms",
		cx, cy, spacing, size, e.nextBlinkMs)
}

// Update 每个 tick 调用一次
//
// 顺序固定：呼吸 → 眨眼 → 视线，调用返回后画面是完整一致的一帧。
// 所有计算都基于时钟差值而不是 tick 次数，因此与调用频率无关。
func (e *Eyes) Update() {
	if !e.ready {
		return
	}
	now := e.clock.NowMillis()
	e.updateBreath(now)
	e.updateBlink(now)
	applyLook(e.surface, &e.left, e.size, e.lookX, e.lookY)
	applyLook(e.surface, &e.right, e.size, e.lookX, e.lookY)
}

// Look 设置视线方向，nx/ny 限制到 [-1, 1]，下一次 Update 生效
func (e *Eyes) Look(nx, ny float64) {
	if !e.ready {
		return
	}
	e.lookX = utils.Clamp(nx, -1, 1)
	e.lookY = utils.Clamp(ny, -1, 1)
}

// BlinkNow 立即从头开始一次眨眼
// 正在进行的眨眼会被重新开始；下一次不自主眨眼的时间只在眨眼结束时重新安排
func (e *Eyes) BlinkNow() {
	if !e.ready {
		return
	}
	e.blink = BlinkClosing
	e.blinkStartMs = e.clock.NowMillis()
}

// SetColors 更换配色并立即重绘两只眼睛
// 在 Create 之前调用时只记录配色，供 Create 使用
func (e *Eyes) SetColors(inner, glow color.RGBA) {
	e.palette = Palette{Inner: inner, Glow: glow}
	if !e.ready {
		return
	}
	e.applyPalette()
}

// SetGlow 设置光晕附加强度，限制到 [-60, 40]，下一次 Update 生效
func (e *Eyes) SetGlow(percent int) {
	if !e.ready {
		return
	}
	e.glowAdd = utils.ClampInt(percent, GlowTrimMin, GlowTrimMax)
}

// Ready 是否已经 Create
func (e *Eyes) Ready() bool { return e.ready }

// LookTarget 返回当前视线目标
func (e *Eyes) LookTarget() (float64, float64) { return e.lookX, e.lookY }

// GlowTrim 返回光晕附加强度
func (e *Eyes) GlowTrim() int { return e.glowAdd }

// GlowIntensity 返回实际使用的光晕强度 0..100
func (e *Eyes) GlowIntensity() int { return e.glowIntensity() }

// BlinkState 返回眨眼状态
func (e *Eyes) BlinkState() BlinkState { return e.blink }

// NextBlinkMs 返回下一次不自主眨眼的时间
func (e *Eyes) NextBlinkMs() uint32 { return e.nextBlinkMs }

// Palette 返回当前配色
func (e *Eyes) Palette() Palette { return e.palette }

// Group 返回分组容器句柄
func (e *Eyes) Group() Handle { return e.group }

// Left 返回左眼
func (e *Eyes) Left() *Eye { return &e.left }

// Right 返回右眼
func (e *Eyes) Right() *Eye { return &e.right }
