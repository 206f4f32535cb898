package display

import (
	"github.com/decker502/eyes/pkg/eyes"
)

// Wander 没有输入设备时让视线在随机方向间停留和切换
type Wander struct {
	Eyes   *eyes.Eyes
	Clock  eyes.Clock
	Random eyes.Random

	// Reach 视线偏移的最大幅度 (0, 1]
	Reach float64
	// HoldMinMs / HoldSpanMs 每个方向停留 [min, min+span) 毫秒
	HoldMinMs  uint32
	HoldSpanMs uint32

	nextMs  uint32
	started bool
}

// NewWander 使用默认参数：幅度 0.6，停留 1.2 ~ 4 秒
func NewWander(e *eyes.Eyes, clock eyes.Clock, rnd eyes.Random) *Wander {
	return &Wander{
		Eyes:       e,
		Clock:      clock,
		Random:     rnd,
		Reach:      0.6,
		HoldMinMs:  1200,
		HoldSpanMs: 2800,
	}
}

// Tick 到期时选择新的视线方向
// 约三分之一的方向回到正前方
func (w *Wander) Tick() {
	now := w.Clock.NowMillis()
	if w.started && int32(now-w.nextMs) < 0 {
		return
	}
	w.started = true
	w.nextMs = now + w.HoldMinMs + w.Random.Bounded(w.HoldSpanMs)

	if w.Random.Bounded(3) == 0 {
		w.Eyes.Look(0, 0)
		return
	}
	w.Eyes.Look(w.axis(), w.axis()*0.5)
}

// axis 返回 [-Reach, Reach] 内的随机值
func (w *Wander) axis() float64 {
	const steps = 1000
	v := float64(w.Random.Bounded(2*steps+1))/steps - 1
	return v * w.Reach
}
