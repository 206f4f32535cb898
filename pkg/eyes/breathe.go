package eyes

import (
	"math"

	"github.com/decker502/eyes/pkg/utils"
)

// Breath 某一时刻的呼吸光晕参数
type Breath struct {
	// Level 平滑振荡值 0..1
	Level float64
	// ShadowWidth 光晕宽度（像素）
	ShadowWidth int
	// ShadowOpa 光晕不透明度 120..200
	ShadowOpa uint8
}

// BreatheLevel 返回呼吸振荡值 s = 0.5 + 0.5*sin(2π·t/period)
// elapsed 为自创建以来的毫秒数，period 为 0 时返回 0.5
func BreatheLevel(elapsed, periodMs uint32) float64 {
	if periodMs == 0 {
		return 0.5
	}
	t := elapsed % periodMs
	phase := float64(t) / float64(periodMs)
	return 0.5 + 0.5*math.Sin(phase*2*math.Pi)
}

// BreatheAt 计算光晕宽度和不透明度
// intensity 为已限制到 [0,100] 的光晕强度
func BreatheAt(elapsed, periodMs uint32, intensity int) Breath {
	s := BreatheLevel(elapsed, periodMs)
	width := int(utils.Lerp(16, 28, s) + float64(intensity)*0.18)
	opa := int(utils.Lerp(120, 200, s))
	return Breath{Level: s, ShadowWidth: width, ShadowOpa: uint8(opa)}
}

// updateBreath 每帧无条件地把光晕写入两只眼睛的外圈
func (e *Eyes) updateBreath(now uint32) {
	b := BreatheAt(now-e.breatheStartMs, e.opts.BreathePeriodMs, e.glowIntensity())
	for _, eye := range []*Eye{&e.left, &e.right} {
		e.surface.SetShadowWidth(eye.outer, b.ShadowWidth)
		e.surface.SetShadowOpa(eye.outer, b.ShadowOpa)
	}
}
