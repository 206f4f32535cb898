package eyes

import (
	"math/rand/v2"
	"time"
)

// Clock 单调毫秒时钟
// 返回值允许在约 49 天后回绕，所有时间差都按 uint32 减法计算
type Clock interface {
	NowMillis() uint32
}

// Random 有界均匀随机源
type Random interface {
	// Bounded 返回 [0, max) 内的均匀随机整数，max 为 0 时返回 0
	Bounded(max uint32) uint32
}

// SystemClock 基于 time.Since 的单调时钟
type SystemClock struct {
	start time.Time
}

// NewSystemClock 创建从当前时刻开始计时的时钟
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis 返回自创建以来经过的毫秒数
func (c *SystemClock) NowMillis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// ManualClock 手动推进的时钟，用于测试和离线渲染
type ManualClock struct {
	Now uint32
}

// NowMillis 返回当前设置的时间
func (c *ManualClock) NowMillis() uint32 {
	return c.Now
}

// Advance 将时钟向前推进 ms 毫秒
func (c *ManualClock) Advance(ms uint32) {
	c.Now += ms
}

type pcgRandom struct {
	r *rand.Rand
}

// NewRandom 创建基于 PCG 的随机源
func NewRandom(seed uint64) Random {
	return &pcgRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRandom) Bounded(max uint32) uint32 {
	if max == 0 {
		return 0
	}
	return p.r.Uint32N(max)
}
