package eyes

// BlinkState 眨眼状态
type BlinkState int

const (
	// BlinkIdle 睁眼等待下一次眨眼
	BlinkIdle BlinkState = iota
	// BlinkClosing 前半程，100 → 12
	BlinkClosing
	// BlinkOpening 后半程，12 → 100
	BlinkOpening
)

// String 返回状态名称
func (s BlinkState) String() string {
	switch s {
	case BlinkIdle:
		return "idle"
	case BlinkClosing:
		return "closing"
	case BlinkOpening:
		return "opening"
	default:
		return "unknown"
	}
}

// 眨眼时的压缩范围
const (
	blinkOpenPercent   = 100
	blinkClosedPercent = 12
	blinkTravel        = blinkOpenPercent - blinkClosedPercent
)

// BlinkPhase 计算眨眼进度
//
// 闭合与睁开各占 durationMs，进度 = (now - start) / (2 * durationMs)。
// 眨眼过程中位于 [0, 1)，>= 1 表示本次眨眼结束。
// durationMs 为 0 时立即返回 1。
func BlinkPhase(now, start, durationMs uint32) float64 {
	if durationMs == 0 {
		return 1
	}
	return float64(now-start) / float64(2*durationMs)
}

// BlinkStateAt 返回进度对应的状态
func BlinkStateAt(phase float64) BlinkState {
	switch {
	case phase >= 1:
		return BlinkIdle
	case phase < 0.5:
		return BlinkClosing
	default:
		return BlinkOpening
	}
}

// SquashAt 返回进度对应的高度百分比
// 前半程线性 100 → 12，后半程线性 12 → 100，结束后为 100
func SquashAt(phase float64) int {
	switch BlinkStateAt(phase) {
	case BlinkClosing:
		return blinkOpenPercent - int(phase/0.5*blinkTravel)
	case BlinkOpening:
		p := (phase - 0.5) / 0.5
		return blinkClosedPercent + int(p*blinkTravel)
	default:
		return blinkOpenPercent
	}
}

// scheduleNextBlink 安排下一次不自主眨眼：now + [min, min+span)
func (e *Eyes) scheduleNextBlink(now uint32) {
	e.nextBlinkMs = now + e.opts.BlinkIntervalMinMs + e.rnd.Bounded(e.opts.BlinkIntervalSpanMs)
}

// updateBlink 推进眨眼状态机
func (e *Eyes) updateBlink(now uint32) {
	if e.blink == BlinkIdle {
		// 有符号差值比较，时钟回绕后依然正确
		if int32(now-e.nextBlinkMs) >= 0 {
			e.blink = BlinkClosing
			e.blinkStartMs = now
		}
		return
	}

	phase := BlinkPhase(now, e.blinkStartMs, e.opts.BlinkDurationMs)
	e.blink = BlinkStateAt(phase)
	if e.blink == BlinkIdle {
		// 强制完全睁开，消除取整误差
		applySquash(e.surface, &e.left, blinkOpenPercent)
		applySquash(e.surface, &e.right, blinkOpenPercent)
		e.scheduleNextBlink(now)
		return
	}

	h := SquashAt(phase)
	applySquash(e.surface, &e.left, h)
	applySquash(e.surface, &e.right, h)
}
