package eyes

import (
	"math"
	"testing"
)

// TestBreatheLevel 测试呼吸振荡值
func TestBreatheLevel(t *testing.T) {
	const period = 2200

	tests := []struct {
		name     string
		elapsed  uint32
		expected float64
	}{
		{"起点", 0, 0.5},
		{"四分之一周期为最大值", period / 4, 1},
		{"半周期", period / 2, 0.5},
		{"四分之三周期为最小值", period * 3 / 4, 0},
		{"整周期", period, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BreatheLevel(tt.elapsed, period)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("BreatheLevel(%d) = %v, 期望 %v", tt.elapsed, got, tt.expected)
			}
		})
	}

	t.Run("取值范围", func(t *testing.T) {
		for ms := uint32(0); ms < period; ms += 7 {
			s := BreatheLevel(ms, period)
			if s < 0 || s > 1 {
				t.Fatalf("BreatheLevel(%d) = %v, out of [0,1]", ms, s)
			}
		}
	})

	t.Run("零周期", func(t *testing.T) {
		if got := BreatheLevel(1234, 0); got != 0.5 {
			t.Errorf("BreatheLevel(_, 0) = %v, want 0.5", got)
		}
	})
}

// TestBreatheAt_Periodic 相差一个周期的时刻得到完全相同的结果
func TestBreatheAt_Periodic(t *testing.T) {
	const period = 2200
	for ms := uint32(0); ms < period; ms += 13 {
		a := BreatheAt(ms, period, 60)
		b := BreatheAt(ms+period, period, 60)
		c := BreatheAt(ms+5*period, period, 60)
		if a != b || a != c {
			t.Fatalf("t=%d: %+v, %+v, %+v differ", ms, a, b, c)
		}
	}
}

// TestBreatheAt_Values 测试光晕宽度和不透明度
func TestBreatheAt_Values(t *testing.T) {
	const period = 2200

	tests := []struct {
		name      string
		elapsed   uint32
		intensity int
		wantWidth int
		wantOpa   uint8
	}{
		// 16 + 12*0.5 + 60*0.18 = 32.8
		{"中间值", 0, 60, 32, 160},
		// s ≈ 0.9949: 16 + 11.94 + 18 = 45.94，120 + 79.59 = 199.59
		{"接近最亮", 500, 100, 45, 199},
		// 16 + 0 + 0 = 16
		{"最暗", period * 3 / 4, 0, 16, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BreatheAt(tt.elapsed, period, tt.intensity)
			if b.ShadowWidth != tt.wantWidth {
				t.Errorf("ShadowWidth = %d, 期望 %d", b.ShadowWidth, tt.wantWidth)
			}
			if b.ShadowOpa != tt.wantOpa {
				t.Errorf("ShadowOpa = %d, 期望 %d", b.ShadowOpa, tt.wantOpa)
			}
		})
	}
}

// TestUpdate_BreathAppliedToBothEyes 每次 Update 都把光晕写入两只眼睛
func TestUpdate_BreathAppliedToBothEyes(t *testing.T) {
	e, surface, clock := newTestEyes(0)

	clock.Now = 550 // 四分之一周期
	e.Update()

	want := BreatheAt(550, 2200, 60)
	for _, eye := range []*Eye{e.Left(), e.Right()} {
		n := surface.node(eye.Outer())
		if n.shadowWidth != want.ShadowWidth || n.shadowOpa != want.ShadowOpa {
			t.Errorf("outer %d shadow = %d/%d, want %d/%d",
				eye.Outer(), n.shadowWidth, n.shadowOpa, want.ShadowWidth, want.ShadowOpa)
		}
	}
}
