package eyes

import (
	"image/color"
	"reflect"
	"testing"
)

// TestNotReady_NoOps Create 之前的运行时调用不产生任何效果
func TestNotReady_NoOps(t *testing.T) {
	surface := newFakeSurface(320, 240)
	clock := &ManualClock{Now: 100}
	e := New(surface, clock, fixedRandom(0), DefaultOptions())

	e.Update()
	e.Look(0.5, 0.5)
	e.BlinkNow()
	e.SetGlow(30)

	if len(surface.calls) != 0 {
		t.Errorf("surface calls before Create = %v, want none", surface.calls)
	}
	if e.Ready() {
		t.Error("Ready() = true before Create")
	}
	if x, y := e.LookTarget(); x != 0 || y != 0 {
		t.Errorf("LookTarget = (%v,%v), want (0,0)", x, y)
	}
	if e.GlowTrim() != 0 {
		t.Errorf("GlowTrim = %d, want 0", e.GlowTrim())
	}
	if e.BlinkState() != BlinkIdle {
		t.Errorf("BlinkState = %v, want idle", e.BlinkState())
	}
}

// TestSetColors_BeforeCreate Create 之前设置的配色作为初始配色
func TestSetColors_BeforeCreate(t *testing.T) {
	surface := newFakeSurface(320, 240)
	e := New(surface, &ManualClock{}, fixedRandom(0), DefaultOptions())

	inner := color.RGBA{R: 0xE0, G: 0xF7, B: 0xFF, A: 0xFF}
	glow := color.RGBA{R: 0x1C, G: 0x9B, B: 0xFF, A: 0xFF}
	e.SetColors(inner, glow)
	if len(surface.calls) != 0 {
		t.Errorf("SetColors before Create touched the surface: %v", surface.calls)
	}

	e.CreateDefault(0, 160, 120)

	base := surface.styles[e.baseID-1]
	if base.BgColor != glow || base.BgGradColor != inner || base.ShadowColor != glow {
		t.Errorf("base style colors = %v/%v/%v, want glow/inner/glow", base.BgColor, base.BgGradColor, base.ShadowColor)
	}
	if core := surface.styles[e.coreID-1]; core.BgColor != inner {
		t.Errorf("core color = %v, want %v", core.BgColor, inner)
	}
}

// TestSetColors_Immediate 配色修改立即生效，无需等待 Update
func TestSetColors_Immediate(t *testing.T) {
	e, surface, _ := newTestEyes(0)
	surface.resetCalls()
	surface.reported = nil

	inner := color.RGBA{R: 0xFF, G: 0xEB, B: 0xEE, A: 0xFF}
	glow := color.RGBA{R: 0xFF, G: 0x4F, B: 0x81, A: 0xFF}
	e.SetColors(inner, glow)

	want := []StyleID{e.baseID, e.coreID}
	if !reflect.DeepEqual(surface.reported, want) {
		t.Errorf("reported styles = %v, want %v", surface.reported, want)
	}
	base := surface.styles[e.baseID-1]
	if base.BgColor != glow || base.BgGradColor != inner || base.ShadowColor != glow {
		t.Error("base style not restyled")
	}
	// 其余字段保持不变
	if base.ShadowSpread != 2 || base.BgGradDir != GradVertical {
		t.Errorf("base style fields changed: %+v", base)
	}
	if p := e.Palette(); p.Inner != inner || p.Glow != glow {
		t.Errorf("Palette() = %+v", p)
	}
}

// TestLook_Clamp Look(2, -3) 保存为 (1, -1)，Update 后核心偏移 (+10, -10)
func TestLook_Clamp(t *testing.T) {
	e, surface, clock := newTestEyes(0)

	e.Look(2.0, -3.0)
	if x, y := e.LookTarget(); x != 1 || y != -1 {
		t.Fatalf("LookTarget = (%v,%v), want (1,-1)", x, y)
	}

	// 下一次 Update 才生效
	if n := surface.node(e.Left().Inner()); n.tx != 0 || n.ty != 0 {
		t.Errorf("translate before Update = (%d,%d), want (0,0)", n.tx, n.ty)
	}

	clock.Advance(16)
	e.Update()

	// int(64*0.16) = 10
	for _, eye := range []*Eye{e.Left(), e.Right()} {
		n := surface.node(eye.Inner())
		if n.tx != 10 || n.ty != -10 {
			t.Errorf("inner %d translate = (%d,%d), want (10,-10)", eye.Inner(), n.tx, n.ty)
		}
	}
}

// TestSetGlow_Clamp 光晕附加强度被截断，不会保存原始输入
func TestSetGlow_Clamp(t *testing.T) {
	tests := []struct {
		name          string
		input         int
		wantTrim      int
		wantIntensity int
	}{
		{"上限", 100, 40, 100},
		{"下限", -100, -60, 0},
		{"范围内", 10, 10, 70},
		{"零", 0, 0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestEyes(0)
			e.SetGlow(tt.input)
			if e.GlowTrim() != tt.wantTrim {
				t.Errorf("GlowTrim = %d, want %d", e.GlowTrim(), tt.wantTrim)
			}
			if e.GlowIntensity() != tt.wantIntensity {
				t.Errorf("GlowIntensity = %d, want %d", e.GlowIntensity(), tt.wantIntensity)
			}
		})
	}

	t.Run("连续调用", func(t *testing.T) {
		e, _, _ := newTestEyes(0)
		e.SetGlow(100)
		if e.GlowTrim() != 40 {
			t.Errorf("after SetGlow(100) GlowTrim = %d, want 40", e.GlowTrim())
		}
		e.SetGlow(-100)
		if e.GlowTrim() != -60 {
			t.Errorf("after SetGlow(-100) GlowTrim = %d, want -60", e.GlowTrim())
		}
	})
}

// TestSetGlow_AffectsBreath 光晕强度通过下一次呼吸计算生效
func TestSetGlow_AffectsBreath(t *testing.T) {
	e, surface, clock := newTestEyes(0)
	clock.Now = 100
	e.Update()
	before := surface.node(e.Left().Outer()).shadowWidth

	e.SetGlow(40)
	if got := surface.node(e.Left().Outer()).shadowWidth; got != before {
		t.Errorf("shadow changed before Update: %d -> %d", before, got)
	}

	e.Update()
	after := surface.node(e.Left().Outer()).shadowWidth
	if want := BreatheAt(100, 2200, 100).ShadowWidth; after != want {
		t.Errorf("shadow after SetGlow(40) = %d, want %d", after, want)
	}
	if after <= before {
		t.Errorf("shadow did not grow: %d -> %d", before, after)
	}
}

// TestUpdate_Idempotent 时钟不变时重复 Update 产生完全相同的调用序列
func TestUpdate_Idempotent(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Eyes, c *ManualClock)
	}{
		{"空闲", func(e *Eyes, c *ManualClock) { c.Now = 700 }},
		{"眨眼中", func(e *Eyes, c *ManualClock) {
			e.BlinkNow()
			c.Advance(90)
		}},
		{"看向一侧", func(e *Eyes, c *ManualClock) {
			e.Look(-0.4, 0.8)
			c.Advance(1234)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, surface, clock := newTestEyes(0)
			tt.setup(e, clock)

			e.Update()
			surface.resetCalls()

			e.Update()
			first := surface.resetCalls()
			e.Update()
			second := surface.resetCalls()

			if len(first) == 0 {
				t.Fatal("Update produced no surface calls")
			}
			if !reflect.DeepEqual(first, second) {
				t.Errorf("calls differ:\n first=%v\nsecond=%v", first, second)
			}
		})
	}
}

// TestUpdate_Order 单次 Update 内的顺序：呼吸 → 眨眼 → 视线
func TestUpdate_Order(t *testing.T) {
	e, surface, clock := newTestEyes(0)
	e.BlinkNow()
	clock.Advance(60)
	surface.resetCalls()

	e.Update()
	calls := surface.resetCalls()

	index := func(prefix string) int {
		for i, c := range calls {
			if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
				return i
			}
		}
		return -1
	}
	breath := index("shadow-width")
	squash := index("size")
	look := index("translate")
	if breath < 0 || squash < 0 || look < 0 {
		t.Fatalf("missing calls: %v", calls)
	}
	if !(breath < squash && squash < look) {
		t.Errorf("order breath=%d squash=%d look=%d, want increasing; calls=%v", breath, squash, look, calls)
	}
}
