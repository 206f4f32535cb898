package display

import (
	"math"
	"testing"

	"github.com/decker502/eyes/pkg/eyes"
	"github.com/decker502/eyes/pkg/shape"
)

func newWanderEyes(t *testing.T) (*eyes.Eyes, *eyes.ManualClock) {
	t.Helper()
	scene := shape.NewScene(320, 240)
	clock := &eyes.ManualClock{}
	e := eyes.New(scene, clock, eyes.NewRandom(5), eyes.DefaultOptions())
	e.CreateDefault(0, 160, 120)
	return e, clock
}

// TestWander_Hold 停留期间不改变视线
func TestWander_Hold(t *testing.T) {
	e, clock := newWanderEyes(t)
	w := NewWander(e, clock, eyes.NewRandom(11))
	w.HoldMinMs, w.HoldSpanMs = 1000, 0

	w.Tick()
	x0, y0 := e.LookTarget()

	for i := 0; i < 60; i++ {
		clock.Advance(16) // 960ms
		w.Tick()
		if x, y := e.LookTarget(); x != x0 || y != y0 {
			t.Fatalf("gaze moved during hold at %dms", clock.Now)
		}
	}
	if w.nextMs != 1000 {
		t.Errorf("nextMs = %d, want 1000", w.nextMs)
	}
}

// TestWander_Reach 视线始终在幅度范围内
func TestWander_Reach(t *testing.T) {
	e, clock := newWanderEyes(t)
	w := NewWander(e, clock, eyes.NewRandom(42))

	moved := false
	for i := 0; i < 200; i++ {
		w.Tick()
		x, y := e.LookTarget()
		if math.Abs(x) > w.Reach+1e-9 || math.Abs(y) > w.Reach*0.5+1e-9 {
			t.Fatalf("gaze (%v,%v) exceeds reach %v", x, y, w.Reach)
		}
		if x != 0 {
			moved = true
		}
		clock.Advance(w.HoldMinMs + w.HoldSpanMs)
	}
	if !moved {
		t.Error("gaze never left center")
	}
}
