package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b)) }

func nearVec(a, b core.Vec2) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func TestNewViewport(t *testing.T) {
	v := New(core.V(16, 9), core.V(800, 600), DefaultLimits())

	wantMax := math.Max(16.5/800, 9.5/600)
	wantMin := math.Max(3.0/800, 3.0/600)
	if r := v.ScaleRange(); !near(r.Min, wantMin) || !near(r.Max, wantMax) {
		t.Errorf("ScaleRange() = %+v, want [%v, %v]", r, wantMin, wantMax)
	}
	if !near(v.Scale(), wantMax) {
		t.Errorf("Scale() = %v, want fully zoomed out %v", v.Scale(), wantMax)
	}
	if got := v.Translation(); !nearVec(got, core.V(8, 4.5)) {
		t.Errorf("Translation() = %v, want board centre", got)
	}
}

func TestTranslationRange(t *testing.T) {
	v := New(core.V(100, 100), core.V(200, 100), DefaultLimits())
	v.SetScale(0.1)

	h, vert := v.TranslationRange()
	// half view is (10, 5) world units
	if !near(h.Min, -0.25+10) || !near(h.Max, 100.25-10) {
		t.Errorf("horizontal = %+v", h)
	}
	if !near(vert.Min, -0.25+5) || !near(vert.Max, 100.25-5) {
		t.Errorf("vertical = %+v", vert)
	}

	v.SetTranslation(core.V(-50, 500))
	if got := v.Translation(); !nearVec(got, core.V(h.Min, vert.Max)) {
		t.Errorf("SetTranslation() clamped to %v", got)
	}
}

func TestTranslationRangeCollapses(t *testing.T) {
	// Fully zoomed out on a wide window: the vertical axis binds the scale,
	// so the horizontal view is wider than the board and gets pinned.
	v := New(core.V(10, 10), core.V(1000, 100), DefaultLimits())

	h, vert := v.TranslationRange()
	if h.Min != 5 || h.Max != 5 {
		t.Errorf("horizontal = %+v, want pinned to 5", h)
	}
	if !near(vert.Min, 5) || !near(vert.Max, 5) {
		t.Errorf("vertical = %+v, want about 5", vert)
	}
	v.SetTranslation(core.V(0, 0))
	if got := v.Translation(); got.X != 5 || !near(got.Y, 5) {
		t.Errorf("Translation() = %v, want (5, 5)", got)
	}
}

func TestClampIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := New(core.V(48, 27), core.V(1280, 720), DefaultLimits())

	for i := 0; i < 500; i++ {
		v.SetScale(rng.Float64() * 0.2)
		s := v.Scale()
		v.SetScale(s)
		if v.Scale() != s {
			t.Fatalf("SetScale not idempotent: %v then %v", s, v.Scale())
		}
		if r := v.ScaleRange(); !r.Contains(s) {
			t.Fatalf("scale %v outside %+v", s, r)
		}

		v.SetTranslation(core.V(rng.Float64()*100-25, rng.Float64()*60-15))
		tr := v.Translation()
		v.SetTranslation(tr)
		if v.Translation() != tr {
			t.Fatalf("SetTranslation not idempotent: %v then %v", tr, v.Translation())
		}
		h, vert := v.TranslationRange()
		if !h.Contains(tr.X) || !vert.Contains(tr.Y) {
			t.Fatalf("translation %v outside %+v %+v", tr, h, vert)
		}
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	v := New(core.V(32, 18), core.V(800, 600), DefaultLimits())
	v.SetScale(0.02)
	v.SetTranslation(core.V(12, 7))

	for i := 0; i < 1000; i++ {
		p := core.V(rng.Float64()*800, rng.Float64()*600)
		if got := v.WorldToScreen(v.ScreenToWorld(p)); !nearVec(got, p) {
			t.Fatalf("round trip of %v = %v", p, got)
		}
	}

	if got := v.ScreenToWorld(core.V(400, 300)); !nearVec(got, v.Translation()) {
		t.Errorf("window centre maps to %v, want translation %v", got, v.Translation())
	}
}

func TestZoomAtPreservesAnchor(t *testing.T) {
	tests := []struct {
		name   string
		cursor core.Vec2
	}{
		{"window centre", core.V(400, 300)},
		{"off centre", core.V(130, 520)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New(core.V(2000, 2000), core.V(800, 600), DefaultLimits())
			v.SetScale(1.0)
			v.SetTranslation(core.V(1000, 1000))

			before := v.ScreenToWorld(tc.cursor)
			v.ZoomAt(tc.cursor, 0.5)

			if v.Scale() != 0.5 {
				t.Fatalf("Scale() = %v, want 0.5", v.Scale())
			}
			if got := v.WorldToScreen(before); !nearVec(got, tc.cursor) {
				t.Errorf("anchor moved to %v, want %v", got, tc.cursor)
			}
		})
	}
}

func TestScrollDirection(t *testing.T) {
	v := New(core.V(64, 36), core.V(640, 360), DefaultLimits())
	start := v.Scale()

	v.Scroll(core.V(320, 180), 1)
	if !near(v.Scale(), start/1.2) {
		t.Errorf("scroll up: Scale() = %v, want %v", v.Scale(), start/1.2)
	}

	v.ZoomCentre(-5)
	if v.Scale() != v.ScaleRange().Max {
		t.Errorf("zooming out past the limit should clamp, got %v", v.Scale())
	}
}

func TestResizeClamps(t *testing.T) {
	v := New(core.V(16, 9), core.V(800, 600), DefaultLimits())
	v.SetScale(v.ScaleRange().Max)

	v.Resize(core.V(1600, 1200))
	if r := v.ScaleRange(); v.Scale() != r.Max {
		t.Errorf("after growing window Scale() = %v, want new max %v", v.Scale(), r.Max)
	}

	v.Resize(core.V(0, -4))
	if v.Size() != core.V(1, 1) {
		t.Errorf("Size() = %v, want clamped to 1x1", v.Size())
	}
	h, vert := v.TranslationRange()
	if tr := v.Translation(); !h.Contains(tr.X) || !vert.Contains(tr.Y) {
		t.Errorf("translation %v outside range after resize", tr)
	}
}

func TestCellAt(t *testing.T) {
	v := New(core.V(4, 3), core.V(40, 30), DefaultLimits())
	v.SetScale(0.1)
	v.SetTranslation(core.V(2, 1.5))

	tests := []struct {
		p      core.Vec2
		x, y   int
		inside bool
	}{
		{core.V(5, 5), 0, 0, true},
		{core.V(35, 25), 3, 2, true},
		{core.V(15, 12), 1, 1, true},
		{core.V(-1, 5), 0, 0, false},
		{core.V(40, 5), 0, 0, false},
	}
	for _, tc := range tests {
		x, y, ok := v.CellAt(tc.p)
		if ok != tc.inside || (ok && (x != tc.x || y != tc.y)) {
			t.Errorf("CellAt(%v) = (%d, %d, %v), want (%d, %d, %v)", tc.p, x, y, ok, tc.x, tc.y, tc.inside)
		}
	}
}
