package visualizer

import (
	"strings"
	"testing"

	"github.com/olivier-w/dopawave/internal/wave"
)

func flatCurve(y float64) []wave.Point {
	pts := make([]wave.Point, wave.Samples(800))
	for i := range pts {
		pts[i] = wave.Point{X: float64(i) * wave.Step, Y: y}
	}
	return pts
}

func plainModes() []Renderer {
	b, l, a := NewBraille(), NewLine(), NewArea()
	b.profile, l.profile, a.profile = colorNone, colorNone, colorNone
	return []Renderer{b, l, a}
}

func TestRenderersProduceExactRowCount(t *testing.T) {
	pts := wave.Generate(wave.Cocaine, 0, 800, 300, 1)
	for _, r := range plainModes() {
		r.Update(pts, 800, 300, 40, 12)
		lines := strings.Split(r.View(), "\n")
		if len(lines) != 12 {
			t.Fatalf("%s: expected 12 rows, got %d", r.Name(), len(lines))
		}
		for i, line := range lines {
			if n := len([]rune(line)); n != 40 {
				t.Fatalf("%s: row %d has %d cells, want 40", r.Name(), i, n)
			}
		}
	}
}

func TestRenderersHandleEmptyGrid(t *testing.T) {
	for _, r := range plainModes() {
		r.Update(flatCurve(150), 800, 300, 0, 0)
		if r.View() != "" {
			t.Fatalf("%s: expected empty view, got %q", r.Name(), r.View())
		}
	}
}

func TestLineDrawsFlatCurveOnOneRow(t *testing.T) {
	l := NewLine()
	l.profile = colorNone
	l.Update(flatCurve(0), 800, 300, 20, 5)
	lines := strings.Split(l.View(), "\n")
	if got := strings.Count(lines[0], "•"); got != 20 {
		t.Fatalf("expected the top row filled, got %q", lines[0])
	}
	for _, line := range lines[1:] {
		if strings.Contains(line, "•") {
			t.Fatalf("unexpected curve cell outside top row: %q", line)
		}
	}
}

func TestBrailleSkipsOverscan(t *testing.T) {
	b := NewBraille()
	b.profile = colorNone
	// Only overscan points: nothing visible.
	b.Update([]wave.Point{{X: 800, Y: 150}, {X: 850, Y: 10}}, 800, 300, 10, 3)
	for _, r := range b.View() {
		if r != '\n' && r != 0x2800 {
			t.Fatalf("expected blank braille cells, got %q", b.View())
		}
	}
}

func TestRevealHidesThenDrawsPath(t *testing.T) {
	l := NewLine()
	l.profile = colorNone
	l.SetReveal(0)
	l.Update(flatCurve(0), 800, 300, 20, 5)
	if strings.Contains(l.View(), "•") {
		t.Fatalf("expected no curve at reveal 0, got %q", l.View())
	}

	l.SetReveal(0.5)
	l.Update(flatCurve(0), 800, 300, 20, 5)
	top := strings.Split(l.View(), "\n")[0]
	if n := strings.Count(top, "•"); n == 0 || n >= 20 {
		t.Fatalf("expected a partial curve at reveal 0.5, got %q", top)
	}
}

func TestRevealSpringSettles(t *testing.T) {
	r := NewReveal(60)
	if r.Fraction() != 0 {
		t.Fatalf("expected reveal to start hidden, got %v", r.Fraction())
	}
	prev := 0.0
	for range 60 * 5 {
		f := r.Step()
		if f < prev-1e-6 {
			t.Fatalf("reveal went backwards: %v after %v", f, prev)
		}
		prev = f
	}
	if !r.Done() || r.Fraction() != 1 {
		t.Fatalf("expected settled reveal, got %v done=%v", r.Fraction(), r.Done())
	}

	r.Restart()
	if r.Done() || r.Fraction() != 0 {
		t.Fatal("expected restart to hide the path")
	}
}

func TestAreaFillsBelowSurface(t *testing.T) {
	a := NewArea()
	a.profile = colorNone
	a.Update(flatCurve(150), 800, 300, 10, 6)
	lines := strings.Split(a.View(), "\n")
	if strings.TrimSpace(lines[0]) != "" {
		t.Fatalf("expected empty sky above the curve, got %q", lines[0])
	}
	if strings.TrimSpace(lines[len(lines)-1]) == "" {
		t.Fatalf("expected fill at the floor, got %q", lines[len(lines)-1])
	}
}
