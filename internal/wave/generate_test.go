package wave

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestBaselineIsPeriodicInWidth(t *testing.T) {
	const width, height = 800.0, 300.0
	for x := 0.0; x < width; x += 7.5 {
		a := baselineY(x, 0, width, height)
		b := baselineY(x+width, 0, width, height)
		if math.Abs(a-b) > eps {
			t.Fatalf("baseline not periodic at x=%v: %v vs %v", x, a, b)
		}
	}
}

func TestBaselineFirstPointMatchesMidnight(t *testing.T) {
	pts := Generate(Normal, 0, 800, 300, 1)
	if len(pts) == 0 {
		t.Fatal("expected points")
	}
	want := 150 + math.Max(0, 20*math.Exp(-32)) - 10*math.Exp(-196.0/8) + 5*math.Sin(-9)
	got := pts[0].Y
	if got < 10 || got > 290 {
		t.Fatalf("first point outside margins: %v", got)
	}
	if math.Abs(got-want) > eps {
		t.Fatalf("expected y=%v at t=0h, got %v", want, got)
	}
}

func TestGenerateSpansWidthPlusOverscan(t *testing.T) {
	for _, width := range []float64{1, 33, 800, 1234.5} {
		pts := Generate(Cocaine, 17, width, 300, 0.7)
		if len(pts) != Samples(width) {
			t.Fatalf("width %v: expected %d points, got %d", width, Samples(width), len(pts))
		}
		last := pts[len(pts)-1].X
		if last >= width+Overscan {
			t.Fatalf("width %v: last x %v past overscan", width, last)
		}
		if last+Step < width+Overscan {
			t.Fatalf("width %v: last x %v leaves a gap before %v", width, last, width+Overscan)
		}
		for i := 1; i < len(pts); i++ {
			if pts[i].X-pts[i-1].X != Step {
				t.Fatalf("width %v: uneven step at %d", width, i)
			}
		}
	}
}

func TestGenerateClampsEveryPattern(t *testing.T) {
	const height = 300.0
	for _, p := range Patterns() {
		for _, blend := range []float64{0, 0.3, 1} {
			for _, pt := range Generate(p, 123, 800, height, blend) {
				if pt.Y < Margin || pt.Y > height-Margin {
					t.Fatalf("%s blend %v: y=%v escapes margins", p, blend, pt.Y)
				}
			}
		}
	}
}

func TestStimulusPlateauAtFullBlend(t *testing.T) {
	s := Shape{PeakHeight: 0.1, PeakPosition: 0.3, DecayRate: 1, TroughDepth: 0, RiseSpeed: 0.5}
	pts := Stimulus(s, 0, 800, 300, 1)
	// p = 0.35 is the plateau mid-point.
	got := pts[int(0.35*800/Step)].Y
	want := 150 - 300*0.1
	if math.Abs(got-want) > eps {
		t.Fatalf("expected plateau y=%v, got %v", want, got)
	}
}

func TestStimulusAtZeroBlendMatchesBaseline(t *testing.T) {
	base := Baseline(42, 800, 300)
	for _, p := range Patterns() {
		got := Stimulus(p.Shape(), 42, 800, 300, 0)
		for i := range base {
			if got[i] != base[i] {
				t.Fatalf("%s: point %d differs: %+v vs %+v", p, i, got[i], base[i])
			}
		}
	}
}

func TestStimulusPeakSitsAboveRise(t *testing.T) {
	s := Shape{PeakHeight: 0.8, PeakPosition: 0.2, DecayRate: 2.5, TroughDepth: 0.6, RiseSpeed: 0.6}
	pts := Stimulus(s, 0, 800, 300, 1)
	plateau := pts[int(0.25*800/Step)].Y
	rising := pts[int(0.05*800/Step)].Y
	if !(plateau < rising) {
		t.Fatalf("expected y at p=0.25 (%v) above y at p=0.05 (%v)", plateau, rising)
	}
}

func TestStimulusUndershootsAfterDecay(t *testing.T) {
	s := Shape{PeakHeight: 0.05, PeakPosition: 0.1, DecayRate: 8, TroughDepth: 0.2, RiseSpeed: 0.5}
	pts := Stimulus(s, 0, 800, 300, 1)
	// Halfway through the decay phase the trough term dominates.
	y := pts[int(0.65*800/Step)].Y
	if y <= 150 {
		t.Fatalf("expected a dip below baseline, got y=%v", y)
	}
}

func TestNegativeOffsetWraps(t *testing.T) {
	a := Generate(Chocolate, -10, 800, 300, 0.5)
	b := Generate(Chocolate, 790, 800, 300, 0.5)
	for i := range a {
		if math.Abs(a[i].Y-b[i].Y) > eps {
			t.Fatalf("point %d: %v vs %v", i, a[i].Y, b[i].Y)
		}
	}
}

func TestTinyViewportStaysCentered(t *testing.T) {
	for _, pt := range Generate(Amphetamine, 0, 100, 12, 1) {
		if pt.Y != 6 {
			t.Fatalf("expected centered y in a viewport smaller than the margins, got %v", pt.Y)
		}
	}
}

func TestParsePattern(t *testing.T) {
	for _, p := range Patterns() {
		got, err := ParsePattern(p.String())
		if err != nil || got != p {
			t.Fatalf("ParsePattern(%q) = %v, %v", p.String(), got, err)
		}
	}
	if got, err := ParsePattern(" Baseline "); err != nil || got != Normal {
		t.Fatalf("expected baseline alias, got %v, %v", got, err)
	}
	if _, err := ParsePattern("caffeine"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestInvalidPatternFallsBackToBaseline(t *testing.T) {
	got := Generate(Pattern(99), 0, 800, 300, 1)
	want := Baseline(0, 800, 300)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("point %d: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestPatternCycling(t *testing.T) {
	if Sex.Next() != Normal {
		t.Fatalf("expected wrap to normal, got %v", Sex.Next())
	}
	if Normal.Prev() != Sex {
		t.Fatalf("expected wrap to sex, got %v", Normal.Prev())
	}
	if Videogames.Label() != "Videogames" {
		t.Fatalf("unexpected label %q", Videogames.Label())
	}
}
