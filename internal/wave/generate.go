package wave

import "math"

const (
	// Step is the horizontal sampling step in pixels.
	Step = 5.0
	// Overscan is generated past the right edge so the scrolled path never truncates.
	Overscan = 100.0
	// Margin keeps the curve off the container edges.
	Margin = 10.0

	plateau    = 0.1
	hoursInDay = 24.0
)

// Point is a screen coordinate.
type Point struct {
	X float64
	Y float64
}

// Samples returns the number of points generated for a viewport of the given width.
func Samples(width float64) int {
	if width <= 0 {
		return 0
	}
	return int(math.Ceil((width + Overscan) / Step))
}

// Generate returns the curve for pattern p. Baseline patterns ignore blend.
// Width and height must be positive.
func Generate(p Pattern, offset, width, height, blend float64) []Point {
	blend = clamp(blend, 0, 1)
	if p.IsBaseline() || blend == 0 {
		return Baseline(offset, width, height)
	}
	return Stimulus(p.Shape(), offset, width, height, blend)
}

// Baseline returns the daily-rhythm curve: a morning bump near 08:00, an
// afternoon dip near 14:00 and an evening ripple anchored at 18:00, one day
// per viewport width.
func Baseline(offset, width, height float64) []Point {
	n := Samples(width)
	pts := make([]Point, n)
	for i := range n {
		x := float64(i) * Step
		pts[i] = Point{X: x, Y: clampY(baselineY(x, offset, width, height), height)}
	}
	return pts
}

// Stimulus returns the single-peak curve described by s, blended toward the
// baseline by 1-blend.
func Stimulus(s Shape, offset, width, height, blend float64) []Point {
	blend = clamp(blend, 0, 1)
	n := Samples(width)
	pts := make([]Point, n)
	for i := range n {
		x := float64(i) * Step
		base := clampY(baselineY(x, offset, width, height), height)
		y := stimulusY(s, cycle(x+offset, width), height, blend)
		y = y*blend + base*(1-blend)
		pts[i] = Point{X: x, Y: clampY(y, height)}
	}
	return pts
}

// HourAt returns the baseline's hour of day at screen position x.
func HourAt(x, offset, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return cycle(x+offset, width) * hoursInDay
}

func baselineY(x, offset, width, height float64) float64 {
	t := cycle(x+offset, width) * hoursInDay
	morning := math.Max(0, 20*math.Exp(-(t-8)*(t-8)/2))
	afternoon := -10 * math.Exp(-(t-14)*(t-14)/8)
	evening := 5 * math.Sin((t-18)*0.5)
	return height/2 + morning + afternoon + evening
}

func stimulusY(s Shape, p, height, blend float64) float64 {
	mid := height / 2
	peak := height * s.PeakHeight * blend
	switch {
	case p < s.PeakPosition:
		rise := math.Pow(p/s.PeakPosition, s.RiseSpeed)
		return mid - peak*rise
	case p < s.PeakPosition+plateau:
		return mid - peak
	default:
		d := (p - (s.PeakPosition + plateau)) / (1 - plateau)
		trough := math.Sin(d*math.Pi) * s.TroughDepth
		return mid - peak*math.Exp(-d*s.DecayRate) + height*trough*blend
	}
}

// wrap maps v onto [0,width).
func wrap(v, width float64) float64 {
	m := math.Mod(v, width)
	if m < 0 {
		m += width
	}
	return m
}

// cycle maps v onto [0,1) with period width.
func cycle(v, width float64) float64 {
	return wrap(v, width) / width
}

func clampY(y, height float64) float64 {
	lo, hi := Margin, height-Margin
	if hi < lo {
		return height / 2
	}
	return clamp(y, lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
