package visualizer

import (
	"math"

	"github.com/olivier-w/dopawave/internal/wave"
)

type dot struct {
	x int
	y int
}

// project maps the visible points onto a w x h dot grid, truncated to the
// first fraction of the path.
func project(pts []wave.Point, viewW, viewH float64, w, h int, fraction float64) []dot {
	if viewW <= 0 || viewH <= 0 || w < 1 || h < 1 {
		return nil
	}
	out := make([]dot, 0, len(pts))
	for _, p := range pts {
		if p.X >= viewW {
			break
		}
		x := int(p.X / viewW * float64(w))
		y := int(math.Round(p.Y / viewH * float64(h-1)))
		out = append(out, dot{x: clampInt(x, 0, w-1), y: clampInt(y, 0, h-1)})
	}
	keep := int(math.Ceil(clamp01(fraction) * float64(len(out))))
	return out[:keep]
}

// levels returns, per dot column, the top-most dot row touched by the path
// or -1 where the path does not reach.
func levels(dots []dot, w int) []int {
	lv := make([]int, w)
	for i := range lv {
		lv[i] = -1
	}
	for i, d := range dots {
		if i > 0 {
			// Fill columns skipped between samples.
			prev := dots[i-1]
			for x := prev.x + 1; x < d.x; x++ {
				t := float64(x-prev.x) / float64(d.x-prev.x)
				y := int(math.Round(float64(prev.y) + t*float64(d.y-prev.y)))
				setLevel(lv, x, y)
			}
		}
		setLevel(lv, d.x, d.y)
	}
	return lv
}

func setLevel(lv []int, x, y int) {
	if x < 0 || x >= len(lv) {
		return
	}
	if lv[x] < 0 || y < lv[x] {
		lv[x] = y
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
