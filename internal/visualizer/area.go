package visualizer

import (
	"strings"

	"github.com/olivier-w/dopawave/internal/wave"
)

var densityRamp = []byte(" .:-=+*#%@")

// Area renders a filled chart under the curve using ASCII density characters,
// dense at the surface and thinning toward the floor.
type Area struct {
	output  string
	reveal  float64
	profile colorProfile
}

func NewArea() *Area {
	return &Area{reveal: 1, profile: currentColorProfile()}
}

func (a *Area) Name() string { return "area" }

// SetReveal limits drawing to the first fraction of the path.
func (a *Area) SetReveal(fraction float64) { a.reveal = fraction }

func (a *Area) Update(points []wave.Point, viewW, viewH float64, cols, rows int) {
	if cols < 1 || rows < 1 {
		a.output = ""
		return
	}

	// Sub-cell vertical resolution for the partial surface glyph.
	const sub = 4
	subRows := rows * sub
	dots := project(points, viewW, viewH, cols, subRows, a.reveal)
	top := levels(dots, cols)

	rampLen := len(densityRamp)
	var out strings.Builder
	color := newANSIState(a.profile)
	for r := range rows {
		if r > 0 {
			out.WriteByte('\n')
		}
		for c := range cols {
			t := top[c]
			if t < 0 {
				out.WriteByte(' ')
				continue
			}
			// Sub-rows of this cell that lie on or below the surface.
			filled := (r+1)*sub - t
			var ch byte
			switch {
			case filled <= 0:
				ch = ' '
			case filled < sub:
				ch = densityRamp[filled*(rampLen-1)/sub]
			default:
				depth := float64(r*sub-t) / float64(max(1, subRows-t))
				idx := rampLen - 1 - int(depth*float64(rampLen-2))
				ch = densityRamp[clampInt(idx, 1, rampLen-1)]
			}
			if ch != ' ' && a.profile != colorNone {
				color.set(&out, levelColor(1-float64(t)/float64(max(1, subRows-1))))
			}
			out.WriteByte(ch)
		}
		color.reset(&out)
	}

	a.output = out.String()
}

func (a *Area) View() string {
	return a.output
}
