package visualizer

import (
	"strings"

	"github.com/olivier-w/dopawave/internal/wave"
)

const (
	cellEmpty uint8 = iota
	cellCurve
	cellMid
)

// Line draws the curve as connected cell-resolution segments over a dotted
// midline.
type Line struct {
	output  string
	reveal  float64
	profile colorProfile
}

// NewLine creates a line renderer.
func NewLine() *Line {
	return &Line{reveal: 1, profile: currentColorProfile()}
}

func (l *Line) Name() string { return "line" }

// SetReveal limits drawing to the first fraction of the path.
func (l *Line) SetReveal(fraction float64) { l.reveal = fraction }

func (l *Line) Update(points []wave.Point, viewW, viewH float64, cols, rows int) {
	if cols < 2 || rows < 1 {
		l.output = ""
		return
	}

	mask := make([][]uint8, rows)
	for r := range rows {
		mask[r] = make([]uint8, cols)
	}
	mid := (rows - 1) / 2
	for c := range cols {
		mask[mid][c] = cellMid
	}

	dots := project(points, viewW, viewH, cols, rows, l.reveal)
	for i, d := range dots {
		if i == 0 {
			plotMask(mask, d.x, d.y, cellCurve)
			continue
		}
		p := dots[i-1]
		drawLine(p.x, p.y, d.x, d.y, func(x, y int) {
			plotMask(mask, x, y, cellCurve)
		})
	}

	var out strings.Builder
	color := newANSIState(l.profile)
	den := float64(max(1, rows-1))
	for r := range rows {
		if r > 0 {
			out.WriteByte('\n')
		}
		for c := range cols {
			switch mask[r][c] {
			case cellCurve:
				color.set(&out, levelColor(1-float64(r)/den))
				out.WriteRune('•')
			case cellMid:
				color.set(&out, guideColor(float64(c)/float64(max(1, cols-1))))
				out.WriteRune('·')
			default:
				out.WriteByte(' ')
			}
		}
		color.reset(&out)
	}

	l.output = out.String()
}

func (l *Line) View() string {
	return l.output
}

func plotMask(mask [][]uint8, x, y int, v uint8) {
	if y < 0 || y >= len(mask) || x < 0 || x >= len(mask[y]) {
		return
	}
	mask[y][x] = v
}

// drawLine walks a Bresenham line from (x0,y0) to (x1,y1) inclusive.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
