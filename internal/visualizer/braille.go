package visualizer

import (
	"strings"

	"github.com/olivier-w/dopawave/internal/wave"
)

// Braille draws the curve on a Unicode Braille dot grid.
// Each cell is a 2x4 dot grid, giving 2x horizontal and 4x vertical resolution.
type Braille struct {
	output  string
	reveal  float64
	profile colorProfile
}

func NewBraille() *Braille {
	return &Braille{reveal: 1, profile: currentColorProfile()}
}

func (b *Braille) Name() string { return "braille" }

// SetReveal limits drawing to the first fraction of the path.
func (b *Braille) SetReveal(fraction float64) { b.reveal = fraction }

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

func (b *Braille) Update(points []wave.Point, viewW, viewH float64, cols, rows int) {
	if cols < 1 || rows < 1 {
		b.output = ""
		return
	}

	dotCols := cols * 2
	dotRows := rows * 4
	cells := make([][]uint, rows)
	for r := range rows {
		cells[r] = make([]uint, cols)
	}
	plot := func(x, y int) {
		if x < 0 || x >= dotCols || y < 0 || y >= dotRows {
			return
		}
		cells[y/4][x/2] |= 1 << brailleBits[x%2][y%4]
	}

	dots := project(points, viewW, viewH, dotCols, dotRows, b.reveal)
	for i, d := range dots {
		if i == 0 {
			plot(d.x, d.y)
			continue
		}
		p := dots[i-1]
		drawLine(p.x, p.y, d.x, d.y, plot)
	}

	// Colour each cell column by how high the curve sits in it.
	top := levels(dots, dotCols)
	den := float64(max(1, dotRows-1))

	var out strings.Builder
	color := newANSIState(b.profile)
	for r := range rows {
		if r > 0 {
			out.WriteByte('\n')
		}
		for c := range cols {
			pattern := cells[r][c]
			if pattern != 0 && b.profile != colorNone {
				lv := top[c*2]
				if lv < 0 {
					lv = top[c*2+1]
				}
				color.set(&out, levelColor(1-float64(max(lv, 0))/den))
			}
			out.WriteRune(rune(0x2800 + pattern))
		}
		color.reset(&out)
	}

	b.output = out.String()
}

func (b *Braille) View() string {
	return b.output
}
