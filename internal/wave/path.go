package wave

import (
	"strconv"
	"strings"
)

// PathData renders points as an SVG path: "M x,y L x,y ...".
func PathData(pts []Point) string {
	if len(pts) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(',')
		b.WriteString(formatCoord(p.Y))
	}
	return b.String()
}

// SVG wraps the path in a standalone document sized to the viewport.
func SVG(pts []Point, width, height float64) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	b.WriteString(formatCoord(width))
	b.WriteString(`" height="`)
	b.WriteString(formatCoord(height))
	b.WriteString(`" overflow="hidden">`)
	b.WriteString("\n  <path d=\"")
	b.WriteString(PathData(pts))
	b.WriteString("\" fill=\"none\" stroke=\"currentColor\" stroke-width=\"2\"/>\n</svg>\n")
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
