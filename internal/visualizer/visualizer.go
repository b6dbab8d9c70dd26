package visualizer

import "github.com/olivier-w/dopawave/internal/wave"

// Renderer rasterizes a curve into a block of terminal text.
//
// Points are in the pixel space of a viewW x viewH viewport; the renderer
// scales them onto a cols x rows cell grid. Points at or past viewW are
// overscan and are not drawn.
type Renderer interface {
	Name() string
	Update(points []wave.Point, viewW, viewH float64, cols, rows int)
	View() string
}

// Modes returns all available renderers.
func Modes() []Renderer {
	return []Renderer{
		NewBraille(),
		NewLine(),
		NewArea(),
	}
}
