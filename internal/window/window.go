// Package window shows the chart in a resizable desktop window.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/olivier-w/dopawave/internal/wave"
)

const (
	panelWidth   = 150
	buttonHeight = 32
	buttonGap    = 10
	strokeWidth  = 2
)

var (
	backgroundColor = color.RGBA{R: 14, G: 16, B: 22, A: 255}
	strokeColor     = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	buttonColor     = color.RGBA{R: 40, G: 44, B: 54, A: 255}
	activeColor     = color.RGBA{R: 220, G: 220, B: 228, A: 255}
	borderColor     = color.RGBA{R: 70, G: 76, B: 92, A: 255}
)

var patternKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4,
	ebiten.Key5, ebiten.Key6, ebiten.Key7,
}

type game struct {
	driver   *wave.Driver
	selected wave.Pattern
	points   []wave.Point
	width    int
	height   int
}

// Run opens the window and blocks until it is closed. fps sets the frame
// rate of the animation.
func Run(initial wave.Pattern, fps int) error {
	if fps > 0 {
		ebiten.SetTPS(fps)
	}
	ebiten.SetWindowSize(int(wave.DefaultWidth)+panelWidth, int(wave.DefaultHeight)+2*buttonGap)
	ebiten.SetWindowTitle("This is your dopamine")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &game{driver: wave.NewDriver(initial), selected: initial}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	patterns := wave.Patterns()
	for i, k := range patternKeys {
		if i < len(patterns) && inpututil.IsKeyJustPressed(k) {
			g.selected = patterns[i]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selected = g.selected.Next()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if p, ok := g.buttonAt(x, y); ok {
			g.selected = p
		}
	}

	g.points = g.driver.Frame(g.selected)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for i := 1; i < len(g.points); i++ {
		a, b := g.points[i-1], g.points[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, strokeColor, true)
	}

	// The panel covers the overscan tail of the path.
	chartW := g.chartWidth()
	vector.DrawFilledRect(screen, float32(chartW), 0, panelWidth, float32(g.height), backgroundColor, false)
	vector.StrokeLine(screen, float32(chartW), 0, float32(chartW), float32(g.height), 1, borderColor, false)

	for i, p := range wave.Patterns() {
		x, y, w, h := g.buttonRect(i)
		fill := buttonColor
		if p == g.selected {
			fill = activeColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, borderColor, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d %s", i+1, p.Label()), x+8, y+buttonHeight/2-8)
	}

	f := g.driver.Last()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %s  %.0f%%", f.Pattern, f.Phase(), f.Blend*100), 8, 6)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	g.driver.Resize(float64(g.chartWidth()), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *game) chartWidth() int {
	return max(1, g.width-panelWidth)
}

func (g *game) buttonRect(i int) (x, y, w, h int) {
	x = g.chartWidth() + buttonGap
	y = buttonGap + i*(buttonHeight+buttonGap)
	return x, y, panelWidth - 2*buttonGap, buttonHeight
}

func (g *game) buttonAt(px, py int) (wave.Pattern, bool) {
	for i, p := range wave.Patterns() {
		x, y, w, h := g.buttonRect(i)
		if px >= x && px < x+w && py >= y && py < y+h {
			return p, true
		}
	}
	return wave.Normal, false
}
