package visualizer

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
)

type colorProfile uint8

const (
	colorNone colorProfile = iota
	colorANSI16
	colorANSI256
	colorTrueColor
)

type colorRGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	profileMu  sync.Mutex
	profileSet bool
	profile    colorProfile
	seqCache   sync.Map
)

// SetColorMode overrides terminal colour detection for renderers created
// afterwards. mode is one of auto, none, 16, 256 or truecolor.
func SetColorMode(mode string) error {
	var p colorProfile
	switch strings.ToLower(mode) {
	case "", "auto":
		p = detectColorProfile()
	case "none", "off", "never":
		p = colorNone
	case "16":
		p = colorANSI16
	case "256":
		p = colorANSI256
	case "truecolor", "true", "24bit":
		p = colorTrueColor
	default:
		return fmt.Errorf("unknown color mode %q (available: auto, none, 16, 256, truecolor)", mode)
	}
	profileMu.Lock()
	profile, profileSet = p, true
	profileMu.Unlock()
	return nil
}

func currentColorProfile() colorProfile {
	profileMu.Lock()
	defer profileMu.Unlock()
	if !profileSet {
		profile, profileSet = detectColorProfile(), true
	}
	return profile
}

func detectColorProfile() colorProfile {
	if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
		return colorNone
	}
	term := strings.ToLower(os.Getenv("TERM"))
	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
	switch {
	case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
		return colorTrueColor
	case strings.Contains(term, "256color"):
		return colorANSI256
	case term == "", term == "dumb":
		return colorNone
	default:
		return colorANSI16
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpColor(a, b colorRGB, t float64) colorRGB {
	t = clamp01(t)
	return colorRGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

var levelStops = []colorRGB{
	{R: 40, G: 120, B: 200},
	{R: 60, G: 200, B: 190},
	{R: 160, G: 110, B: 255},
	{R: 255, G: 70, B: 150},
}

// levelColor maps a curve height in [0,1] to the stroke colour, cool near the
// floor and hot at the ceiling.
func levelColor(level float64) colorRGB {
	level = clamp01(level)
	switch {
	case level < 0.45:
		return lerpColor(levelStops[0], levelStops[1], level/0.45)
	case level < 0.7:
		return lerpColor(levelStops[1], levelStops[2], (level-0.45)/0.25)
	default:
		return lerpColor(levelStops[2], levelStops[3], (level-0.7)/0.3)
	}
}

// guideColor is the dim grey of the midline, brightening slightly to the right.
func guideColor(t float64) colorRGB {
	return lerpColor(colorRGB{R: 38, G: 40, B: 48}, colorRGB{R: 76, G: 80, B: 96}, t)
}

type ansiState struct {
	profile colorProfile
	current uint32
}

func newANSIState(p colorProfile) ansiState {
	return ansiState{profile: p, current: ^uint32(0)}
}

func (s *ansiState) set(sb *strings.Builder, c colorRGB) {
	if s.profile == colorNone {
		return
	}
	key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if key == s.current {
		return
	}
	sb.WriteString(colorSequence(s.profile, c))
	s.current = key
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == colorNone || s.current == ^uint32(0) {
		return
	}
	sb.WriteString("\x1b[0m")
	s.current = ^uint32(0)
}

var ansi16 = []colorRGB{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 49, B: 49},
	{R: 13, G: 188, B: 121},
	{R: 229, G: 229, B: 16},
	{R: 36, G: 114, B: 200},
	{R: 188, G: 63, B: 188},
	{R: 17, G: 168, B: 205},
	{R: 229, G: 229, B: 229},
}

func colorSequence(p colorProfile, c colorRGB) string {
	key := uint32(p)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	var seq string
	switch p {
	case colorTrueColor:
		seq = fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	case colorANSI256:
		idx := 16 + 36*(int(c.R)*5/255) + 6*(int(c.G)*5/255) + int(c.B)*5/255
		seq = fmt.Sprintf("\x1b[38;5;%dm", idx)
	case colorANSI16:
		best, bestDist := 0, math.MaxFloat64
		for i, q := range ansi16 {
			dr := float64(c.R) - float64(q.R)
			dg := float64(c.G) - float64(q.G)
			db := float64(c.B) - float64(q.B)
			if d := dr*dr + dg*dg + db*db; d < bestDist {
				best, bestDist = i, d
			}
		}
		seq = fmt.Sprintf("\x1b[%dm", 30+best)
	}

	seqCache.Store(key, seq)
	return seq
}
