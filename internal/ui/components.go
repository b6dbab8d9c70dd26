package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/dopawave/internal/util"
	"github.com/olivier-w/dopawave/internal/wave"
)

const indent = 2

// buttonSpan is the clickable column range [start, end) of one pattern button.
type buttonSpan struct {
	start   int
	end     int
	pattern wave.Pattern
}

// renderButtons draws the pattern selector row and returns where each button
// landed, measured from the left edge of the terminal.
func renderButtons(selected wave.Pattern) (string, []buttonSpan) {
	patterns := wave.Patterns()
	parts := make([]string, len(patterns))
	spans := make([]buttonSpan, len(patterns))
	x := indent
	for i, p := range patterns {
		style := buttonStyle
		if p == selected {
			style = activeButtonStyle
		}
		parts[i] = style.Render(fmt.Sprintf("%d %s", i+1, p.Label()))
		w := lipgloss.Width(parts[i])
		spans[i] = buttonSpan{start: x, end: x + w, pattern: p}
		x += w + 1
	}
	return strings.Join(parts, " "), spans
}

func hitButton(spans []buttonSpan, x int) (wave.Pattern, bool) {
	for _, s := range spans {
		if x >= s.start && x < s.end {
			return s.pattern, true
		}
	}
	return wave.Normal, false
}

// renderStatus describes the frame: pattern, phase, blend bar, the clock
// time at the left edge of the chart and the renderer name.
func renderStatus(f wave.Frame, width float64, bar, renderer string, paused bool) string {
	state := f.Phase().String()
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  %s  %s %3d%%  %s  %s",
		statusStyle.Render(f.Pattern.Label()),
		statusStyle.Render(state),
		bar,
		int(f.Blend*100+0.5),
		timeStyle.Render(util.FormatClock(wave.HourAt(0, f.Offset, width))),
		statusStyle.Render(renderer),
	)
}

func indentLines(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
