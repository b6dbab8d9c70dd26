package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/dopawave/internal/ui"
	"github.com/olivier-w/dopawave/internal/visualizer"
	"github.com/olivier-w/dopawave/internal/wave"
	"github.com/olivier-w/dopawave/internal/window"
)

const logFileName = "dopawave.log"

var (
	patternFlag = flag.String("pattern", "normal", "initial pattern: normal, cocaine, amphetamine, chocolate, exercise, videogames, sex")
	styleFlag   = flag.String("style", "braille", "chart style: braille, line, area")
	colorFlag   = flag.String("color", "auto", "color mode: auto, none, 16, 256, truecolor")
	fpsFlag     = flag.Int("fps", 60, "frames per second")
	guiFlag     = flag.Bool("gui", false, "open a desktop window instead of the terminal UI")
	svgFlag     = flag.String("svg", "", "write an SVG snapshot to this file and exit")
	framesFlag  = flag.Int("frames", 0, "frames to advance before the snapshot")
	widthFlag   = flag.Float64("width", wave.DefaultWidth, "snapshot width in pixels")
	heightFlag  = flag.Float64("height", wave.DefaultHeight, "snapshot height in pixels")
	debugFlag   = flag.Bool("debug", false, "write a debug log to "+logFileName)
)

func main() {
	flag.Parse()

	pattern, err := wave.ParsePattern(*patternFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := visualizer.SetColorMode(*colorFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	if *svgFlag != "" {
		if err := writeSnapshot(*svgFlag, pattern, *framesFlag, *widthFlag, *heightFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *guiFlag {
		if err := window.Run(pattern, *fpsFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(ui.Config{Pattern: pattern, FPS: *fpsFlag, Renderer: *styleFlag})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes the standard logger to a file when debug is set and
// discards it otherwise, since the terminal belongs to the UI.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(logFileName, "dopawave")
	if err != nil {
		log.SetOutput(io.Discard)
		fmt.Fprintf(os.Stderr, "Warning: cannot open %s: %v\n", logFileName, err)
		return nil
	}
	return f
}
