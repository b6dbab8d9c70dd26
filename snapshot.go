package main

import (
	"fmt"
	"log"
	"os"

	"github.com/olivier-w/dopawave/internal/wave"
)

// writeSnapshot switches a baseline chart to pattern, advances frames more
// frames and writes the resulting curve as SVG.
func writeSnapshot(path string, pattern wave.Pattern, frames int, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("snapshot size must be positive, got %vx%v", width, height)
	}
	d := wave.NewDriver(wave.Normal)
	d.Resize(width, height)

	pts := d.Frame(pattern)
	for range max(0, frames) {
		pts = d.Frame(pattern)
	}
	last := d.Last()
	log.Printf("snapshot %s offset=%v blend=%v phase=%s", pattern, last.Offset, last.Blend, last.Phase())

	if err := os.WriteFile(path, []byte(wave.SVG(pts, width, height)), 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
