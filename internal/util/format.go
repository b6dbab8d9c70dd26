package util

import (
	"fmt"
	"math"
)

// FormatClock formats an hour of day in [0,24) as hh:mm. Values outside the
// range wrap around midnight.
func FormatClock(hours float64) string {
	h := math.Mod(hours, 24)
	if h < 0 {
		h += 24
	}
	total := int(h*60) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
