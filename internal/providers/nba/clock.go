package nba

import (
	"fmt"
	"regexp"
	"strconv"
)

var durationClock = regexp.MustCompile(`^PT(\d+)M(\d+)(?:\.\d+)?S$`)

// FormatClock converts an ISO-8601 style game clock ("PT07M29.00S") into "MM:SS".
// Fractional seconds are truncated. Values that do not match are returned unchanged.
func FormatClock(raw string) string {
	m := durationClock.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return raw
	}
	seconds, err := strconv.Atoi(m[2])
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
