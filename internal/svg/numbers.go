package svg

import (
	"strconv"
	"strings"
)

// parseNumber parses a numeric attribute or style value, ignoring a
// trailing unit such as px or pt. def is returned when nothing parses.
func parseNumber(raw string, def float64) float64 {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) {
		c := raw[end]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			end++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(raw[:end], 64)
	if err != nil {
		return def
	}
	return v
}

// styleNumber reads the first of the given keys present in the style map as
// a number, falling back to def when none parses.
func styleNumber(styles map[string]string, def float64, keys ...string) float64 {
	for _, k := range keys {
		if raw, ok := styles[k]; ok {
			return parseNumber(raw, def)
		}
	}
	return def
}
