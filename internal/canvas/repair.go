package canvas

import (
	"strconv"
	"strings"
)

// stretchedWidthThreshold flags a raw width far beyond any real canvas as a
// stretched divider that lost its name in serialization.
const stretchedWidthThreshold = 10000

// RepairSnapshot re-tags divider rectangles that lost their semantic name
// across a serialization round-trip, identified geometrically: an unnamed
// near-white rect stretched past any plausible canvas width. The input is
// not mutated.
func RepairSnapshot(snapshot Snapshot) Snapshot {
	out := snapshot.Clone()
	for i := range out {
		obj := &out[i]
		if obj.Name != "" || obj.Type != "rect" {
			continue
		}
		if obj.Width > stretchedWidthThreshold && isNearWhite(obj.Fill) {
			obj.Name = SeparatorName
		}
	}
	return out
}

// isNearWhite reports whether a fill color sits within a few steps of pure
// white on every channel.
func isNearWhite(fill string) bool {
	fill = strings.ToLower(strings.TrimSpace(fill))
	if fill == "white" {
		return true
	}
	hex := strings.TrimPrefix(fill, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return false
	}
	r := (v >> 16) & 0xff
	g := (v >> 8) & 0xff
	b := v & 0xff
	return r >= 0xf0 && g >= 0xf0 && b >= 0xf0
}
