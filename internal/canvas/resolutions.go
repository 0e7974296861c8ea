package canvas

import "math"

// Resolution is a canonical pixel size.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// referenceWidth is the fixed pixel width used when an aspect ratio has no
// canonical entry.
const referenceWidth = 1800

// canonicalResolutions maps an aspect ratio, rounded to two decimals, to
// the pixel size every template of that ratio normalizes to. Never mutated
// at runtime.
var canonicalResolutions = map[float64]Resolution{
	3.0:  {Width: 1800, Height: 600},
	2.0:  {Width: 1800, Height: 900},
	1.5:  {Width: 1800, Height: 1200},
	1.33: {Width: 1600, Height: 1200},
	1.0:  {Width: 1200, Height: 1200},
	0.75: {Width: 1200, Height: 1600},
	0.67: {Width: 1200, Height: 1800},
	0.5:  {Width: 900, Height: 1800},
}

// TargetResolution resolves the canonical pixel size for a physical
// width/height pair. Ratios without a canonical entry normalize to the
// reference width with a height derived from the exact ratio.
func TargetResolution(width, height float64) Resolution {
	ratio := width / height
	if res, ok := canonicalResolutions[roundRatio(ratio)]; ok {
		return res
	}
	return Resolution{
		Width:  referenceWidth,
		Height: int(math.Round(referenceWidth / ratio)),
	}
}

// roundRatio rounds an aspect ratio to the table's two-decimal key space.
func roundRatio(r float64) float64 {
	return math.Round(r*100) / 100
}
