package svg

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// defaultViewBox is the viewport used when the document has no usable
// viewBox attribute and no content to derive one from.
var defaultViewBox = [4]float64{0, 0, 1000, 1000}

// pathStartRe captures the first absolute moveto of a path's d attribute.
var pathStartRe = regexp.MustCompile(`(?i)M\s*(-?[0-9.]+)[\s,]+(-?[0-9.]+)`)

const (
	// viewportPaddingRatio pads the recomputed content box on each axis.
	viewportPaddingRatio = 0.05
	// pathFootprint is the assumed extent of a path element. Paths in this
	// corpus are small decorative marks and are not measured.
	pathFootprint = 10.0
)

// parseViewBox reads the root viewBox attribute. Absent or malformed values
// fall back to the 1000x1000 default.
func parseViewBox(doc *goquery.Document) [4]float64 {
	root := doc.Find("svg").First()
	raw, ok := root.Attr("viewBox")
	if !ok {
		// The HTML parser only preserves the mixed-case spelling inside
		// foreign content; accept the lowercased form too.
		raw, ok = root.Attr("viewbox")
	}
	if !ok {
		return defaultViewBox
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	if len(fields) != 4 {
		return defaultViewBox
	}
	var box [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return defaultViewBox
		}
		box[i] = v
	}
	return box
}

// contentViewBox recomputes the viewport as the minimal box enclosing all
// extracted content plus padding, so the stored viewport tracks what is
// actually visible rather than the author-declared viewBox. A degenerate
// box keeps the fallback.
func contentViewBox(texts []TextComponent, shapes []BackgroundObject, fallback [4]float64) [4]float64 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, t := range texts {
		firstLine := t.Text
		if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
			firstLine = firstLine[:i]
		}
		lineWidth := float64(len(firstLine)) * t.FontSize * charWidthRatio
		minX = math.Min(minX, t.Left)
		minY = math.Min(minY, t.Top)
		maxX = math.Max(maxX, t.Left+lineWidth)
		maxY = math.Max(maxY, t.Top+t.FontSize)
	}

	for _, obj := range shapes {
		x, y, w, h := shapeExtent(obj)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x+w)
		maxY = math.Max(maxY, y+h)
	}

	if math.IsInf(minX, 1) || maxX <= minX {
		return fallback
	}

	padW := (maxX-minX)*viewportPaddingRatio + 1
	padH := (maxY-minY)*viewportPaddingRatio + 1
	return [4]float64{
		minX - padW,
		minY - padH,
		(maxX - minX) + 2*padW,
		(maxY - minY) + 2*padH,
	}
}

// shapeExtent derives an approximate footprint from whichever geometry
// properties the shape carries. Paths are anchored at their first moveto
// with a fixed footprint.
func shapeExtent(obj BackgroundObject) (x, y, w, h float64) {
	if obj.Type == "path" {
		if m := pathStartRe.FindStringSubmatch(obj.Styles["d"]); m != nil {
			x = parseNumber(m[1], 0)
			y = parseNumber(m[2], 0)
		}
		return x, y, pathFootprint, pathFootprint
	}
	x = styleNumber(obj.Styles, 0, "x", "cx")
	y = styleNumber(obj.Styles, 0, "y", "cy")
	w = styleNumber(obj.Styles, 0, "width", "r")
	h = styleNumber(obj.Styles, 0, "height", "r")
	return x, y, w, h
}
