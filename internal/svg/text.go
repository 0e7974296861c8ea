package svg

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// baselineRatio approximates the distance from the text baseline to the
	// visual top edge as a fraction of the font size. Empirical constant
	// carried over from the storefront editor; see DESIGN.md.
	baselineRatio = 0.82
	// charWidthRatio estimates a line's width per character as a fraction
	// of the font size. Crude and font-dependent; misestimates non-Latin
	// scripts.
	charWidthRatio = 0.6
	// defaultFontSize is used when no font-size resolves to a number.
	defaultFontSize = 40.0
	// defaultFill is the fallback text color.
	defaultFill = "#000000"
)

// extractText collects every <text> element into a merged TextComponent.
// It scans the full document, defs included, so text tucked into otherwise
// unrendered structure is not lost. Entries whose assembled text is empty
// are discarded.
func extractText(doc *goquery.Document, styles StyleMap, opts Options) []TextComponent {
	var out []TextComponent
	doc.Find("text").Each(func(_ int, sel *goquery.Selection) {
		resolved := resolveStyle(sel, styles)

		var lines []string
		var firstTspan *goquery.Selection
		sel.Find("tspan").Each(func(_ int, ts *goquery.Selection) {
			line := strings.TrimSpace(ts.Text())
			if line == "" {
				return
			}
			if firstTspan == nil {
				firstTspan = ts
			}
			lines = append(lines, line)
		})

		var text string
		if len(lines) > 0 {
			// Only the first tspan contributes style; the rest contribute
			// text. Multi-styled multi-line text is not supported.
			for k, v := range resolveStyle(firstTspan, styles) {
				resolved[k] = v
			}
			if opts.MergeTspans {
				text = strings.Join(lines, "\n")
			} else {
				text = lines[0]
			}
		} else {
			text = strings.TrimSpace(sel.Text())
		}
		if text == "" {
			return
		}

		fontSize := parseNumber(resolved["font-size"], defaultFontSize)
		fill := resolved["fill"]
		if fill == "" {
			fill = defaultFill
		}

		out = append(out, TextComponent{
			Text:     text,
			Left:     parseNumber(resolved["x"], 0),
			Top:      parseNumber(resolved["y"], 0) - fontSize*baselineRatio,
			FontSize: fontSize,
			Fill:     fill,
		})
	})
	return out
}
