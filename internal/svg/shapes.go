package svg

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// shapeElements are the vector primitives recorded as background objects.
var shapeElements = []string{"path", "rect", "circle", "ellipse", "polygon", "polyline"}

// extractShapes collects non-text vector primitives in document order. It
// works on a clone with <defs> removed: defs hold unrendered definitions
// such as gradients, not visible shapes. The text pass deliberately does
// not share this stripping.
func extractShapes(doc *goquery.Document, styles StyleMap, opts Options) []BackgroundObject {
	body := doc.Selection.Clone()
	body.Find("defs").Remove()

	var out []BackgroundObject
	body.Find(strings.Join(shapeElements, ", ")).Each(func(_ int, sel *goquery.Selection) {
		obj := BackgroundObject{
			Type:   goquery.NodeName(sel),
			Styles: resolveStyle(sel, styles),
		}
		if opts.RetainAttributes {
			obj.Attributes = elementAttributes(sel)
		}
		out = append(out, obj)
	})
	return out
}

// elementAttributes copies an element's attributes verbatim.
func elementAttributes(sel *goquery.Selection) map[string]string {
	if len(sel.Nodes) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(sel.Nodes[0].Attr))
	for _, a := range sel.Nodes[0].Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}
