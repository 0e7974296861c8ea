package svg

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// classRuleRe matches one class selector rule inside a <style> block.
var classRuleRe = regexp.MustCompile(`(?s)\.([\w-]+)\s*\{([^}]*)\}`)

// presentationAttrs is the whitelist of presentation attributes read
// directly from an element. Anything here overrides class rules and the
// inline style attribute, the reverse of CSS specificity. The editor
// depends on this order, so it is kept as-is.
var presentationAttrs = []string{
	"font-size", "font-family", "font-weight", "font-style", "text-anchor",
	"fill", "x", "y", "width", "height", "cx", "cy", "r", "rx", "ry",
	"points", "d",
}

// StyleMap maps a CSS class name to its declarations. It is built once per
// document and only read afterwards.
type StyleMap map[string]map[string]string

// buildStyleMap collects class rules from every <style> block in the
// document. A class defined more than once keeps its last definition.
func buildStyleMap(doc *goquery.Document) StyleMap {
	styles := make(StyleMap)
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		for _, m := range classRuleRe.FindAllStringSubmatch(s.Text(), -1) {
			styles[m[1]] = parseDeclarations(m[2])
		}
	})
	return styles
}

// parseDeclarations splits a CSS declaration list into a property map.
// Property names are lowercased; values keep their case but lose any
// surrounding quotes.
func parseDeclarations(block string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(block, ";") {
		idx := strings.Index(decl, ":")
		if idx < 0 {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(decl[:idx]))
		if name == "" {
			continue
		}
		props[name] = strings.Trim(strings.TrimSpace(decl[idx+1:]), `"'`)
	}
	return props
}

// resolveStyle merges the style sources of one element, lowest precedence
// first: inline style attribute, class rules in listed order, then
// presentation attributes on the element itself. Sibling elements are never
// consulted.
func resolveStyle(sel *goquery.Selection, styles StyleMap) map[string]string {
	resolved := make(map[string]string)

	if inline, ok := sel.Attr("style"); ok {
		for k, v := range parseDeclarations(inline) {
			resolved[k] = v
		}
	}

	if classes, ok := sel.Attr("class"); ok {
		for _, name := range strings.Fields(classes) {
			for k, v := range styles[name] {
				resolved[k] = v
			}
		}
	}

	for _, name := range presentationAttrs {
		if v, ok := sel.Attr(name); ok {
			resolved[name] = v
		}
	}

	return resolved
}
