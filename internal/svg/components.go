package svg

// TextComponent is one merged text entity extracted from a template.
// Top is the approximate visual top edge, not the SVG baseline.
type TextComponent struct {
	Text     string  `json:"text"`
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	FontSize float64 `json:"fontSize"`
	Fill     string  `json:"fill"`
}

// BackgroundObject is one non-text vector primitive. Styles holds the
// element's resolved presentation properties, including path data.
type BackgroundObject struct {
	Type       string            `json:"type"`
	Styles     map[string]string `json:"styles"`
	Attributes map[string]string `json:"attributes,omitempty"` // raw element attributes (resync variant)
}

// Components is the root artifact of one extraction run. The slice order of
// BackgroundObjects preserves document order (painter's order).
type Components struct {
	Text              []TextComponent    `json:"text"`
	Logo              interface{}        `json:"logo"` // reserved for logo placement, always null
	BackgroundObjects []BackgroundObject `json:"backgroundObjects"`
	OriginalViewBox   [4]float64         `json:"originalViewBox"`
}
