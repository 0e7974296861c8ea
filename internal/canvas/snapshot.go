// Package canvas normalizes design-editor object graphs onto canonical
// pixel resolutions, so every template of a given aspect ratio renders
// identically regardless of the pixel density it was authored at.
package canvas

// Object is one persisted shape or text record from the design editor.
type Object struct {
	Name   string  `json:"name,omitempty"`
	Type   string  `json:"type,omitempty"`
	Fill   string  `json:"fill,omitempty"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	ScaleX float64 `json:"scaleX"`
	ScaleY float64 `json:"scaleY"`
}

// Snapshot is a flat object graph captured by the editor at save time.
type Snapshot []Object

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}
