package canvas

import (
	"errors"
	"math"
)

// ErrZeroDimensions reports a normalization request whose source dimensions
// would produce a division by zero.
var ErrZeroDimensions = errors.New("template dimensions must be positive")

const (
	// backgroundName identifies the full-canvas background object.
	backgroundName = "background"
	// SeparatorName identifies divider rectangles whose width is pinned
	// relative to the canvas. Downstream editor logic keys off this name.
	SeparatorName = "template_svg_background_object"
	// separatorWidthRatio is a divider's on-canvas width as a fraction of
	// the target width.
	separatorWidthRatio = 0.92
	// separatorTolerance is the accepted relative deviation before a
	// divider's scale is recomputed.
	separatorTolerance = 0.01
	// physicalUnitCutoff: passed-in dimensions below this are physical
	// units (feet, metres) rather than pixels and are upscaled against the
	// reference width.
	physicalUnitCutoff = 100
)

// Normalize rescales every object in the snapshot onto the canonical
// resolution for the given physical size. The input is never mutated; a
// repaired, normalized copy is returned. Width and height must be positive.
func Normalize(snapshot Snapshot, width, height float64) (Snapshot, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrZeroDimensions
	}

	out := RepairSnapshot(snapshot)
	target := TargetResolution(width, height)

	curW, curH := currentPixelSize(out, width, height)
	if curW <= 0 || curH <= 0 {
		return nil, ErrZeroDimensions
	}

	fx := float64(target.Width) / curW
	fy := float64(target.Height) / curH

	for i := range out {
		obj := &out[i]
		obj.Left *= fx
		obj.Top *= fy
		if obj.Name == backgroundName {
			// Reset instead of compounding, so repeated normalization at
			// the same target cannot drift.
			obj.Width = float64(target.Width)
			obj.Height = float64(target.Height)
			obj.ScaleX = 1
			obj.ScaleY = 1
			continue
		}
		obj.ScaleX *= fx
		obj.ScaleY *= fy
	}

	clampSeparators(out, target)
	return out, nil
}

// currentPixelSize determines the snapshot's effective pixel size: the
// scaled size of the background object when present, otherwise the passed
// dimensions, upscaled when they look like physical units rather than
// pixels.
func currentPixelSize(s Snapshot, width, height float64) (float64, float64) {
	for i := range s {
		if s[i].Name == backgroundName {
			return s[i].Width * s[i].ScaleX, s[i].Height * s[i].ScaleY
		}
	}
	if width < physicalUnitCutoff {
		scale := referenceWidth / width
		return referenceWidth, height * scale
	}
	return width, height
}

// clampSeparators pins divider objects to their canonical fraction of the
// target width. Dividers authored at arbitrary widths would otherwise come
// out inconsistently sized across canonical resolutions.
func clampSeparators(s Snapshot, target Resolution) {
	want := float64(target.Width) * separatorWidthRatio
	for i := range s {
		obj := &s[i]
		if obj.Name != SeparatorName || obj.Width == 0 {
			continue
		}
		if math.Abs(obj.Width*obj.ScaleX-want) <= want*separatorTolerance {
			continue
		}
		obj.ScaleX = want / obj.Width
	}
}
