package layout

// Placement is where a thumbnail is drawn. Rect is the on-page footprint
// after any rotation; the source pixels are never modified.
type Placement struct {
	Rect     Rect
	Rotate90 bool
	Scale    float64
}

// Fit scales an image of w x h pixels into cell, preserving aspect ratio and
// centering it. Images are never enlarged. See FitScaled.
func Fit(w, h int, cell Rect, uniform Orientation) Placement {
	return FitScaled(w, h, cell, uniform, 1)
}

// FitScaled is Fit with a caller-chosen maximum scale; maxScale <= 0 removes
// the limit. One pixel maps to one point at scale 1.
//
// With a portrait or landscape uniform policy, images of the other natural
// orientation are marked for a 90 degree turn and fitted with their width
// and height swapped. Square images count as portrait.
func FitScaled(w, h int, cell Rect, uniform Orientation, maxScale float64) Placement {
	if w <= 0 || h <= 0 || cell.W <= 0 || cell.H <= 0 {
		return Placement{Rect: Rect{X: cell.CenterX(), Y: cell.CenterY()}}
	}

	rotate := false
	landscape := w > h
	switch uniform {
	case OrientPortrait:
		rotate = landscape
	case OrientLandscape:
		rotate = !landscape
	}

	ew, eh := float64(w), float64(h)
	if rotate {
		ew, eh = eh, ew
	}

	scale := min(cell.W/ew, cell.H/eh)
	if maxScale > 0 && scale > maxScale {
		scale = maxScale
	}

	dw, dh := ew*scale, eh*scale
	return Placement{
		Rect: Rect{
			X: cell.X + (cell.W-dw)/2,
			Y: cell.Y + (cell.H-dh)/2,
			W: dw,
			H: dh,
		},
		Rotate90: rotate,
		Scale:    scale,
	}
}
