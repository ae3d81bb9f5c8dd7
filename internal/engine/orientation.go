package engine

import "github.com/piwi3910/PalletLoad/internal/model"

// Orientations returns the six axis-aligned assignments of a box's dimensions
// to the (length, width, height) roles. The order is fixed; the first entry
// is the box as specified. Boxes with equal edges yield repeated entries.
func Orientations(b model.BoxSpec) [6]model.Orientation {
	l, w, h := b.Length, b.Width, b.Height
	return [6]model.Orientation{
		{Length: l, Width: w, Height: h},
		{Length: l, Width: h, Height: w},
		{Length: w, Width: l, Height: h},
		{Length: w, Width: h, Height: l},
		{Length: h, Width: l, Height: w},
		{Length: h, Width: w, Height: l},
	}
}
