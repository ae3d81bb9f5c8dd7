package engine

import "github.com/piwi3910/PalletLoad/internal/model"

// extent is the axis-aligned volume occupied by a box: [x0,x1] × [y0,y1] × [z0,z1].
type extent struct {
	x0, x1 float64
	y0, y1 float64
	z0, z1 float64
}

func extentOf(p model.PlacedBox) extent {
	return extent{
		x0: p.X, x1: p.MaxX(),
		y0: p.Y, y1: p.Top(),
		z0: p.Z, z1: p.MaxZ(),
	}
}

// lessThan and greaterThan are the tolerant comparisons every geometric test
// is built on.
func lessThan(a, b, eps float64) bool {
	return a < b-eps
}

func greaterThan(a, b, eps float64) bool {
	return a > b+eps
}

// spans reports whether the open intervals (a0,a1) and (b0,b1) intersect by
// more than eps. Touching intervals do not span each other.
func spans(a0, a1, b0, b1, eps float64) bool {
	return lessThan(a0, b1, eps) && greaterThan(a1, b0, eps)
}

// Overlaps reports whether two placed boxes interpenetrate. Boxes sharing a
// face are not overlapping.
func Overlaps(a, b model.PlacedBox, eps float64) bool {
	return overlaps(extentOf(a), extentOf(b), eps)
}

// FootprintOverlaps reports whether the (x, z) projections of two boxes
// intersect, ignoring height.
func FootprintOverlaps(a, b model.PlacedBox, eps float64) bool {
	return footprintOverlaps(extentOf(a), extentOf(b), eps)
}

func overlaps(a, b extent, eps float64) bool {
	return spans(a.x0, a.x1, b.x0, b.x1, eps) &&
		spans(a.y0, a.y1, b.y0, b.y1, eps) &&
		spans(a.z0, a.z1, b.z0, b.z1, eps)
}

func footprintOverlaps(a, b extent, eps float64) bool {
	return spans(a.x0, a.x1, b.x0, b.x1, eps) &&
		spans(a.z0, a.z1, b.z0, b.z1, eps)
}

// collides reports whether e overlaps any of the placed extents.
func collides(e extent, placed []extent, eps float64) bool {
	for _, p := range placed {
		if overlaps(e, p, eps) {
			return true
		}
	}
	return false
}
