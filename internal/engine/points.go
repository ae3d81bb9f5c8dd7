package engine

import "github.com/piwi3910/PalletLoad/internal/model"

// point is an anchor for a candidate box's minimum corner. It is comparable
// and used directly as a set key.
type point struct {
	x, y, z float64
}

// pointSet is an insertion-ordered set of anchor points.
type pointSet struct {
	order []point
	seen  map[point]struct{}
}

func newPointSet(capacity int) *pointSet {
	return &pointSet{
		order: make([]point, 0, capacity),
		seen:  make(map[point]struct{}, capacity),
	}
}

func (s *pointSet) add(p point) {
	if _, ok := s.seen[p]; ok {
		return
	}
	s.seen[p] = struct{}{}
	s.order = append(s.order, p)
}

// candidatePoints returns the origin followed by the extreme points of every
// placed box, deduplicated by exact coordinates. For each box at (x,y,z) with
// rotated size (L,H,W) it emits the points advanced along x, z, y singly and
// along x&z, x&y, y&z.
func candidatePoints(placed []model.PlacedBox) []point {
	set := newPointSet(1 + 6*len(placed))
	set.add(point{})

	for _, p := range placed {
		xl, yh, zw := p.MaxX(), p.Top(), p.MaxZ()
		set.add(point{xl, p.Y, p.Z})
		set.add(point{p.X, p.Y, zw})
		set.add(point{p.X, yh, p.Z})
		set.add(point{xl, p.Y, zw})
		set.add(point{xl, yh, p.Z})
		set.add(point{p.X, yh, zw})
	}
	return set.order
}

// CandidatePoints exposes the anchor points for a placed set as model points.
func CandidatePoints(placed []model.PlacedBox) []model.Point3D {
	pts := candidatePoints(placed)
	out := make([]model.Point3D, len(pts))
	for i, p := range pts {
		out[i] = model.Point3D{X: p.x, Y: p.y, Z: p.z}
	}
	return out
}
