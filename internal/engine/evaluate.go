package engine

import "github.com/piwi3910/PalletLoad/internal/model"

// loadState is the placed-box collection owned by a single optimizer run.
// extents mirrors placed index for index.
type loadState struct {
	pallet  model.Pallet
	eps     float64
	placed  []model.PlacedBox
	extents []extent
}

func newLoadState(pallet model.Pallet, eps float64, capacity int) *loadState {
	return &loadState{
		pallet:  pallet,
		eps:     eps,
		placed:  make([]model.PlacedBox, 0, capacity),
		extents: make([]extent, 0, capacity),
	}
}

func (s *loadState) commit(p model.PlacedBox) {
	s.placed = append(s.placed, p)
	s.extents = append(s.extents, extentOf(p))
}

// evaluate tries box in orientation o with its minimum corner at anchor.
// It returns the settled placement and true when the candidate is feasible:
// inside the pallet, clear of every placed box at the anchor height, and
// still inside and clear after settling onto its supports.
func (s *loadState) evaluate(box model.BoxSpec, o model.Orientation, anchor point) (model.PlacedBox, bool) {
	eps := s.eps
	e := extent{
		x0: anchor.x, x1: anchor.x + o.Length,
		y0: anchor.y, y1: anchor.y + o.Height,
		z0: anchor.z, z1: anchor.z + o.Width,
	}

	if greaterThan(e.x1, s.pallet.Length, eps) ||
		greaterThan(e.z1, s.pallet.Width, eps) ||
		greaterThan(e.y1, s.pallet.MaxHeight, eps) {
		return model.PlacedBox{}, false
	}

	if collides(e, s.extents, eps) {
		return model.PlacedBox{}, false
	}

	y := settledHeight(e, s.extents, eps)
	e.y0, e.y1 = y, y+o.Height

	if greaterThan(e.y1, s.pallet.MaxHeight, eps) {
		return model.PlacedBox{}, false
	}
	if collides(e, s.extents, eps) {
		return model.PlacedBox{}, false
	}

	return model.PlacedBox{
		Box:         box,
		Orientation: o,
		X:           anchor.x,
		Y:           y,
		Z:           anchor.z,
	}, true
}

// settledHeight returns the resting y for a footprint against the given
// extents, or 0 when nothing lies beneath it.
func settledHeight(e extent, below []extent, eps float64) float64 {
	y := 0.0
	for _, p := range below {
		if footprintOverlaps(e, p, eps) && p.y1 > y {
			y = p.y1
		}
	}
	return y
}
