package model

// LoadPlan spreads a box list over several identical pallets. Loads[i] is the
// placement sequence on pallet i; Unplaced holds boxes no pallet could take.
type LoadPlan struct {
	Pallet   Pallet        `json:"pallet" yaml:"pallet"`
	Loads    [][]PlacedBox `json:"loads" yaml:"loads"`
	Unplaced []BoxSpec     `json:"unplaced" yaml:"unplaced"`
}

func NewLoadPlan(pallet Pallet) LoadPlan {
	return LoadPlan{
		Pallet:   pallet,
		Loads:    [][]PlacedBox{},
		Unplaced: []BoxSpec{},
	}
}

// PalletCount returns the number of pallets used.
func (lp LoadPlan) PalletCount() int {
	return len(lp.Loads)
}

// Result returns pallet i as a single-pallet result. Only the last pallet
// carries the plan's unplaced boxes.
func (lp LoadPlan) Result(i int) PlacementResult {
	r := NewPlacementResult()
	r.Placed = append(r.Placed, lp.Loads[i]...)
	if i == len(lp.Loads)-1 {
		r.Unplaced = append(r.Unplaced, lp.Unplaced...)
	}
	return r
}

// PlacedCount returns the number of boxes placed across all pallets.
func (lp LoadPlan) PlacedCount() int {
	n := 0
	for _, l := range lp.Loads {
		n += len(l)
	}
	return n
}

// SinglePlan wraps a single-pallet result as a plan. An empty result gives a
// plan with no pallets.
func SinglePlan(pallet Pallet, result PlacementResult) LoadPlan {
	plan := NewLoadPlan(pallet)
	if len(result.Placed) > 0 {
		plan.Loads = append(plan.Loads, result.Placed)
	}
	plan.Unplaced = append(plan.Unplaced, result.Unplaced...)
	return plan
}
