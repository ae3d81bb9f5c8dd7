package model

import (
	"math"
	"testing"
)

func TestSummarizeEmptyResult(t *testing.T) {
	s := Summarize(NewPlacementResult(), Pallet{Length: 120, Width: 80, MaxHeight: 200})
	if s.PlacedCount != 0 || s.UnplacedCount != 0 {
		t.Errorf("expected zero counts, got %+v", s)
	}
	if s.Utilization != 0 {
		t.Errorf("expected zero utilization, got %f", s.Utilization)
	}
	if s.CenterOfGravity != (Point3D{}) {
		t.Errorf("expected zero centre of gravity, got %+v", s.CenterOfGravity)
	}
}

func TestSummarizeTwoBoxes(t *testing.T) {
	result := PlacementResult{
		Placed: []PlacedBox{
			{
				Box:         BoxSpec{ID: "a", Length: 60, Width: 40, Height: 50, Weight: 10},
				Orientation: Orientation{Length: 60, Width: 40, Height: 50},
			},
			{
				Box:         BoxSpec{ID: "b", Length: 60, Width: 40, Height: 50, Weight: 30},
				Orientation: Orientation{Length: 60, Width: 40, Height: 50},
				X:           60,
			},
		},
		Unplaced: []BoxSpec{{ID: "c", Length: 500, Width: 1, Height: 1, Weight: 5}},
	}
	pallet := Pallet{Length: 120, Width: 80, MaxHeight: 200}
	s := Summarize(result, pallet)

	if s.PlacedCount != 2 || s.UnplacedCount != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.PlacedVolume != 240000 {
		t.Errorf("expected placed volume 240000, got %f", s.PlacedVolume)
	}
	if math.Abs(s.Utilization-12.5) > 1e-9 {
		t.Errorf("expected 12.5%% utilization, got %f", s.Utilization)
	}
	if s.PlacedWeight != 40 || s.UnplacedWeight != 5 {
		t.Errorf("unexpected weights: placed=%f unplaced=%f", s.PlacedWeight, s.UnplacedWeight)
	}
	if s.LoadHeight != 50 {
		t.Errorf("expected load height 50, got %f", s.LoadHeight)
	}
	// (10*30 + 30*90) / 40 = 75
	if math.Abs(s.CenterOfGravity.X-75) > 1e-9 {
		t.Errorf("expected CoG x 75, got %f", s.CenterOfGravity.X)
	}
	if math.Abs(s.CenterOfGravity.Y-25) > 1e-9 || math.Abs(s.CenterOfGravity.Z-20) > 1e-9 {
		t.Errorf("unexpected CoG: %+v", s.CenterOfGravity)
	}
}
