package model

import (
	"math"
	"testing"
)

func TestEstimatePalletsBasic(t *testing.T) {
	boxes := []BoxSpec{
		{Length: 60, Width: 40, Height: 50, Weight: 10},
		{Length: 60, Width: 40, Height: 50, Weight: 12},
	}
	pallet := Pallet{Length: 120, Width: 80, MaxHeight: 200}
	est := EstimatePallets(boxes, pallet, 75)

	if est.BoxCount != 2 {
		t.Errorf("expected 2 boxes, got %d", est.BoxCount)
	}
	if est.TotalBoxVolume != 240000 {
		t.Errorf("expected total volume 240000, got %f", est.TotalBoxVolume)
	}
	if est.TotalWeight != 22 {
		t.Errorf("expected total weight 22, got %f", est.TotalWeight)
	}
	if math.Abs(est.PalletsNeededExact-0.125) > 1e-9 {
		t.Errorf("expected 0.125 pallets, got %f", est.PalletsNeededExact)
	}
	if est.PalletsNeededMin != 1 || est.PalletsWithSlack != 1 {
		t.Errorf("expected 1 pallet, got min=%d slack=%d", est.PalletsNeededMin, est.PalletsWithSlack)
	}
}

func TestEstimatePalletsFillFactorAddsPallets(t *testing.T) {
	// Exactly one pallet of volume; at 50% fill two are recommended.
	boxes := []BoxSpec{{Length: 120, Width: 80, Height: 200, Weight: 1}}
	pallet := Pallet{Length: 120, Width: 80, MaxHeight: 200}
	est := EstimatePallets(boxes, pallet, 50)

	if est.PalletsNeededMin != 1 {
		t.Errorf("expected min 1, got %d", est.PalletsNeededMin)
	}
	if est.PalletsWithSlack != 2 {
		t.Errorf("expected 2 with slack, got %d", est.PalletsWithSlack)
	}
}

func TestEstimatePalletsOutOfRangeFillDefaultsToFull(t *testing.T) {
	est := EstimatePallets(nil, Pallet{Length: 1, Width: 1, MaxHeight: 1}, 250)
	if est.FillPercent != 100 {
		t.Errorf("expected fill 100, got %f", est.FillPercent)
	}
	if est.PalletsNeededMin != 0 {
		t.Errorf("expected 0 pallets for no boxes, got %d", est.PalletsNeededMin)
	}
}

func TestEstimatePalletsZeroPalletVolume(t *testing.T) {
	boxes := []BoxSpec{{Length: 10, Width: 10, Height: 10, Weight: 1}}
	est := EstimatePallets(boxes, Pallet{}, 80)
	if est.PalletsNeededMin != 0 {
		t.Errorf("expected 0 pallets for zero pallet volume, got %d", est.PalletsNeededMin)
	}
	if est.TotalBoxVolume != 1000 {
		t.Errorf("expected box volume even with zero pallet, got %f", est.TotalBoxVolume)
	}
}
