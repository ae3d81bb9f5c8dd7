package model

import "math"

// PalletEstimate holds the results of a pallet count calculation.
type PalletEstimate struct {
	BoxCount           int     `json:"box_count"`
	TotalBoxVolume     float64 `json:"total_box_volume"`     // cm³
	TotalWeight        float64 `json:"total_weight"`         // kg
	PalletVolume       float64 `json:"pallet_volume"`        // cm³ of loadable space on one pallet
	PalletsNeededExact float64 `json:"pallets_needed_exact"` // exact fractional number of pallets
	PalletsNeededMin   int     `json:"pallets_needed_min"`   // ceiling of exact
	PalletsWithSlack   int     `json:"pallets_with_slack"`   // recommended count at the given fill rate
	FillPercent        float64 `json:"fill_percent"`         // assumed achievable volume fill
}

// EstimatePallets computes how many pallets a box list needs by volume.
// fillPercent is the volume fill rate expected from the heuristic (e.g. 75);
// values outside (0, 100] are treated as 100.
func EstimatePallets(boxes []BoxSpec, pallet Pallet, fillPercent float64) PalletEstimate {
	var totalVolume, totalWeight float64
	for _, b := range boxes {
		totalVolume += b.Volume()
		totalWeight += b.Weight
	}

	if fillPercent <= 0 || fillPercent > 100 {
		fillPercent = 100
	}

	palletVolume := pallet.Volume()
	if palletVolume <= 0 {
		return PalletEstimate{
			BoxCount:       len(boxes),
			TotalBoxVolume: totalVolume,
			TotalWeight:    totalWeight,
			FillPercent:    fillPercent,
		}
	}

	exact := totalVolume / palletVolume
	minPallets := int(math.Ceil(exact))

	withSlack := int(math.Ceil(totalVolume / (palletVolume * fillPercent / 100.0)))
	if withSlack < minPallets {
		withSlack = minPallets
	}

	return PalletEstimate{
		BoxCount:           len(boxes),
		TotalBoxVolume:     totalVolume,
		TotalWeight:        totalWeight,
		PalletVolume:       palletVolume,
		PalletsNeededExact: exact,
		PalletsNeededMin:   minPallets,
		PalletsWithSlack:   withSlack,
		FillPercent:        fillPercent,
	}
}
