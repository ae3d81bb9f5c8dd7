package model

// Point3D is a position in pallet-local coordinates (cm).
type Point3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// LoadSummary holds statistics about a placement result on one pallet.
type LoadSummary struct {
	PlacedCount     int     `json:"placed_count"`
	UnplacedCount   int     `json:"unplaced_count"`
	PlacedVolume    float64 `json:"placed_volume"`     // cm³
	PalletVolume    float64 `json:"pallet_volume"`     // cm³
	Utilization     float64 `json:"utilization"`       // percent of pallet volume
	PlacedWeight    float64 `json:"placed_weight"`     // kg
	UnplacedWeight  float64 `json:"unplaced_weight"`   // kg
	LoadHeight      float64 `json:"load_height"`       // cm, highest top surface
	CenterOfGravity Point3D `json:"center_of_gravity"` // weight-weighted centroid, zero when empty
}

// Summarize computes load statistics for a result on the given pallet.
func Summarize(result PlacementResult, pallet Pallet) LoadSummary {
	s := LoadSummary{
		PlacedCount:   len(result.Placed),
		UnplacedCount: len(result.Unplaced),
		PalletVolume:  pallet.Volume(),
	}

	var mx, my, mz float64
	for _, p := range result.Placed {
		o := p.Orientation
		s.PlacedVolume += o.Length * o.Width * o.Height
		s.PlacedWeight += p.Box.Weight
		if top := p.Top(); top > s.LoadHeight {
			s.LoadHeight = top
		}
		mx += p.Box.Weight * (p.X + o.Length/2)
		my += p.Box.Weight * (p.Y + o.Height/2)
		mz += p.Box.Weight * (p.Z + o.Width/2)
	}
	for _, b := range result.Unplaced {
		s.UnplacedWeight += b.Weight
	}

	if s.PalletVolume > 0 {
		s.Utilization = (s.PlacedVolume / s.PalletVolume) * 100.0
	}
	if s.PlacedWeight > 0 {
		s.CenterOfGravity = Point3D{
			X: mx / s.PlacedWeight,
			Y: my / s.PlacedWeight,
			Z: mz / s.PlacedWeight,
		}
	}
	return s
}
