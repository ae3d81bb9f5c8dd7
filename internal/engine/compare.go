package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/PalletLoad/internal/model"
)

// ComparisonScenario defines a named pallet to try a box list on.
type ComparisonScenario struct {
	Name   string
	Pallet model.Pallet
}

// ComparisonResult holds the optimization result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Result   model.PlacementResult
	Summary  model.LoadSummary
}

// ComparePallets runs the same boxes on every scenario's pallet and returns
// the results in scenario order. Runs share nothing and execute in parallel;
// the first failing run cancels the others.
func (o *Optimizer) ComparePallets(ctx context.Context, scenarios []ComparisonScenario, boxes []model.BoxSpec) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	for i, scenario := range scenarios {
		g.Go(func() error {
			result, err := o.OptimizeContext(ctx, boxes, scenario.Pallet)
			if err != nil {
				return err
			}
			results[i] = ComparisonResult{
				Scenario: scenario,
				Result:   result,
				Summary:  model.Summarize(result, scenario.Pallet),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ScenariosFromInventory builds one scenario per pallet preset.
func ScenariosFromInventory(inv model.Inventory) []ComparisonScenario {
	scenarios := make([]ComparisonScenario, 0, len(inv.Pallets))
	for _, p := range inv.Pallets {
		scenarios = append(scenarios, ComparisonScenario{
			Name:   p.Name,
			Pallet: p.ToPallet(),
		})
	}
	return scenarios
}

// BestScenario returns the index of the result that places the most boxes,
// breaking ties by higher utilization and then by lower load height. It
// returns -1 for an empty slice.
func BestScenario(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if best < 0 {
			best = i
			continue
		}
		b := results[best].Summary
		s := r.Summary
		switch {
		case s.PlacedCount > b.PlacedCount:
			best = i
		case s.PlacedCount == b.PlacedCount && s.Utilization > b.Utilization:
			best = i
		case s.PlacedCount == b.PlacedCount && s.Utilization == b.Utilization && s.LoadHeight < b.LoadHeight:
			best = i
		}
	}
	return best
}
