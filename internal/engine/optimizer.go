package engine

import (
	"context"
	"log/slog"
	"sort"

	"github.com/piwi3910/PalletLoad/internal/model"
)

// Optimizer runs the 3D greedy pallet-loading heuristic. It holds only
// immutable configuration, so one Optimizer may serve concurrent runs.
type Optimizer struct {
	Settings model.PackSettings
	logger   *slog.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the logger used for per-box debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Optimizer) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func New(settings model.PackSettings, opts ...Option) *Optimizer {
	if settings.Epsilon <= 0 {
		settings.Epsilon = model.Epsilon
	}
	o := &Optimizer{
		Settings: settings,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Sequence returns the boxes in processing order: heaviest first, then by
// volume, largest face area and longest edge, all descending. Boxes tied on
// every key keep their input order. The input slice is not modified.
func Sequence(boxes []model.BoxSpec) []model.BoxSpec {
	sorted := make([]model.BoxSpec, len(boxes))
	copy(sorted, boxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		if va, vb := a.Volume(), b.Volume(); va != vb {
			return va > vb
		}
		if fa, fb := a.MaxFaceArea(), b.MaxFaceArea(); fa != fb {
			return fa > fb
		}
		return a.MaxDimension() > b.MaxDimension()
	})
	return sorted
}

// score ranks feasible candidates: lowest first by height, then width axis
// position, then length axis position.
func score(p model.PlacedBox) float64 {
	return p.Y*1_000_000 + p.Z*1_000 + p.X
}

// Optimize loads boxes onto the pallet. Every input box ends up in exactly
// one of result.Placed or result.Unplaced. The only error is an
// *model.InputError for malformed boxes or pallet bounds.
func (o *Optimizer) Optimize(boxes []model.BoxSpec, pallet model.Pallet) (model.PlacementResult, error) {
	return o.OptimizeContext(context.Background(), boxes, pallet)
}

// OptimizeContext is Optimize with cancellation. The context is checked
// between boxes; a cancelled run returns the context error and no result.
func (o *Optimizer) OptimizeContext(ctx context.Context, boxes []model.BoxSpec, pallet model.Pallet) (model.PlacementResult, error) {
	if err := model.ValidateInput(boxes, pallet); err != nil {
		return model.PlacementResult{}, err
	}
	return o.run(ctx, boxes, pallet)
}

// run is the selection loop over already validated input.
func (o *Optimizer) run(ctx context.Context, boxes []model.BoxSpec, pallet model.Pallet) (model.PlacementResult, error) {
	result := model.NewPlacementResult()
	state := newLoadState(pallet, o.Settings.Epsilon, len(boxes))

	for _, box := range Sequence(boxes) {
		if err := ctx.Err(); err != nil {
			return model.PlacementResult{}, err
		}

		best, ok := o.bestPlacement(state, box)
		if !ok {
			result.Unplaced = append(result.Unplaced, box)
			o.logger.Debug("box unplaced", "id", box.ID, "name", box.Name)
			continue
		}
		state.commit(best)
		o.logger.Debug("box placed",
			"id", box.ID,
			"step", len(state.placed),
			"x", best.X, "y", best.Y, "z", best.Z,
			"rotated", best.Rotated())
	}

	result.Placed = append(result.Placed, state.placed...)
	return result, nil
}

// bestPlacement evaluates every orientation × anchor pair against the
// current load and returns the lowest-scoring feasible placement. On equal
// scores the first candidate found is kept.
func (o *Optimizer) bestPlacement(state *loadState, box model.BoxSpec) (model.PlacedBox, bool) {
	points := candidatePoints(state.placed)

	var best model.PlacedBox
	bestScore := 0.0
	found := false

	for _, orient := range Orientations(box) {
		for _, pt := range points {
			candidate, ok := state.evaluate(box, orient, pt)
			if !ok {
				continue
			}
			if s := score(candidate); !found || s < bestScore {
				best, bestScore, found = candidate, s, true
			}
		}
	}
	return best, found
}

// PlanLoads spreads boxes over as many identical pallets as needed. Each
// pallet is an independent single-pallet run over the boxes left by the
// previous one. Planning stops when everything is placed, when a pallet
// would stay empty, or after maxPallets pallets (0 means no limit).
func (o *Optimizer) PlanLoads(ctx context.Context, boxes []model.BoxSpec, pallet model.Pallet, maxPallets int) (model.LoadPlan, error) {
	if err := model.ValidateInput(boxes, pallet); err != nil {
		return model.LoadPlan{}, err
	}

	plan := model.NewLoadPlan(pallet)
	remaining := boxes
	for len(remaining) > 0 && (maxPallets <= 0 || len(plan.Loads) < maxPallets) {
		result, err := o.run(ctx, remaining, pallet)
		if err != nil {
			return model.LoadPlan{}, err
		}
		if len(result.Placed) == 0 {
			break
		}
		plan.Loads = append(plan.Loads, result.Placed)
		o.logger.Debug("pallet loaded", "pallet", len(plan.Loads), "boxes", len(result.Placed))
		remaining = result.Unplaced
	}
	plan.Unplaced = append(plan.Unplaced, remaining...)
	return plan, nil
}
