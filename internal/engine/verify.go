package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/PalletLoad/internal/model"
)

// ViolationKind classifies a broken load invariant.
type ViolationKind string

const (
	ViolationOverlap  ViolationKind = "overlap"
	ViolationBoundary ViolationKind = "boundary"
	ViolationFloating ViolationKind = "floating"
)

// Violation describes one placed box that breaks a load invariant.
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Step    int           `json:"step"` // 1-based position in the placement sequence
	BoxID   string        `json:"box_id"`
	OtherID string        `json:"other_id,omitempty"` // the other box of an overlap
	Detail  string        `json:"detail"`
}

// CheckLoad re-validates a placement result against the pallet: no two boxes
// overlap, every box lies inside the pallet volume, and every box rests
// either on the deck or on the highest box placed before it beneath its
// footprint. It is the audit for results loaded from disk or produced
// elsewhere; results from Optimize always pass.
func CheckLoad(result model.PlacementResult, pallet model.Pallet, eps float64) []Violation {
	if eps <= 0 {
		eps = model.Epsilon
	}

	var violations []Violation
	extents := make([]extent, len(result.Placed))
	for i, p := range result.Placed {
		extents[i] = extentOf(p)
	}

	for i, p := range result.Placed {
		e := extents[i]
		step := i + 1

		if lessThan(e.x0, 0, eps) || lessThan(e.y0, 0, eps) || lessThan(e.z0, 0, eps) ||
			greaterThan(e.x1, pallet.Length, eps) ||
			greaterThan(e.y1, pallet.MaxHeight, eps) ||
			greaterThan(e.z1, pallet.Width, eps) {
			violations = append(violations, Violation{
				Kind:   ViolationBoundary,
				Step:   step,
				BoxID:  p.Box.ID,
				Detail: fmt.Sprintf("extent [%.1f,%.1f]x[%.1f,%.1f]x[%.1f,%.1f] leaves pallet %.1fx%.1fx%.1f", e.x0, e.x1, e.y0, e.y1, e.z0, e.z1, pallet.Length, pallet.MaxHeight, pallet.Width),
			})
		}

		for j := i + 1; j < len(result.Placed); j++ {
			if overlaps(e, extents[j], eps) {
				violations = append(violations, Violation{
					Kind:    ViolationOverlap,
					Step:    step,
					BoxID:   p.Box.ID,
					OtherID: result.Placed[j].Box.ID,
					Detail:  fmt.Sprintf("overlaps step %d", j+1),
				})
			}
		}

		support := settledHeight(e, extents[:i], eps)
		if math.Abs(e.y0-support) > eps {
			violations = append(violations, Violation{
				Kind:   ViolationFloating,
				Step:   step,
				BoxID:  p.Box.ID,
				Detail: fmt.Sprintf("rests at y=%.3f but support is at y=%.3f", e.y0, support),
			})
		}
	}
	return violations
}

// FormatViolations produces human-readable messages from violation data.
func FormatViolations(violations []Violation) []string {
	var msgs []string
	for _, v := range violations {
		msg := fmt.Sprintf("Step %d (%s): %s, %s", v.Step, v.BoxID, v.Kind, v.Detail)
		if v.OtherID != "" {
			msg += fmt.Sprintf(" (%s)", v.OtherID)
		}
		msgs = append(msgs, msg)
	}
	return msgs
}
