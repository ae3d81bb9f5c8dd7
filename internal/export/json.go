package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/piwi3910/PalletLoad/internal/model"
)

// PlanDocument is the JSON form of an exported load plan.
type PlanDocument struct {
	Plan      model.LoadPlan      `json:"plan"`
	Summaries []model.LoadSummary `json:"summaries"`
}

// NewPlanDocument pairs a plan with per-pallet statistics.
func NewPlanDocument(plan model.LoadPlan) PlanDocument {
	doc := PlanDocument{Plan: plan, Summaries: make([]model.LoadSummary, plan.PalletCount())}
	for i := range plan.Loads {
		doc.Summaries[i] = model.Summarize(model.PlacementResult{Placed: plan.Loads[i]}, plan.Pallet)
	}
	return doc
}

// ExportJSON writes the load plan and its statistics as indented JSON.
func ExportJSON(path string, plan model.LoadPlan) error {
	data, err := json.MarshalIndent(NewPlanDocument(plan), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
