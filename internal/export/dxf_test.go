package export

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

func TestExportDXF_Wireframe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "load.dxf")
	plan := buildTestPlan()

	if err := ExportDXF(path, plan); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		t.Fatalf("failed to read back DXF: %v", err)
	}

	lines := 0
	var maxZ float64
	for _, ent := range drawing.Entities() {
		if l, ok := ent.(*entity.Line); ok {
			lines++
			if l.Start[2] > maxZ {
				maxZ = l.Start[2]
			}
			if l.End[2] > maxZ {
				maxZ = l.End[2]
			}
		}
	}

	// One load-space frame per pallet plus every box, 12 edges each.
	want := 12 * (plan.PalletCount() + plan.PlacedCount())
	if lines != want {
		t.Errorf("expected %d lines, got %d", want, lines)
	}
	if maxZ != plan.Pallet.MaxHeight {
		t.Errorf("expected CAD Z to reach the pallet max height %.1f, got %.1f", plan.Pallet.MaxHeight, maxZ)
	}
}

func TestExportDXF_EmptyPlan(t *testing.T) {
	dir := t.TempDir()
	plan := model.NewLoadPlan(model.Pallet{Length: 120, Width: 80, MaxHeight: 200})

	if err := ExportDXF(filepath.Join(dir, "empty.dxf"), plan); err == nil {
		t.Fatal("expected error for empty plan, got nil")
	}
}
