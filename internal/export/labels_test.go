package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/PalletLoad/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labels.pdf")

	if err := ExportLabels(path, buildTestPlan()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_EmptyPlan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	plan := model.NewLoadPlan(model.Pallet{Length: 120, Width: 80, MaxHeight: 200})
	if err := ExportLabels(path, plan); err == nil {
		t.Fatal("expected error for empty plan, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	labels := CollectLabelInfos(buildTestPlan())

	if len(labels) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(labels))
	}

	if labels[0].Name != "Washer" || labels[0].Pallet != 1 || labels[0].Step != 1 {
		t.Errorf("unexpected first label: %+v", labels[0])
	}
	if labels[0].Rotated {
		t.Error("expected first label not rotated")
	}

	// Labels carry the box as specified, not as rotated.
	lamp := labels[2]
	if !lamp.Rotated {
		t.Error("expected third label to be rotated")
	}
	if lamp.Length != 40 || lamp.Width != 30 || lamp.Height != 20 {
		t.Errorf("expected original dimensions 40x30x20, got %.0fx%.0fx%.0f", lamp.Length, lamp.Width, lamp.Height)
	}
	if lamp.Y != 50 {
		t.Errorf("expected y=50, got %.1f", lamp.Y)
	}

	if labels[3].Pallet != 2 || labels[3].Step != 1 {
		t.Errorf("expected second pallet step 1, got pallet %d step %d", labels[3].Pallet, labels[3].Step)
	}
}

func TestLabelInfo_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(LabelInfo{BoxID: "b1", Pallet: 2, Step: 3, Z: 7})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, key := range []string{"id", "pallet", "step", "z_cm", "weight_kg"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected key %q in %s", key, data)
		}
	}
}

func TestExportLabels_ManyBoxes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_labels.pdf")

	// 35 boxes forces a second label page.
	plan := model.NewLoadPlan(model.Pallet{Length: 400, Width: 80, MaxHeight: 200})
	var load []model.PlacedBox
	for i := 0; i < 35; i++ {
		load = append(load, placed(fmt.Sprintf("b%02d", i), fmt.Sprintf("Box %d", i), float64(i*10), 0, 0, 10, 10, 10, 1))
	}
	plan.Loads = append(plan.Loads, load)

	if err := ExportLabels(path, plan); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}
