package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/PalletLoad/internal/engine"
	"github.com/piwi3910/PalletLoad/internal/export"
	"github.com/piwi3910/PalletLoad/internal/logging"
	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/piwi3910/PalletLoad/internal/project"
)

// env is an isolated config, inventory and template location.
type env struct {
	t   *testing.T
	dir string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return &env{t: t, dir: t.TempDir()}
}

func (e *env) path(name string) string {
	return filepath.Join(e.dir, name)
}

func (e *env) options() *Options {
	return &Options{
		ConfigPath:    e.path("config.json"),
		InventoryPath: e.path("inventory.json"),
		TemplatePath:  e.path("templates.json"),
		LogLevel:      logging.LevelInfo,
	}
}

// run executes the CLI and returns stdout, stderr and the command error.
func (e *env) run(args ...string) (string, string, error) {
	e.t.Helper()
	cmd := newRootCommand(e.options(), nil)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (e *env) writeFile(name, content string) string {
	e.t.Helper()
	p := e.path(name)
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
	return p
}

const cubesCSV = "name,length,width,height,weight,quantity\nCube,50,50,50,10,2\n"

func TestOptimize_TableOutput(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)

	out, _, err := e.run("optimize", boxes)
	require.NoError(t, err)

	assert.Contains(t, out, "Pallet 120.0 x 80.0 cm")
	assert.Contains(t, out, "Pallet 1: 2 boxes")
	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "Cube")
	assert.NotContains(t, out, "Unplaced")
}

func TestOptimize_JSONOutput(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)

	out, _, err := e.run("optimize", boxes, "--format", "json")
	require.NoError(t, err)

	var doc export.PlanDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Plan.Loads, 1)
	load := doc.Plan.Loads[0]
	require.Len(t, load, 2)
	assert.Equal(t, 0.0, load[0].X)
	assert.Equal(t, 50.0, load[1].X)
	assert.Empty(t, doc.Plan.Unplaced)
	require.Len(t, doc.Summaries, 1)
	assert.Equal(t, 2, doc.Summaries[0].PlacedCount)
}

func TestOptimize_UnplacedWarns(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)

	out, stderr, err := e.run("optimize", boxes, "--max-height", "40")
	require.NoError(t, err)

	assert.Contains(t, out, "No boxes placed.")
	assert.Contains(t, out, "Unplaced (2)")
	assert.Contains(t, stderr, "not all boxes could be placed")
}

func TestOptimize_ImportWarningLogged(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", "name,length,width,height,weight,color\nCube,50,50,50,10,purple\n")

	_, stderr, err := e.run("optimize", boxes)
	require.NoError(t, err)
	assert.Contains(t, stderr, "import warning")
}

func TestOptimize_ImportErrorFails(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", "name,length,width,height,weight\nCube,50,abc,50,10\n")

	_, _, err := e.run("optimize", boxes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid width")
}

func TestOptimize_InvalidProjectInput(t *testing.T) {
	e := newEnv(t)
	proj := model.NewProject()
	bad := model.NewBox("Flat", 10, 10, -1, 1)
	proj.Boxes = []model.BoxSpec{bad}
	path := e.path("bad.json")
	require.NoError(t, project.SaveProject(path, proj))

	_, _, err := e.run("optimize", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestOptimize_SourceSelection(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)

	_, _, err := e.run("optimize")
	require.Error(t, err)

	_, _, err = e.run("optimize", boxes, "--template", "weekly")
	require.Error(t, err)

	_, _, err = e.run("optimize", "--template", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestOptimize_UnknownPreset(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)

	_, _, err := e.run("optimize", boxes, "--pallet", "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EUR 1200x800")
}

func TestOptimize_PresetSelection(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)

	out, _, err := e.run("optimize", boxes, "--pallet", "EUR Half 800x600")
	require.NoError(t, err)
	assert.Contains(t, out, "Pallet 80.0 x 60.0 cm")
}

func TestOptimize_WritesExports(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)

	files := map[string]string{
		"--pdf":    e.path("plan.pdf"),
		"--labels": e.path("labels.pdf"),
		"--dxf":    e.path("plan.dxf"),
		"--xlsx":   e.path("plan.xlsx"),
		"--json":   e.path("plan.json"),
	}
	args := []string{"optimize", boxes, "--paper", "Letter"}
	for flag, path := range files {
		args = append(args, flag, path)
	}

	_, _, err := e.run(args...)
	require.NoError(t, err)
	for flag, path := range files {
		info, err := os.Stat(path)
		require.NoError(t, err, flag)
		assert.Positive(t, info.Size(), flag)
	}
}

func TestOptimize_SaveAndVerify(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)
	saved := e.path("load.yaml")

	_, _, err := e.run("optimize", boxes, "--save", saved)
	require.NoError(t, err)

	proj, err := project.LoadProject(saved)
	require.NoError(t, err)
	require.NotNil(t, proj.Result)
	assert.Len(t, proj.Result.Placed, 2)
	assert.Equal(t, "boxes", proj.Name)

	cfg, err := project.LoadAppConfig(e.path("config.json"))
	require.NoError(t, err)
	require.NotEmpty(t, cfg.RecentProjects)
	assert.Equal(t, saved, cfg.RecentProjects[0])

	out, _, err := e.run("verify", saved)
	require.NoError(t, err)
	assert.Contains(t, out, "Load OK: 2 boxes verified")

	// A saved project re-optimizes with its own pallet.
	out, _, err = e.run("optimize", saved)
	require.NoError(t, err)
	assert.Contains(t, out, "Pallet 1: 2 boxes")
}

func TestVerify_ReportsViolations(t *testing.T) {
	e := newEnv(t)
	a := model.NewBox("A", 50, 50, 50, 10)
	b := model.NewBox("B", 50, 50, 50, 10)
	proj := model.NewProject()
	proj.Boxes = []model.BoxSpec{a, b}
	proj.Result = &model.PlacementResult{
		Placed: []model.PlacedBox{
			{Box: a, Orientation: model.Orientation{Length: 50, Width: 50, Height: 50}},
			{Box: b, Orientation: model.Orientation{Length: 50, Width: 50, Height: 50}, X: 25},
		},
		Unplaced: []model.BoxSpec{},
	}
	path := e.path("broken.json")
	require.NoError(t, project.SaveProject(path, proj))

	out, _, err := e.run("verify", path)
	require.Error(t, err)
	assert.Contains(t, out, "overlap")

	out, _, err = e.run("verify", path, "-o", "json")
	require.Error(t, err)
	var violations []engine.Violation
	require.NoError(t, json.Unmarshal([]byte(out), &violations))
	require.NotEmpty(t, violations)
	assert.Equal(t, engine.ViolationOverlap, violations[0].Kind)
}

func TestVerify_RequiresResult(t *testing.T) {
	e := newEnv(t)
	path := e.path("empty.json")
	require.NoError(t, project.SaveProject(path, model.NewProject()))

	_, _, err := e.run("verify", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no placement result")
}

func TestPlan_SpreadsOverPallets(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", "name,length,width,height,weight,quantity\nCube,50,50,50,10,3\n")
	small := []string{"--length", "60", "--width", "60", "--max-height", "60", "-o", "json"}

	out, _, err := e.run(append([]string{"plan", boxes}, small...)...)
	require.NoError(t, err)
	var doc export.PlanDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Plan.Loads, 3)
	assert.Empty(t, doc.Plan.Unplaced)

	out, stderr, err := e.run(append([]string{"plan", boxes, "--max-pallets", "2"}, small...)...)
	require.NoError(t, err)
	doc = export.PlanDocument{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc.Plan.Loads, 2)
	assert.Len(t, doc.Plan.Unplaced, 1)
	assert.Contains(t, stderr, "not all boxes could be placed")
}

func TestCompare_MarksBest(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", "name,length,width,height,weight\nCrate,110,90,190,40\n")

	out, _, err := e.run("compare", boxes, "-o", "json")
	require.NoError(t, err)

	var rows []comparisonRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, len(model.DefaultInventory().Pallets))

	var best []string
	for _, r := range rows {
		if r.Best {
			best = append(best, r.Name)
		}
	}
	assert.Equal(t, []string{"Industrial 1200x1000"}, best)

	out, _, err = e.run("compare", boxes)
	require.NoError(t, err)
	assert.Contains(t, out, "EUR 1200x800")
	assert.Contains(t, out, "*")
}

func TestEstimate(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)

	out, _, err := e.run("estimate", boxes, "--fill", "50", "-o", "json")
	require.NoError(t, err)

	var est model.PalletEstimate
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	assert.Equal(t, 2, est.BoxCount)
	assert.InDelta(t, 250000.0, est.TotalBoxVolume, 1e-6)
	assert.Equal(t, 1, est.PalletsNeededMin)
	assert.Equal(t, 50.0, est.FillPercent)

	out, _, err = e.run("estimate", boxes)
	require.NoError(t, err)
	assert.Contains(t, out, "Pallets (at 75% fill)")
}

func TestPresets_AddListRemove(t *testing.T) {
	e := newEnv(t)

	_, _, err := e.run("presets", "add", "Custom", "--length", "100", "--width", "100", "--max-height", "150")
	require.NoError(t, err)

	_, _, err = e.run("presets", "add", "Custom", "--length", "100", "--width", "100", "--max-height", "150")
	require.Error(t, err)

	_, _, err = e.run("presets", "add", "Flat", "--length", "100", "--width", "100", "--max-height", "0")
	require.ErrorIs(t, err, model.ErrInvalidInput)

	out, _, err := e.run("presets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Custom")
	assert.Contains(t, out, "EUR 1200x800 (default)")

	_, _, err = e.run("presets", "remove", "Custom")
	require.NoError(t, err)
	_, _, err = e.run("presets", "remove", "Custom")
	require.Error(t, err)

	inv, err := project.LoadInventory(e.path("inventory.json"))
	require.NoError(t, err)
	assert.Nil(t, inv.FindPalletByName("Custom"))
}

func TestTemplates_SaveListUse(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)

	_, _, err := e.run("templates", "save", "weekly", boxes, "--pallet", "EUR Half 800x600", "--description", "Monday order")
	require.NoError(t, err)

	out, _, err := e.run("templates", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "weekly")
	assert.Contains(t, out, "Monday order")

	out, _, err = e.run("optimize", "--template", "weekly")
	require.NoError(t, err)
	assert.Contains(t, out, "Pallet 80.0 x 60.0 cm")
	assert.Contains(t, out, "Pallet 1: 2 boxes")

	_, _, err = e.run("templates", "remove", "weekly")
	require.NoError(t, err)
	store, err := project.LoadTemplates(e.path("templates.json"))
	require.NoError(t, err)
	assert.Empty(t, store.Templates)
}

func TestBackup_ExportImport(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)
	backupPath := e.path("backup.json")

	_, _, err := e.run("presets", "add", "Custom", "--length", "100", "--width", "100", "--max-height", "150")
	require.NoError(t, err)
	_, _, err = e.run("templates", "save", "weekly", boxes)
	require.NoError(t, err)
	_, _, err = e.run("backup", "export", backupPath)
	require.NoError(t, err)

	other := newEnv(t)
	_, _, err = other.run("backup", "import", backupPath)
	require.NoError(t, err)

	inv, err := project.LoadInventory(other.path("inventory.json"))
	require.NoError(t, err)
	assert.NotNil(t, inv.FindPalletByName("Custom"))
	store, err := project.LoadTemplates(other.path("templates.json"))
	require.NoError(t, err)
	assert.NotNil(t, store.FindByName("weekly"))
}

func TestRoot_FormatFromConfig(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)
	cfg := model.DefaultAppConfig()
	cfg.OutputFormat = "json"
	require.NoError(t, project.SaveAppConfig(e.path("config.json"), cfg))

	out, _, err := e.run("estimate", boxes)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)

	_, _, err = e.run("estimate", boxes, "--format", "xml")
	require.Error(t, err)
}

func TestRoot_DebugLogging(t *testing.T) {
	e := newEnv(t)
	boxes := e.writeFile("boxes.csv", cubesCSV)

	_, stderr, err := e.run("optimize", boxes, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "box placed")

	_, stderr, err = e.run("optimize", boxes, "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestLoggerFromContext_Fallback(t *testing.T) {
	assert.NotNil(t, LoggerFromContext(context.Background()))
}
