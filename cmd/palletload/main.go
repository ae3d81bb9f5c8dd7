// PalletLoad: greedy 3D pallet loading with PDF, label, DXF and Excel output
//
// Loads boxes from a CSV/Excel list, a saved project or a template onto one
// or more pallets and prints the step-by-step placement guide.
//
// Build:
//   go build -o palletload ./cmd/palletload
//
// Examples:
//   palletload optimize boxes.csv --pallet "EUR 1200x800" --pdf plan.pdf
//   palletload plan boxes.xlsx --max-pallets 3 -o json
//   palletload compare boxes.csv

package main

import (
	"os"

	"github.com/piwi3910/PalletLoad/internal/cli"
	"github.com/piwi3910/PalletLoad/internal/logging"
)

// main is the entry point for the palletload CLI binary.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
