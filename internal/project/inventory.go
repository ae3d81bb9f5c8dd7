package project

import (
	"fmt"

	"github.com/piwi3910/PalletLoad/internal/model"
)

// DefaultInventoryPath returns ~/.palletload/inventory.json.
func DefaultInventoryPath() string {
	return dataFile("inventory.json")
}

// SaveInventory writes the pallet presets.
func SaveInventory(path string, inv model.Inventory) error {
	return writeJSONFile(path, "inventory", inv)
}

// LoadInventory reads the pallet presets. When the file does not exist the
// default inventory is written there and returned.
func LoadInventory(path string) (model.Inventory, error) {
	var inv model.Inventory
	found, err := readJSONFile(path, "inventory", &inv)
	if err != nil {
		return model.Inventory{}, err
	}
	if !found {
		inv = model.DefaultInventory()
		return inv, SaveInventory(path, inv)
	}
	if inv.Pallets == nil {
		inv.Pallets = []model.PalletPreset{}
	}
	return inv, nil
}

// ExportInventory exports the inventory to a user-specified JSON file.
func ExportInventory(path string, inv model.Inventory) error {
	return SaveInventory(path, inv)
}

// ImportInventory imports an inventory from a user-specified JSON file,
// merging it with the existing inventory. Presets whose ID or name already
// exists are skipped.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	var imported model.Inventory
	found, err := readJSONFile(path, "inventory", &imported)
	if err != nil {
		return existing, err
	}
	if !found {
		return existing, fmt.Errorf("inventory file %s does not exist", path)
	}

	ids := make(map[string]bool, len(existing.Pallets))
	names := make(map[string]bool, len(existing.Pallets))
	for _, p := range existing.Pallets {
		ids[p.ID] = true
		names[p.Name] = true
	}

	for _, p := range imported.Pallets {
		if ids[p.ID] || names[p.Name] {
			continue
		}
		existing.Pallets = append(existing.Pallets, p)
		ids[p.ID] = true
		names[p.Name] = true
	}

	return existing, nil
}
