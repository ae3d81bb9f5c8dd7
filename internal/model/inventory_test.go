package model

import "testing"

func TestDefaultInventoryStartsWithEUR(t *testing.T) {
	inv := DefaultInventory()
	if len(inv.Pallets) < 4 {
		t.Fatalf("expected at least 4 presets, got %d", len(inv.Pallets))
	}
	eur := inv.Pallets[0].ToPallet()
	if eur.Length != 120 || eur.Width != 80 || eur.MaxHeight != 200 {
		t.Errorf("expected EUR 120x80x200, got %+v", eur)
	}
}

func TestFindPalletByNameAndID(t *testing.T) {
	inv := DefaultInventory()
	half := inv.FindPalletByName("EUR Half 800x600")
	if half == nil {
		t.Fatal("expected to find half pallet by name")
	}
	if got := inv.FindPalletByID(half.ID); got == nil || got.Name != half.Name {
		t.Errorf("expected to find half pallet by ID %s", half.ID)
	}
	if inv.FindPalletByName("does not exist") != nil {
		t.Error("expected nil for unknown name")
	}
	if inv.FindPalletByID("nope") != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestPalletNamesOrder(t *testing.T) {
	inv := DefaultInventory()
	names := inv.PalletNames()
	if len(names) != len(inv.Pallets) {
		t.Fatalf("expected %d names, got %d", len(inv.Pallets), len(names))
	}
	for i, p := range inv.Pallets {
		if names[i] != p.Name {
			t.Errorf("name %d: expected %q, got %q", i, p.Name, names[i])
		}
	}
}
