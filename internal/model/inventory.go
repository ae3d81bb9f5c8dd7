package model

// PalletPreset represents a reusable pallet definition.
type PalletPreset struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Length      float64 `json:"length" yaml:"length"`         // cm
	Width       float64 `json:"width" yaml:"width"`           // cm
	MaxHeight   float64 `json:"max_height" yaml:"max_height"` // cm, load height above the deck
	DeckHeight  float64 `json:"deck_height" yaml:"deck_height"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewPalletPreset creates a new PalletPreset with a generated ID.
func NewPalletPreset(name string, length, width, maxHeight, deckHeight float64) PalletPreset {
	return PalletPreset{
		ID:         NewID(),
		Name:       name,
		Length:     length,
		Width:      width,
		MaxHeight:  maxHeight,
		DeckHeight: deckHeight,
	}
}

// ToPallet converts a preset into the bounds used by the optimizer.
func (pp PalletPreset) ToPallet() Pallet {
	return Pallet{Length: pp.Length, Width: pp.Width, MaxHeight: pp.MaxHeight}
}

// Inventory holds the user's saved pallet presets.
type Inventory struct {
	Pallets []PalletPreset `json:"pallets" yaml:"pallets"`
}

// DefaultInventory returns an inventory populated with common pallet sizes.
// The first entry is the standard EUR pallet.
func DefaultInventory() Inventory {
	eur := NewPalletPreset("EUR 1200x800", 120, 80, 200, 14.4)
	eur.Description = "EPAL 1 / EUR pallet"
	half := NewPalletPreset("EUR Half 800x600", 80, 60, 200, 14.4)
	half.Description = "EPAL 6 half pallet"
	industrial := NewPalletPreset("Industrial 1200x1000", 120, 100, 200, 14.4)
	industrial.Description = "EPAL 2 / ISO industrial pallet"
	gma := NewPalletPreset("US GMA 48x40", 121.9, 101.6, 152.4, 14.0)
	gma.Description = "North American GMA pallet"

	return Inventory{
		Pallets: []PalletPreset{eur, half, industrial, gma},
	}
}

// FindPalletByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindPalletByID(id string) *PalletPreset {
	for i := range inv.Pallets {
		if inv.Pallets[i].ID == id {
			return &inv.Pallets[i]
		}
	}
	return nil
}

// FindPalletByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindPalletByName(name string) *PalletPreset {
	for i := range inv.Pallets {
		if inv.Pallets[i].Name == name {
			return &inv.Pallets[i]
		}
	}
	return nil
}

// PalletNames returns the preset names in inventory order.
func (inv *Inventory) PalletNames() []string {
	names := make([]string, len(inv.Pallets))
	for i, p := range inv.Pallets {
		names[i] = p.Name
	}
	return names
}
