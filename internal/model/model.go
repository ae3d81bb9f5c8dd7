package model

import (
	"math"

	"github.com/google/uuid"
)

// Epsilon is the tolerance used by every geometric comparison. Boxes that
// share a face are not considered overlapping.
const Epsilon = 1e-9

// BoxSpec represents a box to be loaded onto a pallet.
type BoxSpec struct {
	ID     string  `json:"id" yaml:"id" validate:"required"`
	Name   string  `json:"name" yaml:"name"`
	Length float64 `json:"length" yaml:"length" validate:"gt=0"` // cm
	Width  float64 `json:"width" yaml:"width" validate:"gt=0"`   // cm
	Height float64 `json:"height" yaml:"height" validate:"gt=0"` // cm
	Weight float64 `json:"weight" yaml:"weight" validate:"gt=0"` // kg
	Color  string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// NewID returns a short random identifier for boxes and presets.
func NewID() string {
	return uuid.New().String()[:8]
}

func NewBox(name string, l, w, h, weight float64) BoxSpec {
	return BoxSpec{
		ID:     NewID(),
		Name:   name,
		Length: l,
		Width:  w,
		Height: h,
		Weight: weight,
	}
}

// Volume returns length × width × height.
func (b BoxSpec) Volume() float64 {
	return b.Length * b.Width * b.Height
}

// MaxFaceArea returns the area of the largest of the three faces.
func (b BoxSpec) MaxFaceArea() float64 {
	return math.Max(b.Length*b.Width, math.Max(b.Length*b.Height, b.Width*b.Height))
}

// MaxDimension returns the longest edge.
func (b BoxSpec) MaxDimension() float64 {
	return math.Max(b.Length, math.Max(b.Width, b.Height))
}

// Orientation holds the rotated dimensions of a box, aligned to the pallet axes.
// Length runs along x, Width along z and Height along y.
type Orientation struct {
	Length float64 `json:"rotated_length" yaml:"rotated_length"`
	Width  float64 `json:"rotated_width" yaml:"rotated_width"`
	Height float64 `json:"rotated_height" yaml:"rotated_height"`
}

// PlacedBox is a box committed to a position on the pallet.
// X, Y, Z is the minimum corner in pallet-local coordinates.
type PlacedBox struct {
	Box         BoxSpec     `json:"box" yaml:"box"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
	X           float64     `json:"x" yaml:"x"` // along pallet length
	Y           float64     `json:"y" yaml:"y"` // height above the loading surface
	Z           float64     `json:"z" yaml:"z"` // along pallet width
}

// Top returns the height of the box's upper face.
func (p PlacedBox) Top() float64 {
	return p.Y + p.Orientation.Height
}

// MaxX returns the far edge along the pallet length.
func (p PlacedBox) MaxX() float64 {
	return p.X + p.Orientation.Length
}

// MaxZ returns the far edge along the pallet width.
func (p PlacedBox) MaxZ() float64 {
	return p.Z + p.Orientation.Width
}

// Rotated reports whether the chosen orientation differs from the box's
// original length/width/height assignment.
func (p PlacedBox) Rotated() bool {
	return p.Orientation.Length != p.Box.Length ||
		p.Orientation.Width != p.Box.Width ||
		p.Orientation.Height != p.Box.Height
}

// Pallet is the loading area: footprint plus maximum load height, in cm.
type Pallet struct {
	Length    float64 `json:"length" yaml:"length" validate:"gt=0"`
	Width     float64 `json:"width" yaml:"width" validate:"gt=0"`
	MaxHeight float64 `json:"max_height" yaml:"max_height" validate:"gt=0"`
}

// Volume returns the loadable volume of the pallet.
func (p Pallet) Volume() float64 {
	return p.Length * p.Width * p.MaxHeight
}

// PlacementResult holds the outcome of a single pallet run. Placed is in
// commit order, which is also the physical loading order.
type PlacementResult struct {
	Placed   []PlacedBox `json:"placed" yaml:"placed"`
	Unplaced []BoxSpec   `json:"unplaced" yaml:"unplaced"`
}

// NewPlacementResult returns a result with empty, non-nil sequences.
func NewPlacementResult() PlacementResult {
	return PlacementResult{
		Placed:   []PlacedBox{},
		Unplaced: []BoxSpec{},
	}
}

// Total returns the number of boxes accounted for by the result.
func (r PlacementResult) Total() int {
	return len(r.Placed) + len(r.Unplaced)
}

// PackSettings holds optimizer configuration.
type PackSettings struct {
	Epsilon float64 `json:"epsilon" yaml:"epsilon"` // geometric tolerance
}

func DefaultSettings() PackSettings {
	return PackSettings{Epsilon: Epsilon}
}

// Project ties everything together for save/load.
type Project struct {
	Name   string           `json:"name" yaml:"name"`
	Pallet Pallet           `json:"pallet" yaml:"pallet"`
	Boxes  []BoxSpec        `json:"boxes" yaml:"boxes"`
	Result *PlacementResult `json:"result,omitempty" yaml:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:   "Untitled",
		Pallet: DefaultInventory().Pallets[0].ToPallet(),
		Boxes:  []BoxSpec{},
	}
}
