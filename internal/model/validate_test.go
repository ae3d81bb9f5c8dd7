package model

import (
	"errors"
	"math"
	"strings"
	"testing"
)

var validPallet = Pallet{Length: 120, Width: 80, MaxHeight: 200}

func TestValidateInputAcceptsWellFormedInput(t *testing.T) {
	boxes := []BoxSpec{
		{ID: "a", Length: 40, Width: 30, Height: 20, Weight: 10},
		{ID: "b", Length: 10, Width: 10, Height: 10, Weight: 1},
	}
	if err := ValidateInput(boxes, validPallet); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateInputAcceptsEmptyList(t *testing.T) {
	if err := ValidateInput(nil, validPallet); err != nil {
		t.Errorf("expected no error for empty list, got %v", err)
	}
}

func TestValidateInputRejectsNonPositiveDimensions(t *testing.T) {
	boxes := []BoxSpec{
		{ID: "a", Length: 0, Width: 30, Height: -2, Weight: 10},
	}
	err := ValidateInput(boxes, validPallet)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %T", err)
	}
	if inputErr.Code != CodeValidationError {
		t.Errorf("expected code %s, got %s", CodeValidationError, inputErr.Code)
	}
	if _, ok := inputErr.Details["Boxes[0].Length"]; !ok {
		t.Errorf("expected detail for Boxes[0].Length, got %v", inputErr.Details)
	}
	if _, ok := inputErr.Details["Boxes[0].Height"]; !ok {
		t.Errorf("expected detail for Boxes[0].Height, got %v", inputErr.Details)
	}
}

func TestValidateInputRejectsNaNAndInfWeight(t *testing.T) {
	boxes := []BoxSpec{
		{ID: "nan", Length: 1, Width: 1, Height: 1, Weight: math.NaN()},
		{ID: "inf", Length: 1, Width: 1, Height: 1, Weight: math.Inf(1)},
	}
	err := ValidateInput(boxes, validPallet)
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %v", err)
	}
	if _, ok := inputErr.Details["Boxes[0].Weight"]; !ok {
		t.Errorf("expected NaN weight to be rejected, got %v", inputErr.Details)
	}
	if _, ok := inputErr.Details["Boxes[1].Weight"]; !ok {
		t.Errorf("expected infinite weight to be rejected, got %v", inputErr.Details)
	}
}

func TestValidateInputRejectsMissingAndDuplicateIDs(t *testing.T) {
	boxes := []BoxSpec{
		{ID: "dup", Length: 1, Width: 1, Height: 1, Weight: 1},
		{ID: "dup", Length: 1, Width: 1, Height: 1, Weight: 1},
		{ID: "", Length: 1, Width: 1, Height: 1, Weight: 1},
	}
	err := ValidateInput(boxes, validPallet)
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %v", err)
	}
	if _, ok := inputErr.Details["Boxes"]; !ok {
		t.Errorf("expected duplicate ID detail on Boxes, got %v", inputErr.Details)
	}
	if _, ok := inputErr.Details["Boxes[2].ID"]; !ok {
		t.Errorf("expected missing ID detail, got %v", inputErr.Details)
	}
}

func TestValidateInputRejectsBadPallet(t *testing.T) {
	err := ValidateInput(nil, Pallet{Length: 120, Width: 0, MaxHeight: math.Inf(1)})
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %v", err)
	}
	if _, ok := inputErr.Details["Pallet.Width"]; !ok {
		t.Errorf("expected Pallet.Width detail, got %v", inputErr.Details)
	}
	if _, ok := inputErr.Details["Pallet.MaxHeight"]; !ok {
		t.Errorf("expected Pallet.MaxHeight detail, got %v", inputErr.Details)
	}
	if !strings.HasPrefix(err.Error(), CodeValidationError) {
		t.Errorf("expected message to start with code, got %q", err.Error())
	}
}

func TestValidateInputReportsBoxErrorsAlongsideDuplicates(t *testing.T) {
	boxes := []BoxSpec{
		{ID: "dup", Length: 1, Width: 1, Height: 0, Weight: 1},
		{ID: "dup", Length: 1, Width: 1, Height: 1, Weight: -3},
	}
	err := ValidateInput(boxes, validPallet)
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %v", err)
	}
	for _, field := range []string{"Boxes", "Boxes[0].Height", "Boxes[1].Weight"} {
		if _, ok := inputErr.Details[field]; !ok {
			t.Errorf("expected detail for %s, got %v", field, inputErr.Details)
		}
	}
	if got := inputErr.Details["Boxes"]; got != "failed unique=ID" {
		t.Errorf("expected duplicate detail 'failed unique=ID', got %q", got)
	}
}
