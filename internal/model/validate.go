package model

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CodeValidationError is the error code carried by every InputError.
const CodeValidationError = "VALIDATION_ERROR"

// ErrInvalidInput is matched by errors.Is for any input validation failure.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports malformed boxes or pallet dimensions. Details maps a
// field path (e.g. "Boxes[2].Height") to the failed rule.
type InputError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *InputError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+" "+e.Details[f])
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, strings.Join(parts, ", "))
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// WithDetail adds a single field detail to the error.
func (e *InputError) WithDetail(field, reason string) *InputError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[field] = reason
	return e
}

func newInputError(message string) *InputError {
	return &InputError{Code: CodeValidationError, Message: message}
}

// optimizeInput is the validated shape of one optimizer invocation.
type optimizeInput struct {
	Boxes  []BoxSpec `validate:"dive"`
	Pallet Pallet
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateInput checks that every box has an ID, positive finite dimensions
// and weight, that IDs are unique, and that the pallet is positive in all
// three axes. It returns nil or an *InputError.
func ValidateInput(boxes []BoxSpec, pallet Pallet) error {
	inputErr := newInputError("invalid optimizer input")

	// unique stops validation of the field, so per-box rules run separately.
	if err := addFieldErrors(inputErr, validate.Struct(optimizeInput{Boxes: boxes, Pallet: pallet}), ""); err != nil {
		return err
	}
	if err := addFieldErrors(inputErr, validate.Var(boxes, "unique=ID"), "Boxes"); err != nil {
		return err
	}

	// gt=0 already rejects NaN; infinities still need an explicit check.
	for i, b := range boxes {
		for name, v := range map[string]float64{
			"Length": b.Length, "Width": b.Width, "Height": b.Height, "Weight": b.Weight,
		} {
			if math.IsInf(v, 0) {
				inputErr.WithDetail(fmt.Sprintf("Boxes[%d].%s", i, name), "must be finite")
			}
		}
	}
	for name, v := range map[string]float64{
		"Length": pallet.Length, "Width": pallet.Width, "MaxHeight": pallet.MaxHeight,
	} {
		if math.IsInf(v, 0) {
			inputErr.WithDetail("Pallet."+name, "must be finite")
		}
	}

	if len(inputErr.Details) > 0 {
		return inputErr
	}
	return nil
}

// addFieldErrors records each validator field error on inputErr. field
// overrides the reported namespace, as needed for validate.Var errors. A
// non-validation error is returned as an InputError detail.
func addFieldErrors(inputErr *InputError, err error, field string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return inputErr.WithDetail("input", err.Error())
	}
	for _, fe := range verrs {
		name := field
		if name == "" {
			name = strings.TrimPrefix(fe.Namespace(), "optimizeInput.")
		}
		reason := fe.Tag()
		if fe.Param() != "" {
			reason += "=" + fe.Param()
		}
		inputErr.WithDetail(name, "failed "+reason)
	}
	return nil
}
