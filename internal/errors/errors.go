package appErrors

import "fmt"

// ErrCustomerNotFound is a sentinel error
type ErrCustomerNotFound struct {
	CustomerID string
}

func (e *ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("customer with ID %s not found", e.CustomerID)
}

// Helper constructor
func NewCustomerNotFound(id string) error {
	return &ErrCustomerNotFound{CustomerID: id}
}

// ErrMeasurementNotFound signals a mutation against a measurement id that
// does not exist for the given customer.
type ErrMeasurementNotFound struct {
	MeasurementID string
}

func (e *ErrMeasurementNotFound) Error() string {
	return fmt.Sprintf("measurement with ID %s not found", e.MeasurementID)
}

func NewMeasurementNotFound(id string) error {
	return &ErrMeasurementNotFound{MeasurementID: id}
}

// ValidationError carries per-field messages for a rejected form submission.
// The mutation is never attempted when one of these is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}
