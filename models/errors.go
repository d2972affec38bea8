package models

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// DataValidationError signals malformed or inconsistent input data, as
// opposed to a storage failure. Field names the offending field.
type DataValidationError struct {
	Field  string
	Reason string
}

func (e *DataValidationError) Error() string {
	if e.Field == "" {
		return "data validation error: " + e.Reason
	}
	return fmt.Sprintf("data validation error: field %q: %s", e.Field, e.Reason)
}
