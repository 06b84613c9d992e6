package domain

import (
	"errors"
	"strings"
)

// Domain errors for catalog records
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInventoryUnavailable indicates the inventory service has no usable
	// record for the product; callers render zero stock instead of failing.
	ErrInventoryUnavailable = errors.New("inventory unavailable for product")
)

// ValidationError is a single client-side field check failure. Validation
// failures never reach the network; they are surfaced on the form directly.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors aggregates per-field failures from one form submission.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Message)
	}
	return strings.Join(msgs, "; ")
}

// ByField indexes the failures for form rendering.
func (e ValidationErrors) ByField() map[string]string {
	out := make(map[string]string, len(e))
	for _, ve := range e {
		if _, seen := out[ve.Field]; !seen {
			out[ve.Field] = ve.Message
		}
	}
	return out
}
