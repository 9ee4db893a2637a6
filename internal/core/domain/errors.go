package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrDuplicateAccount is returned when an email or phone is already registered.
	ErrDuplicateAccount = errors.New("email or phone already registered")

	// ErrInvalidCredentials does not say which half was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError maps a form field to a human readable message.
// All invalid fields of a form are reported together.
type ValidationError map[string]string

// Add records msg for field unless the field already has a message.
func (v ValidationError) Add(field, msg string) {
	if _, exists := v[field]; exists {
		return
	}
	v[field] = msg
}

func (v ValidationError) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Err returns nil when there are no field errors, so callers never get a
// non-nil error wrapping an empty map.
func (v ValidationError) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into its field map.
func AsValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
