package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

var (
	// ErrMissingField is matched by errors.Is when a required setting is absent.
	ErrMissingField = errors.New("missing required setting")
	// ErrInvalidValue is matched by errors.Is when a setting fails type coercion.
	ErrInvalidValue = errors.New("invalid setting value")
)

// FieldError describes a value that could not be converted to its field type.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Error collects every problem found while constructing Settings.
type Error struct {
	// Missing holds the environment names of absent required settings.
	Missing []string
	// Invalid holds the settings that failed type coercion.
	Invalid []*FieldError
	// Other holds failures that fit neither category.
	Other []error
}

func (e *Error) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required settings: "+strings.Join(e.Missing, ", "))
	}
	for _, fe := range e.Invalid {
		parts = append(parts, fe.Error())
	}
	for _, err := range e.Other {
		parts = append(parts, err.Error())
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrMissingField:
		return len(e.Missing) > 0
	case ErrInvalidValue:
		return len(e.Invalid) > 0
	}
	return false
}

// newError translates the parser's aggregated error into an *Error keyed by
// environment names.
func newError(err error, environ map[string]string) *Error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return &Error{Other: []error{err}}
	}

	names := fieldEnvNames()
	out := &Error{}
	for _, e := range agg.Errors {
		var notSet env.EnvVarIsNotSetError
		var parseErr env.ParseError
		switch {
		case errors.As(e, &notSet):
			out.Missing = append(out.Missing, notSet.Key)
		case errors.As(e, &parseErr):
			name := names[parseErr.Name]
			if name == "" {
				name = parseErr.Name
			}
			out.Invalid = append(out.Invalid, &FieldError{
				Field: name,
				Value: environ[name],
				Err:   parseErr.Err,
			})
		default:
			out.Other = append(out.Other, e)
		}
	}
	return out
}
