package validate

import (
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrors maps a field name to the messages explaining why it failed.
type FieldErrors map[string][]string

// Error is the client-facing validation failure for a request payload.
// Every failing field is reported, keyed by its JSON name.
type Error struct {
	Fields FieldErrors
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Wrap converts an ozzo validation result into an *Error. Non-validation
// errors pass through unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return err
	}

	fields := make(FieldErrors, len(errs))
	for field, fieldErr := range errs {
		fields[field] = append(fields[field], fieldErr.Error())
	}

	return &Error{Fields: fields}
}
