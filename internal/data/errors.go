package data

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors shared across the registries. These are row-scoped: a
// caller loading many rows is expected to catch them, count them, and carry
// on with the next row.
var (
	ErrEmptyName       = errors.New("person name must not be empty")
	ErrDuplicateRating = errors.New("rating code already registered")
)

// UnknownRatingError is returned when a row carries a content rating code
// outside the six fixed codes. The Code field holds the normalized
// (trimmed, uppercased) code that failed to resolve.
type UnknownRatingError struct {
	Code string
}

func (e UnknownRatingError) Error() string {
	return fmt.Sprintf("unknown rating code: %q", e.Code)
}

// MissingFieldError is returned when one of the four required columns is
// absent or blank after trimming.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// UnknownGenreError is returned when the genre column doesn't match any of
// the seven fixed genre tags. The Text field holds the raw (trimmed) value
// from the row.
type UnknownGenreError struct {
	Text string
}

func (e UnknownGenreError) Error() string {
	return fmt.Sprintf("unknown genre: %q", e.Text)
}

// InvalidRecordError is returned when a fully assembled record still fails
// its construction-time invariants. Given the factory's earlier checks this
// should not normally trigger, but it is the authoritative gate.
type InvalidRecordError struct {
	Fields map[string]string
}

func (e InvalidRecordError) Error() string {
	reasons := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		reasons = append(reasons, field+": "+reason)
	}
	sort.Strings(reasons)
	return "invalid record: " + strings.Join(reasons, "; ")
}
