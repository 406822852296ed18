package data

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRuntimeFormat is returned by UnmarshalJSON when a runtime
// value isn't in the "<runtime> mins" format.
var ErrInvalidRuntimeFormat = errors.New("invalid runtime format")

// Runtime is a film length in minutes. It gets a custom type so the JSON
// representation reads as "<runtime> mins" instead of a bare number.
type Runtime int32

// MarshalJSON satisfies the json.Marshaler interface. The formatted string
// must be quoted to be a valid JSON string.
func (r Runtime) MarshalJSON() ([]byte, error) {
	jsonValue := fmt.Sprintf("%d mins", r)

	quotedJSONValue := strconv.Quote(jsonValue)

	return []byte(quotedJSONValue), nil
}

// UnmarshalJSON satisfies the json.Unmarshaler interface, accepting the
// same "<runtime> mins" shape that MarshalJSON produces.
func (r *Runtime) UnmarshalJSON(jsonValue []byte) error {
	unquotedJSONValue, err := strconv.Unquote(string(jsonValue))
	if err != nil {
		return ErrInvalidRuntimeFormat
	}

	parts := strings.Split(unquotedJSONValue, " ")
	if len(parts) != 2 || parts[1] != "mins" {
		return ErrInvalidRuntimeFormat
	}

	i, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return ErrInvalidRuntimeFormat
	}

	*r = Runtime(i)
	return nil
}
