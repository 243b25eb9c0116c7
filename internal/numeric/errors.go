package numeric

import "errors"

// ErrInvalidInput is returned when input cannot be numerically interpreted,
// e.g. strings or ragged nested slices. Matched with errors.Is; callers that
// need context wrap it with fmt.Errorf("...: %w", ErrInvalidInput).
var ErrInvalidInput = errors.New("numeric: invalid input")
