package gateway_errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrMissingAuthHeader    = errors.New("authorization header missing")
	ErrMissingToken         = errors.New("access token missing")
	ErrTooLarge             = errors.New("file too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingFile          = errors.New("file is required")
)

// UpstreamError is returned when an upstream API answers with a
// non-success status. Body holds the raw upstream response so handlers
// can relay it to the caller.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// AsUpstream unwraps err into an UpstreamError if it is one.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
