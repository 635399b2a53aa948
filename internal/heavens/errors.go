package heavens

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by ParseError when the expected link is absent.
var ErrNotFound = errors.New("pattern not found")

// RequestError reports a failed GET: a transport error (StatusCode 0) or a
// non-2xx response.
type RequestError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status code %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ParseError reports HTML that did not contain what a parser looks for.
type ParseError struct {
	Page string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s page: %v", e.Page, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
