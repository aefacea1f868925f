package registry

import "fmt"

// FetchError reports a failed fetch: either a transport failure
// (DNS, connection) or a non-success HTTP status. StatusCode is zero
// when the request never produced a response.
type FetchError struct {
	// URL is the endpoint that was requested.
	URL string

	// StatusCode is the HTTP status of the response, if one was received.
	StatusCode int

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body that is not valid JSON of the
// expected shape.
type ParseError struct {
	// URL is the endpoint whose response failed to parse.
	URL string

	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response from %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *ParseError) Unwrap() error {
	return e.Err
}
