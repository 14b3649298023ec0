package mockhttp

import (
	"errors"
	"fmt"
)

var (
	// ErrBadURL indicates that no endpoint is registered for the requested
	// method and URL.
	ErrBadURL = errors.New("no endpoint registered for URL")

	// ErrBadPayload indicates that an endpoint matched but its stored
	// response body failed to decode with the request's decoder.
	ErrBadPayload = errors.New("response body failed to decode")

	// ErrNilDecoder indicates a request was built without a decoder.
	ErrNilDecoder = errors.New("request decoder is nil")

	// ErrInvalidEndpoint indicates an endpoint declaration that violates a
	// registry invariant, such as a negative response time.
	ErrInvalidEndpoint = errors.New("invalid endpoint declaration")
)

// Response is the synthesized response record attached to a BadPayloadError.
// A decode failure is reported as if the server returned a well-formed 200
// response whose body simply did not parse, distinguishing "malformed body"
// from "nothing matched".
type Response struct {
	// URL is the requested URL that matched the endpoint.
	URL string
	// Status is the HTTP status text (always "200 OK" for the mock).
	Status string
	// StatusCode is the numeric HTTP status code (always 200 for the mock).
	StatusCode int
	// Body is the endpoint's raw stored response text, verbatim.
	Body string
}

// BadURLError reports a request whose method and URL matched no registered
// endpoint. It unwraps to ErrBadURL.
type BadURLError struct {
	// Method is the requested HTTP method.
	Method string
	// URL is the requested URL that matched nothing.
	URL string
}

// Error returns a diagnostic containing the requested method and URL.
func (e *BadURLError) Error() string {
	return fmt.Sprintf("no endpoint registered for %s %s", e.Method, e.URL)
}

// Unwrap links the error to the ErrBadURL sentinel.
func (e *BadURLError) Unwrap() error { return ErrBadURL }

// BadPayloadError reports a matched endpoint whose stored body failed to
// decode. It unwraps to both ErrBadPayload and the decoder's own error.
type BadPayloadError struct {
	// Err is the underlying error reported by the decoder.
	Err error
	// Response is the synthesized 200 response carrying the raw body.
	Response Response
}

// Error returns a diagnostic containing the decoder's failure reason.
func (e *BadPayloadError) Error() string {
	return fmt.Sprintf("response body failed to decode: %v", e.Err)
}

// Unwrap links the error to the ErrBadPayload sentinel and the decoder's
// underlying error, so errors.Is matches either.
func (e *BadPayloadError) Unwrap() []error { return []error{ErrBadPayload, e.Err} }
