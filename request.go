package mockhttp

import "net/http"

// Request describes a pending request: the method and URL to match against
// the registry and the decoder applied to the matched endpoint's body.
// Requests are built per call site and are not retained after resolution.
type Request[T any] struct {
	// Method is the HTTP method to match.
	Method string

	// URL is the exact URL to match.
	URL string

	// Body is the request body, if any. It is carried for call-shape parity
	// with a real client but never participates in matching.
	Body string

	// Decode converts the matched endpoint's stored body into the caller's
	// expected type.
	Decode Decoder[T]
}

// NewRequest creates a request for an arbitrary HTTP method.
func NewRequest[T any](method, url, body string, decoder Decoder[T]) Request[T] {
	return Request[T]{
		Method: method,
		URL:    url,
		Body:   body,
		Decode: decoder,
	}
}

// Get creates a GET request decoding the response with the given decoder.
func Get[T any](url string, decoder Decoder[T]) Request[T] {
	return NewRequest(http.MethodGet, url, "", decoder)
}

// GetString creates a GET request that returns the response body verbatim.
func GetString(url string) Request[string] {
	return Get(url, String())
}

// Post creates a POST request carrying the given body and decoding the
// response with the given decoder. The body is not consulted when matching.
func Post[T any](url, body string, decoder Decoder[T]) Request[T] {
	return NewRequest(http.MethodPost, url, body, decoder)
}
