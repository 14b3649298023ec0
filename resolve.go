package mockhttp

import "time"

// Resolve matches the request against the registry and decodes the matched
// endpoint's stored body.
//
// When no endpoint matches, the error is a BadURLError and the delay is
// zero. When an endpoint matches but its body fails to decode, the error is
// a BadPayloadError carrying a synthesized 200 response with the raw body;
// the endpoint's configured delay still applies because the match happened.
// On success the decoded value and the endpoint's delay are returned.
//
// Resolution is a pure function over the registry: it never retries, never
// falls back past the first match, and never logs.
func Resolve[T any](registry *Registry, request Request[T]) (T, time.Duration, error) {
	var zero T

	// A nil decoder is a caller programming error, reported before lookup
	if request.Decode == nil {
		return zero, 0, ErrNilDecoder
	}

	// Find the first endpoint matching method and URL exactly
	endpoint, ok := registry.lookup(request.Method, request.URL)
	if !ok {
		return zero, 0, &BadURLError{Method: request.Method, URL: request.URL}
	}

	// Decode the stored body with the caller's decoder
	value, err := request.Decode(endpoint.Response)
	if err != nil {
		return zero, endpoint.ResponseTime, &BadPayloadError{
			Err: err,
			Response: Response{
				URL:        request.URL,
				Status:     "200 OK",
				StatusCode: 200,
				Body:       endpoint.Response,
			},
		}
	}

	return value, endpoint.ResponseTime, nil
}
