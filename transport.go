package mockhttp

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// Transport adapts a Registry to the standard library's http.RoundTripper
// interface so a *http.Client can run against the mock unchanged.
//
// A matched request produces a synthesized 200 response carrying the
// endpoint's stored body, delivered after the endpoint's configured delay.
// Unlike Send, the wait honors the request's context: the stdlib transport
// contract requires cancellation, so a cancelled context aborts the wait
// and returns the context error.
type Transport struct {
	// registry supplies the endpoints matched against each request.
	registry *Registry
}

// Ensure Transport always satisfies http.RoundTripper at compile time.
var _ http.RoundTripper = (*Transport)(nil)

// NewTransport creates a new Transport backed by the given registry.
func NewTransport(registry *Registry) *Transport {
	return &Transport{registry: registry}
}

// RoundTrip implements the http.RoundTripper interface.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Match method and URL exactly, first declaration wins
	endpoint, ok := t.registry.lookup(req.Method, req.URL.String())
	if !ok {
		return nil, &BadURLError{Method: req.Method, URL: req.URL.String()}
	}

	// Honor the simulated latency, but let the request context cut it short
	if endpoint.ResponseTime > 0 {
		timer := time.NewTimer(endpoint.ResponseTime)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}

	return &http.Response{
		Status:        "200 OK",
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        make(http.Header),
		Body:          io.NopCloser(strings.NewReader(endpoint.Response)),
		ContentLength: int64(len(endpoint.Response)),
		Request:       req,
	}, nil
}
