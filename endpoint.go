package mockhttp

import (
	"net/http"
	"time"
)

// Endpoint describes a single static endpoint: a method and exact URL paired
// with the canned response body returned when a request matches.
type Endpoint struct {
	// Method is the HTTP method to match (e.g., GET, POST). Matching is
	// case-sensitive; use the net/http method constants.
	Method string

	// URL is the exact URL to match. Comparison is byte-for-byte with no
	// normalization, case folding, or query canonicalization.
	URL string

	// Response is the canned body text returned on a match, stored verbatim.
	// It is commonly JSON but the registry never inspects it.
	Response string

	// ResponseTime is the simulated latency before the response is
	// delivered. It must not be negative; the zero value delivers on the
	// next timer tick.
	ResponseTime time.Duration
}

// GET declares a GET endpoint with the given URL, response body, and
// simulated response time.
func GET(url, response string, responseTime time.Duration) Endpoint {
	return Endpoint{
		Method:       http.MethodGet,
		URL:          url,
		Response:     response,
		ResponseTime: responseTime,
	}
}

// POST declares a POST endpoint with the given URL, response body, and
// simulated response time.
func POST(url, response string, responseTime time.Duration) Endpoint {
	return Endpoint{
		Method:       http.MethodPost,
		URL:          url,
		Response:     response,
		ResponseTime: responseTime,
	}
}
