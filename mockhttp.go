package mockhttp

import "fmt"

// Config controls construction of a Registry.
type Config struct {
	// Endpoints holds the endpoint declarations in match order. Duplicate
	// method/URL pairs are permitted; the first declaration wins.
	Endpoints []Endpoint
}

// Registry is an immutable, ordered collection of endpoints. Once built it
// is never mutated, so any number of in-flight resolutions may read it
// concurrently.
type Registry struct {
	// endpoints holds the declarations in registration order.
	endpoints []Endpoint
}

// New creates a new Registry from the provided configuration.
//
// Declaration order is preserved and duplicates are not rejected; when two
// endpoints share a method and URL the earlier one shadows the later. The
// only validation performed is that no endpoint carries a negative
// ResponseTime.
func New(config Config) (*Registry, error) {
	// Validate the one invariant the Endpoint type cannot express
	for i, ep := range config.Endpoints {
		if ep.ResponseTime < 0 {
			return nil, fmt.Errorf("%w: endpoint %d (%s %s) has negative response time %s",
				ErrInvalidEndpoint, i, ep.Method, ep.URL, ep.ResponseTime)
		}
	}

	// Copy the declarations so later caller mutation cannot reach the registry
	endpoints := append([]Endpoint(nil), config.Endpoints...)

	return &Registry{endpoints: endpoints}, nil
}

// Endpoints returns a copy of the registered endpoints in declaration order.
func (r *Registry) Endpoints() []Endpoint {
	return append([]Endpoint(nil), r.endpoints...)
}

// lookup scans the registry in declaration order and returns the first
// endpoint whose method and URL both match exactly.
func (r *Registry) lookup(method, url string) (Endpoint, bool) {
	if r == nil {
		return Endpoint{}, false
	}
	for _, ep := range r.endpoints {
		if ep.Method == method && ep.URL == url {
			return ep, true
		}
	}
	return Endpoint{}, false
}
