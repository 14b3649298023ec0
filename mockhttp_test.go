package mockhttp

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	t.Run("empty config", func(t *testing.T) {
		t.Parallel()
		reg, err := New(Config{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := reg.Endpoints(); len(got) != 0 {
			t.Fatalf("endpoints: want 0 got %d", len(got))
		}
	})

	t.Run("declaration order preserved", func(t *testing.T) {
		t.Parallel()
		endpoints := []Endpoint{
			GET("http://example.com/api/books/classics", `["Moby Dick"]`, 0),
			GET("http://example.com/api/books", `["Book one","Book two"]`, time.Second),
			GET("http://example.com/api/books", `["shadowed"]`, 0),
		}
		reg, err := New(Config{Endpoints: endpoints})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(endpoints, reg.Endpoints()); diff != "" {
			t.Fatalf("endpoints mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("negative response time rejected", func(t *testing.T) {
		t.Parallel()
		_, err := New(Config{Endpoints: []Endpoint{
			GET("http://example.com/api", "{}", -time.Second),
		}})
		if !errors.Is(err, ErrInvalidEndpoint) {
			t.Fatalf("want ErrInvalidEndpoint got %v", err)
		}
	})

	t.Run("input slice mutation does not reach registry", func(t *testing.T) {
		t.Parallel()
		endpoints := []Endpoint{GET("http://example.com/api", `"before"`, 0)}
		reg, err := New(Config{Endpoints: endpoints})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		endpoints[0].Response = `"after"`
		got := reg.Endpoints()
		if got[0].Response != `"before"` {
			t.Fatalf("registry mutated through input slice: got %q", got[0].Response)
		}
	})

	t.Run("Endpoints returns a copy", func(t *testing.T) {
		t.Parallel()
		reg, err := New(Config{Endpoints: []Endpoint{GET("http://example.com/api", `"before"`, 0)}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := reg.Endpoints()
		first[0].Response = `"after"`
		if got := reg.Endpoints(); got[0].Response != `"before"` {
			t.Fatalf("registry mutated through Endpoints copy: got %q", got[0].Response)
		}
	})
}

func TestLookup(t *testing.T) {
	reg, err := New(Config{Endpoints: []Endpoint{
		GET("http://example.com/api/books/classics", `["Moby Dick"]`, 0),
		GET("http://example.com/api/books", `["Book one"]`, 0),
		POST("http://example.com/api/books", `"Saved!"`, 0),
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tt := []struct {
		name       string
		method     string
		url        string
		wantFound  bool
		wantBody   string
		wantMethod string
	}{
		{"GET exact match", "GET", "http://example.com/api/books", true, `["Book one"]`, "GET"},
		{"method distinguishes", "POST", "http://example.com/api/books", true, `"Saved!"`, "POST"},
		{"no prefix matching", "GET", "http://example.com/api", false, "", ""},
		{"case-sensitive URL", "GET", "http://example.com/API/books", false, "", ""},
		{"trailing slash is a different URL", "GET", "http://example.com/api/books/", false, "", ""},
		{"unknown method", "DELETE", "http://example.com/api/books", false, "", ""},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ep, found := reg.lookup(tc.method, tc.url)
			if found != tc.wantFound {
				t.Fatalf("found: want %v got %v", tc.wantFound, found)
			}
			if !found {
				return
			}
			if ep.Response != tc.wantBody {
				t.Errorf("body: want %q got %q", tc.wantBody, ep.Response)
			}
			if ep.Method != tc.wantMethod {
				t.Errorf("method: want %q got %q", tc.wantMethod, ep.Method)
			}
		})
	}

	t.Run("nil registry matches nothing", func(t *testing.T) {
		t.Parallel()
		var nilReg *Registry
		if _, found := nilReg.lookup("GET", "http://example.com/api/books"); found {
			t.Fatal("expected no match on nil registry")
		}
	})
}
