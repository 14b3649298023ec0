package fixture

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	mockhttp "github.com/mockhttp-project/mockhttp"
)

var (
	// ErrRead wraps failures while reading or parsing a fixture file.
	ErrRead = errors.New("failed to read fixture file")

	// ErrDecode wraps failures while unmarshaling fixture declarations.
	ErrDecode = errors.New("failed to decode fixture declarations")

	// ErrInvalid wraps validation failures in fixture declarations.
	ErrInvalid = errors.New("fixture declarations failed validation")
)

// Declaration is a single endpoint entry in a fixture file.
type Declaration struct {
	// Method is the HTTP method to match.
	Method string `koanf:"method" yaml:"method" validate:"required,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS"`

	// URL is the exact URL to match.
	URL string `koanf:"url" yaml:"url" validate:"required"`

	// Response is the canned response body text.
	Response string `koanf:"response" yaml:"response"`

	// ResponseTime is the simulated latency in milliseconds.
	ResponseTime int64 `koanf:"responseTime" yaml:"responseTime" validate:"gte=0"`
}

// File is the overall structure of a fixture file.
type File struct {
	// Endpoints holds the declarations in match order.
	Endpoints []Declaration `koanf:"endpoints" yaml:"endpoints" validate:"required,dive"`
}

// Registry builds a registry from the file's declarations, preserving
// declaration order and converting milliseconds to durations.
func (f *File) Registry() (*mockhttp.Registry, error) {
	endpoints := make([]mockhttp.Endpoint, 0, len(f.Endpoints))
	for _, d := range f.Endpoints {
		endpoints = append(endpoints, mockhttp.Endpoint{
			Method:       d.Method,
			URL:          d.URL,
			Response:     d.Response,
			ResponseTime: time.Duration(d.ResponseTime) * time.Millisecond,
		})
	}
	return mockhttp.New(mockhttp.Config{Endpoints: endpoints})
}

// LoadFile reads and validates a fixture file without building a registry.
func LoadFile(path string) (*File, error) {
	k := koanf.New(".")
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Load the YAML fixture
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Join(ErrRead, err)
	}

	var f File
	if err := k.Unmarshal("", &f); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}

	// Validate the declarations
	if err := validate.Struct(&f); err != nil {
		return nil, errors.Join(ErrInvalid, err)
	}

	return &f, nil
}

// Load reads a fixture file and builds a registry from its declarations.
func Load(path string) (*mockhttp.Registry, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Registry()
}
