package openapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pb33f/libopenapi"
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"
	"gopkg.in/yaml.v3"

	mockhttp "github.com/mockhttp-project/mockhttp"
)

// extResponseTime is the operation extension carrying simulated latency in
// milliseconds.
const extResponseTime = "x-mock-response-time"

var (
	// ErrRead wraps failures while reading an OpenAPI document from disk.
	ErrRead = errors.New("failed to read OpenAPI document")

	// ErrParse wraps failures while parsing or building the OpenAPI model.
	ErrParse = errors.New("failed to parse OpenAPI document")
)

// Config controls how a registry is derived from a document.
type Config struct {
	// BaseURL overrides the document's first server URL as the prefix
	// joined with each path. If both are empty, paths are used as-is.
	BaseURL string

	// DefaultResponseTime is the simulated latency applied to operations
	// that carry no x-mock-response-time extension.
	DefaultResponseTime time.Duration
}

// Load reads an OpenAPI 3 document from disk and builds a registry from it.
func Load(path string, config Config) (*mockhttp.Registry, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrRead, err)
	}
	return Parse(contents, config)
}

// Parse builds a registry from the contents of an OpenAPI 3 document.
//
// One endpoint is emitted per operation that declares a success response
// (200 first, else the first 2xx) with an application/json example.
// Operations without a usable example are skipped, not errors.
func Parse(contents []byte, config Config) (*mockhttp.Registry, error) {
	doc, err := libopenapi.NewDocument(contents)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	model, errs := doc.BuildV3Model()
	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrParse}, errs...)...)
	}

	// Resolve the URL prefix: explicit override first, then the document
	base := config.BaseURL
	if base == "" && len(model.Model.Servers) > 0 && model.Model.Servers[0] != nil {
		base = model.Model.Servers[0].URL
	}

	var endpoints []mockhttp.Endpoint
	if model.Model.Paths == nil || model.Model.Paths.PathItems == nil {
		return mockhttp.New(mockhttp.Config{Endpoints: endpoints})
	}

	for path, pathItem := range model.Model.Paths.PathItems.FromOldest() {
		for method, operation := range pathItem.GetOperations().FromOldest() {
			body, ok := exampleBody(operation)
			if !ok {
				continue
			}

			endpoints = append(endpoints, mockhttp.Endpoint{
				Method:       strings.ToUpper(method),
				URL:          joinURL(base, path),
				Response:     body,
				ResponseTime: responseTime(operation, config.DefaultResponseTime),
			})
		}
	}

	return mockhttp.New(mockhttp.Config{Endpoints: endpoints})
}

// exampleBody extracts the canned body for an operation from its success
// response's application/json example.
func exampleBody(operation *v3.Operation) (string, bool) {
	if operation == nil || operation.Responses == nil || operation.Responses.Codes == nil {
		return "", false
	}

	response := successResponse(operation.Responses)
	if response == nil || response.Content == nil {
		return "", false
	}

	mediaType, ok := response.Content.Get("application/json")
	if !ok || mediaType == nil {
		return "", false
	}

	// Prefer the inline example, then the first named example
	node := mediaType.Example
	if node == nil && mediaType.Examples != nil {
		for _, example := range mediaType.Examples.FromOldest() {
			if example != nil && example.Value != nil {
				node = example.Value
				break
			}
		}
	}
	if node == nil {
		return "", false
	}

	return renderExample(node)
}

// successResponse picks the 200 response, or the first 2xx declared.
func successResponse(responses *v3.Responses) *v3.Response {
	if response, ok := responses.Codes.Get("200"); ok {
		return response
	}
	for code, response := range responses.Codes.FromOldest() {
		if strings.HasPrefix(code, "2") {
			return response
		}
	}
	return nil
}

// renderExample turns an example YAML node into response body text. String
// scalars are taken verbatim; anything else is re-encoded as JSON.
func renderExample(node *yaml.Node) (string, bool) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!str" {
		return node.Value, true
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return "", false
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", false
	}
	return string(encoded), true
}

// responseTime reads the x-mock-response-time extension in milliseconds,
// falling back to the configured default.
func responseTime(operation *v3.Operation, fallback time.Duration) time.Duration {
	if operation.Extensions == nil {
		return fallback
	}
	node, ok := operation.Extensions.Get(extResponseTime)
	if !ok || node == nil {
		return fallback
	}

	var ms int64
	if err := node.Decode(&ms); err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

// joinURL joins the base URL and path with exactly one slash between them.
func joinURL(base, path string) string {
	if base == "" {
		return path
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(base, "/"), strings.TrimPrefix(path, "/"))
}
