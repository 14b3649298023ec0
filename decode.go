package mockhttp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Decoder converts a raw response body into a typed value. Decoders are
// supplied by the caller at request construction time and may fail; a
// failure surfaces as a BadPayloadError from resolution.
type Decoder[T any] func(body string) (T, error)

// JSON returns a decoder that unmarshals the body as JSON into a value of
// type T.
func JSON[T any]() Decoder[T] {
	return func(body string) (T, error) {
		var v T
		if err := json.Unmarshal([]byte(body), &v); err != nil {
			return v, err
		}
		return v, nil
	}
}

// String returns a decoder that passes the body through verbatim. It never
// fails.
func String() Decoder[string] {
	return func(body string) (string, error) {
		return body, nil
	}
}

// XMLQuery returns a decoder that parses the body as XML and returns the
// inner text of the first node selected by the given XPath expression. A
// body that does not parse, an invalid expression, or an expression that
// selects nothing are all decode failures.
func XMLQuery(expr string) Decoder[string] {
	return func(body string) (string, error) {
		doc, err := xmlquery.Parse(strings.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("failed to parse XML: %w", err)
		}

		node, err := xmlquery.Query(doc, expr)
		if err != nil {
			return "", fmt.Errorf("invalid XPath expression %q: %w", expr, err)
		}
		if node == nil {
			return "", fmt.Errorf("no node matched XPath expression %q", expr)
		}

		return node.InnerText(), nil
	}
}
