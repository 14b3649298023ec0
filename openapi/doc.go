/*
Package openapi builds a mockhttp.Registry from an OpenAPI 3 document.

Each operation that declares a success response with an application/json
example becomes one endpoint: the URL is the document's server URL (or an
override) joined with the path, and the canned body is the example rendered
as JSON. Simulated latency comes from the x-mock-response-time extension in
milliseconds, falling back to a configurable default. Operations without a
usable example are skipped.
*/
package openapi
