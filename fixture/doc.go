/*
Package fixture loads endpoint declarations from YAML files into a
mockhttp.Registry.

A fixture file declares endpoints in match order, with response times in
milliseconds:

	endpoints:
	  - method: GET
	    url: http://example.com/api/books
	    response: '["Book one","Book two"]'
	    responseTime: 1000

Declarations are validated before the registry is built; duplicate
method/URL pairs are preserved so first-match-wins semantics carry through.
*/
package fixture
