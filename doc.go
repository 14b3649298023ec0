/*
Package mockhttp provides a static, in-memory stand-in for an HTTP client.

Callers declare an ordered list of endpoints up front, each pairing a
method and exact URL with a canned response body and a simulated response
time. Requests issued through Send are matched against that list, the
stored body is decoded with a caller-supplied Decoder, and the outcome is
delivered to a callback after the endpoint's configured delay. No network
I/O is ever performed.

Matching is exact and first-match-wins: URLs are compared byte-for-byte
with no normalization, and when duplicate method/URL pairs are declared
the earliest declaration shadows the rest. Failures are returned as error
values, never panics; see ErrBadURL and ErrBadPayload for the taxonomy.
*/
package mockhttp
