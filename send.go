package mockhttp

import "time"

// Callback consumes the outcome of a sent request: the decoded value on
// success, or a non-nil error (BadURLError, BadPayloadError, or
// ErrNilDecoder) on failure.
type Callback[T any] func(value T, err error)

// Send resolves the request against the registry and schedules delivery of
// the outcome to the callback after the resolved delay.
//
// Delivery is always asynchronous with respect to the caller, even at zero
// delay, and fires exactly once no earlier than the delay. Once scheduled a
// delivery cannot be cancelled. For a single request delivery strictly
// follows resolution; across independent requests there is no ordering
// guarantee.
func Send[T any](registry *Registry, callback Callback[T], request Request[T]) {
	value, delay, err := Resolve(registry, request)
	deliver(delay, func() { callback(value, err) })
}

// deliver schedules fn on the runtime timer after delay.
func deliver(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}
