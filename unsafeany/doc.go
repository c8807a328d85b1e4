// Package unsafeany provides unchecked downcasting from type-erased values
// to pointers of concrete types.
//
// A Go interface value is a two-word header: a type descriptor and a data
// pointer. A type assertion compares the stored descriptor against the
// descriptor of the requested type and fails gracefully on mismatch. The
// functions in this package skip that comparison entirely: they discard the
// descriptor word and reinterpret the data word as a pointer to the caller's
// chosen type. They are for callers who already know the concrete type
// through an invariant of their own, for example a map that only ever stores
// one type under a given key, or a hot path where the assertion has been
// performed once up front.
//
// Only call a *Unchecked function if you are absolutely certain of the
// concrete type. There is no error path: a wrong type is not detected, not
// reported, and not recoverable. The result is undefined behavior, ranging
// from silently misinterpreted values to misaligned access faults. Callers
// who are not certain should use a type assertion, or check once with Is or
// IsType and cache the result.
//
// The package performs no allocation, no locking, and no validation. Every
// function completes in constant time.
package unsafeany
