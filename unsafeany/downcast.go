package unsafeany

// RefUnchecked returns a pointer to the erased value, assuming its concrete
// type is T.
//
// The assumption is not checked. If the erased value is not exactly a T,
// with T's size and alignment, the returned pointer is a misinterpretation
// of the storage and using it is undefined behavior. Only call this if you
// are certain of the type; otherwise use a type assertion, or IsType first.
//
// The pointer aliases the erased value's storage. Treat it as read-only:
// the input is an immutable reference and other views of the same storage
// may be read concurrently.
func RefUnchecked[T any](a Any) *T {
	return (*T)(a.data)
}

// MutUnchecked returns a pointer to the erased value for writing, assuming
// its concrete type is T.
//
// The assumption is not checked; see RefUnchecked. The caller additionally
// guarantees exclusive access: no other reference, erased or typed, may
// touch the same storage while the returned pointer is in use.
func MutUnchecked[T any](m Mut) *T {
	return (*T)(m.data)
}

// PointerUnchecked is the pointer-level form of RefUnchecked, for contexts
// that hold a raw, non-owning handle to an erased reference. a must be
// non-nil and point at a live Any; the type assumption is not checked.
func PointerUnchecked[T any](a *Any) *T {
	return (*T)(a.data)
}

// PointerMutUnchecked is the pointer-level form of MutUnchecked. m must be
// non-nil and point at a live Mut; the type assumption is not checked.
func PointerMutUnchecked[T any](m *Mut) *T {
	return (*T)(m.data)
}

// TakeUnchecked returns a copy of the erased value, assuming its concrete
// type is T. The assumption is not checked; a wrong T reads T's size in
// bytes from the underlying storage, which is undefined behavior when the
// true type is smaller.
func TakeUnchecked[T any](a Any) T {
	return *(*T)(a.data)
}
