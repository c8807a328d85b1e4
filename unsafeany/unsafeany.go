package unsafeany

import "unsafe"

// An Any is an immutable type-erased reference: a view of an interface
// value's two-word header. It borrows the storage the interface box points
// at, it does not copy it. Copies of an Any alias the same storage.
//
// Holding an Any (or any pointer downcast from it) keeps the underlying
// box reachable, so a downcast pointer never outlives its storage.
type Any struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// A Mut is a mutable type-erased reference. The representation is identical
// to Any; the difference is contract, not layout: the holder of a Mut claims
// exclusive access to the underlying storage for as long as it, or any
// pointer downcast from it, is in use.
type Mut struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// Erase returns an immutable erased reference to the value stored in v.
//
// Passing a concrete value boxes it at the call site, so the returned Any
// refers to that box, not to the caller's variable. Passing an existing
// interface value shares its box.
func Erase(v interface{}) Any {
	h := header(&v)
	return Any{typ: h.typ, data: h.data}
}

// EraseMut returns a mutable erased reference to the value stored in v.
//
// The runtime boxes some small values (booleans, bytes, small integers) in
// shared static storage. Writing through a Mut erased from such a value
// corrupts every interface value boxing it. Only erase values you
// allocated yourself: structs, arrays, or the targets of your own pointers.
func EraseMut(v interface{}) Mut {
	h := header(&v)
	return Mut{typ: h.typ, data: h.data}
}

// Data returns the data word of the erased reference: the address of the
// underlying storage, stripped of its type.
func (a Any) Data() unsafe.Pointer { return a.data }

// Data returns the data word of the erased reference.
func (m Mut) Data() unsafe.Pointer { return m.data }

// TypeID returns the type descriptor's address, a runtime-unique identity
// token for the erased value's concrete type. Two erased references have
// equal TypeIDs exactly when their concrete types are identical.
func (a Any) TypeID() uintptr { return uintptr(a.typ) }

// TypeID returns the type descriptor's address.
func (m Mut) TypeID() uintptr { return uintptr(m.typ) }

// Is reports whether a and other erase values of the same concrete type.
func (a Any) Is(other Any) bool { return a.typ == other.typ }

// Ref reborrows the mutable erased reference as an immutable one.
func (m Mut) Ref() Any { return Any(m) }

// IsType reports whether the erased value's concrete type is exactly T.
// It is the check to perform once, up front, before a series of unchecked
// downcasts; the unchecked functions themselves never perform it.
func IsType[T any](a Any) bool {
	var v interface{} = *new(T)
	return a.typ == header(&v).typ
}
