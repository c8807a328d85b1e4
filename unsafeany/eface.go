package unsafeany

import "unsafe"

// emptyInterface mirrors the runtime representation of an interface{}
// value: a pointer to the type descriptor followed by the data pointer.
// The descriptor is only ever compared or discarded here, never
// dereferenced.
type emptyInterface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// header reinterprets an interface value in place as its two-word
// representation.
func header(v *interface{}) *emptyInterface {
	return (*emptyInterface)(unsafe.Pointer(v))
}
