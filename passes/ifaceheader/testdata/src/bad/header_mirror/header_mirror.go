package header_mirror

import "unsafe"

type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

func DataWord(v interface{}) unsafe.Pointer {
	h := (*eface)(unsafe.Pointer(&v)) // want "interface header reinterpretation cast"
	return h.data
}
