package nonempty_interface

import "unsafe"

type iface struct {
	tab  unsafe.Pointer
	data unsafe.Pointer
}

func ItabWord(err error) unsafe.Pointer {
	return (*iface)(unsafe.Pointer(&err)).tab // want "interface header reinterpretation cast"
}
