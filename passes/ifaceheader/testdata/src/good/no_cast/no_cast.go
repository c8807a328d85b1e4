package no_cast

import "unsafe"

type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

func Zero() eface {
	return eface{} // ok
}
