package concrete_cast

import "unsafe"

type PinkStruct struct {
	A uint8
	B int64
}

type VioletStruct struct {
	A uint8
	B int64
}

func Repoint(pink *PinkStruct) *VioletStruct {
	return (*VioletStruct)(unsafe.Pointer(pink)) // ok
}
