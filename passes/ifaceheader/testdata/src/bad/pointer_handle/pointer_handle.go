package pointer_handle

import "unsafe"

func DescriptorWord(p *interface{}) uintptr {
	return *(*uintptr)(unsafe.Pointer(p)) // want "interface header reinterpretation cast"
}
