package type_assertion

func Downcast(v interface{}) (int, bool) {
	n, ok := v.(int) // ok
	return n, ok
}
