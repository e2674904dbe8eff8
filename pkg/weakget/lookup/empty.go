package lookup

import "reflect"

// IsEmpty reports whether v is the empty marker: the nil interface or a nil
// pointer, map, func, chan, interface or unsafe pointer. A nil slice is a
// valid empty sequence and is not empty in this sense.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	return isNilValue(reflect.ValueOf(v))
}

func isNilValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	case reflect.Invalid:
		return true
	}
	return false
}

// indirect follows non-nil pointers and interfaces down to the first
// concrete value.
func indirect(rv reflect.Value) reflect.Value {
	for (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}
