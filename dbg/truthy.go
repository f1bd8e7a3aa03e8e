package dbg

import "reflect"

// Truthy reports whether v is worth printing as a return value: nil, empty
// and zero values are not.
//
// Pointers, interfaces and funcs are truthy when non-nil, whatever they
// point to. Strings, slices, maps, arrays and channels are truthy when they
// have a non-zero length. Anything else is truthy when it is not its type's
// zero value.
func Truthy(v interface{}) bool {
	return truthy(reflect.ValueOf(v))
}

func truthy(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.UnsafePointer:
		return !v.IsNil()
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return v.Len() > 0
	}
	return !v.IsZero()
}
