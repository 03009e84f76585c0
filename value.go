package coerce

import "reflect"

// numericFloat widens any numeric kind, named types included.
func numericFloat(rValue reflect.Value) (float64, bool) {
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rValue.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rValue.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rValue.Float(), true
	}
	return 0, false
}

func isNumeric(rValue reflect.Value) bool {
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// truthy applies native truthiness: empty collections and zero values are
// false, any struct or non-nil pointer is true.
func truthy(value any) bool {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Slice, reflect.Map, reflect.Array:
		return rValue.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rValue.IsNil()
	case reflect.Struct:
		return true
	}
	return !rValue.IsZero()
}
