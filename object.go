package coerce

import "reflect"

// AsObject passes an existing object through unchanged and routes anything
// else through record coercion.
func AsObject(value any) (any, error) {
	if result := TryObject(value); result != nil {
		return result, nil
	}
	return nil, invalidArgument("object", value)
}

// TryObject returns the identical reference for a struct, a non-nil
// pointer to struct, or a generic record; other values convert through
// TryRecord.
func TryObject(value any) any {
	if isObject(value) {
		return value
	}
	if record := TryRecord(value); record != nil {
		return record
	}
	return nil
}

// ToObject defaults to an empty record.
func ToObject(value any) any {
	if result := TryObject(value); result != nil {
		return result
	}
	return map[string]any{}
}

func isObject(value any) bool {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return !rValue.IsNil() && rValue.Elem().Kind() == reflect.Struct
	case reflect.Map:
		_, ok := value.(map[string]any)
		return ok
	}
	return false
}
