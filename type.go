package coerce

import (
	"fmt"
	"reflect"
)

// AsType narrows value to T without constructing or converting anything:
// the returned value is the identical reference when the check passes.
func AsType[T any](value any) (T, error) {
	if result, ok := value.(T); ok {
		return result, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %T does not satisfy %s", ErrInvalidArgument, value, typeName[T]())
}

// TryType is the comma-ok form of AsType.
func TryType[T any](value any) (T, bool) {
	result, ok := value.(T)
	return result, ok
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
