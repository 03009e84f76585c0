package coerce

import (
	"math"
	"reflect"

	"github.com/spf13/cast"
)

// AsFloat fails with ErrInvalidArgument when value is not numeric.
func AsFloat(value any) (float64, error) {
	if result := TryFloat(value); result != nil {
		return *result, nil
	}
	return 0, invalidArgument("float", value)
}

// TryFloat mirrors TryInt without enumeration support and without
// truncation.
func TryFloat(value any) *float64 {
	return tryFloat64(value)
}

func tryFloat64(value any) *float64 {
	switch actual := value.(type) {
	case nil:
		return nil
	case bool:
		result := float64(0)
		if actual {
			result = 1
		}
		return &result
	case float64:
		return &actual
	}
	if result, ok := numericFloat(reflect.ValueOf(value)); ok {
		return &result
	}
	if text := TryString(value); text != nil {
		if result, err := cast.ToFloat64E(*text); err == nil {
			return &result
		}
	}
	return nil
}

// ToFloat collapses unconvertible values to 0.
func ToFloat(value any) float64 {
	if result := TryFloat(value); result != nil {
		return *result
	}
	return 0
}

// ClampFloat coerces via AsFloat and clamps to the optional [min, max]
// bounds, max before min. A nil value passes through as nil.
func ClampFloat(value any, min, max *float64) (*float64, error) {
	if value == nil {
		return nil, nil
	}
	result, err := AsFloat(value)
	if err != nil {
		return nil, err
	}
	if max != nil && result > *max {
		result = *max
	}
	if min != nil && result < *min {
		result = *min
	}
	return &result, nil
}

// ClampDegrees normalizes a coerced angle into the half-open [0,360) range
// with a single modulo, then clamps to the optional bounds, max before min.
// A nil value passes through as nil.
func ClampDegrees(value any, min, max *float64) (*float64, error) {
	if value == nil {
		return nil, nil
	}
	result, err := AsFloat(value)
	if err != nil {
		return nil, err
	}
	result = math.Mod(result, 360)
	if result < 0 {
		result += 360
	}
	if max != nil && result > *max {
		result = *max
	}
	if min != nil && result < *min {
		result = *min
	}
	return &result, nil
}
