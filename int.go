package coerce

import "math"

// AsInt fails with ErrInvalidArgument when value is not numeric.
func AsInt(value any) (int, error) {
	if result := TryInt(value); result != nil {
		return *result, nil
	}
	return 0, invalidArgument("int", value)
}

// TryInt truncates toward zero, so "3.9" yields 3. Enumeration members
// reduce first; stringable values are stringified and parsed.
func TryInt(value any) *int {
	if member, ok := value.(Enum); ok {
		result := enumInt(member)
		return &result
	}
	parsed := tryFloat64(value)
	if parsed == nil || math.IsNaN(*parsed) {
		return nil
	}
	// float64(math.MaxInt64) rounds up to 2^63, one past the last int64
	if *parsed >= math.MaxInt64 || *parsed < math.MinInt64 {
		return nil
	}
	result := int(*parsed)
	return &result
}

// ToInt collapses unconvertible values to 0.
func ToInt(value any) int {
	if result := TryInt(value); result != nil {
		return *result
	}
	return 0
}

// ClampInt coerces via AsInt and clamps to the optional [min, max] bounds.
// Max is applied before min, so min wins when the bounds are inverted.
// A nil value passes through as nil.
func ClampInt(value any, min, max *int) (*int, error) {
	if value == nil {
		return nil, nil
	}
	result, err := AsInt(value)
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
