package coerce

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// AsString converts a stringable value, failing with ErrInvalidArgument
// otherwise.
func AsString(value any) (string, error) {
	if result := TryString(value); result != nil {
		return *result, nil
	}
	return "", invalidArgument("string", value)
}

// TryString returns nil when value is not stringable. Enumeration members
// reduce to their name, or to their payload when it is a string.
func TryString(value any) *string {
	switch actual := value.(type) {
	case nil:
		return nil
	case string:
		return &actual
	case []byte:
		result := string(actual)
		return &result
	case Enum:
		result := enumString(actual)
		return &result
	case fmt.Stringer:
		result := actual.String()
		return &result
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.String:
		result := rValue.String()
		return &result
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result := strconv.FormatInt(rValue.Int(), 10)
		return &result
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result := strconv.FormatUint(rValue.Uint(), 10)
		return &result
	case reflect.Float32:
		result := strconv.FormatFloat(rValue.Float(), 'f', -1, 32)
		return &result
	case reflect.Float64:
		result := strconv.FormatFloat(rValue.Float(), 'f', -1, 64)
		return &result
	}
	return nil
}

// TryNonEmptyString is TryString with empty results treated as absent.
func TryNonEmptyString(value any) *string {
	result := TryString(value)
	if result == nil || *result == "" {
		return nil
	}
	return result
}

// ToString renders a best effort string and never fails: booleans become
// the literals "true"/"false", sequences flatten recursively with the
// non-empty element renderings joined by a single space, anything
// unconvertible collapses to an empty string.
func ToString(value any) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case bool:
		if actual {
			return "true"
		}
		return "false"
	}
	if result := TryString(value); result != nil {
		return *result
	}
	if items := TrySlice(value); items != nil {
		var parts []string
		for _, item := range items {
			if part := ToString(item); part != "" {
				parts = append(parts, part)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// IsStringable reports whether value converts to a string without failure:
// a native string, a numeric value, or a value exposing a string form.
func IsStringable(value any) bool {
	return TryString(value) != nil
}
