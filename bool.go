package coerce

import (
	"reflect"
	"strings"
)

var falsyWords = map[string]bool{"": true, "0": true, "false": true, "no": true, "off": true}
var truthyWords = map[string]bool{"1": true, "true": true, "yes": true, "on": true}

// ToBool never fails: nil is false, strings follow the falsy word list
// case-insensitively, every other value uses native truthiness. String
// kinds are matched by kind, so named string types follow the word list
// too.
func ToBool(value any) bool {
	switch actual := value.(type) {
	case nil:
		return false
	case bool:
		return actual
	case string:
		return !falsyWords[strings.ToLower(actual)]
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.String {
		return !falsyWords[strings.ToLower(rValue.String())]
	}
	return truthy(value)
}

// TryBool is ToBool with the empty string treated as an absent signal
// rather than false.
func TryBool(value any) *bool {
	if rValue := reflect.ValueOf(value); rValue.Kind() == reflect.String && rValue.String() == "" {
		return nil
	}
	result := ToBool(value)
	return &result
}

// ParseBool recognizes only the conventional truthy words {1,true,yes,on}
// and falsy words {0,false,no,off}; numeric values use a nonzero test.
// Unlike ToBool, an unrecognized string is unknown, not true.
func ParseBool(value any) *bool {
	switch actual := value.(type) {
	case nil:
		return nil
	case bool:
		result := actual
		return &result
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.String {
		word := strings.ToLower(rValue.String())
		if truthyWords[word] {
			result := true
			return &result
		}
		if word != "" && falsyWords[word] {
			result := false
			return &result
		}
		return nil
	}
	if isNumeric(rValue) {
		result := !rValue.IsZero()
		return &result
	}
	return nil
}
