package coerce

import (
	"iter"
	"reflect"

	"github.com/viant/coerce/visitor"
)

// AsMap fails with ErrInvalidArgument when value is not a key/value source.
func AsMap(value any) (map[string]any, error) {
	if result := TryMap(value); result != nil {
		return result, nil
	}
	return nil, invalidArgument("map", value)
}

// TryMap drains key/value sources into a record shaped map. Keys are
// stringified; collisions across iteration steps follow last-write-wins.
func TryMap(value any) map[string]any {
	switch actual := value.(type) {
	case nil:
		return nil
	case map[string]any:
		return actual
	case iter.Seq2[string, any]:
		return collectSeq2(actual)
	case func() iter.Seq2[string, any]:
		return collectSeq2(actual())
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Map {
		return nil
	}
	drain, err := visitor.AnyMapVisitorOf(value)
	if err != nil {
		return nil
	}
	result := make(map[string]any, rValue.Len())
	_ = drain(func(key any, element any) (bool, error) {
		result[ToString(key)] = element
		return true, nil
	})
	return result
}

// ToMap collapses unconvertible values to an empty map.
func ToMap(value any) map[string]any {
	if result := TryMap(value); result != nil {
		return result
	}
	return map[string]any{}
}

func collectSeq2(seq iter.Seq2[string, any]) map[string]any {
	result := map[string]any{}
	for key, element := range seq {
		result[key] = element
	}
	return result
}
