package visitor

import (
	"fmt"
	"reflect"
)

// MapVisitor holds a map of type map[K]E and implements the Visitor
// interface.
type MapVisitor[K comparable, E any] struct {
	data map[K]E
}

// MapVisitorOf creates a new MapVisitor from a typed map.
func MapVisitorOf[K comparable, E any](aMap map[K]E) Visitor[K, E] {
	visitor := &MapVisitor[K, E]{data: aMap}
	return visitor.Visit
}

// Visit iterates over the map and calls f for each (key, element).
func (v *MapVisitor[K, E]) Visit(f func(key K, element E) (bool, error)) error {
	for k, e := range v.data {
		continueVisit, err := f(k, e)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// AnyMapVisitorOf dynamically creates a map visitor from any map value.
// The common loosely-typed shapes avoid reflection.
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return anyTypedMapVisitorOf[string, interface{}](actual), nil
	case map[string]string:
		return anyTypedMapVisitorOf[string, string](actual), nil
	case map[string]int:
		return anyTypedMapVisitorOf[string, int](actual), nil
	case map[string]bool:
		return anyTypedMapVisitorOf[string, bool](actual), nil
	case map[int]interface{}:
		return anyTypedMapVisitorOf[int, interface{}](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

func anyTypedMapVisitorOf[K comparable, V any](aMap map[K]V) Visitor[any, any] {
	return func(f func(key any, element any) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyMapVisitor iterates an arbitrary map via reflection.
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map via reflection and calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key any, element any) (bool, error)) error {
	for _, key := range v.data.MapKeys() {
		continueVisit, err := f(key.Interface(), v.data.MapIndex(key).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
