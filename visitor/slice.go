package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitor implements Visitor[int, E] for a typed slice; the key is
// the element index.
type SliceVisitor[E any] struct {
	data []E
}

// SliceVisitorOf creates a Visitor for a typed slice.
func SliceVisitorOf[E any](slice []E) Visitor[int, E] {
	visitor := &SliceVisitor[E]{data: slice}
	return visitor.Visit
}

// Visit iterates over the slice, calling f for each (index, element).
func (v *SliceVisitor[E]) Visit(f func(key int, element E) (bool, error)) error {
	for i, elem := range v.data {
		continueVisit, err := f(i, elem)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// AnySliceVisitorOf dynamically creates a slice visitor from any slice or
// array value. The common loosely-typed shapes avoid reflection.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return anyTypedSliceVisitorOf[interface{}](actual), nil
	case []string:
		return anyTypedSliceVisitorOf[string](actual), nil
	case []int:
		return anyTypedSliceVisitorOf[int](actual), nil
	case []float64:
		return anyTypedSliceVisitorOf[float64](actual), nil
	case []bool:
		return anyTypedSliceVisitorOf[bool](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &AnySliceVisitor{data: val}
	return visitor.Visit, nil
}

func anyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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

// AnySliceVisitor iterates an arbitrary slice or array via reflection.
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates via reflection, calling f for each (index, element).
func (v *AnySliceVisitor) Visit(f func(key int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
