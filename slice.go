package coerce

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/viant/coerce/visitor"
)

// AsSlice fails with ErrInvalidArgument when value is neither a sequence,
// a lazy sequence, nor a zero-argument sequence generator.
func AsSlice(value any) ([]any, error) {
	if result := TrySlice(value); result != nil {
		return result, nil
	}
	return nil, invalidArgument("slice", value)
}

// TrySlice drains sequence sources eagerly: a generator callable is invoked
// first, a lazy sequence is collected, a native slice or array is boxed
// element by element. Anything else yields nil.
func TrySlice(value any) []any {
	switch actual := value.(type) {
	case nil:
		return nil
	case []any:
		return actual
	case iter.Seq[any]:
		return collectSeq(actual)
	case func() iter.Seq[any]:
		return collectSeq(actual())
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Slice && rValue.Kind() != reflect.Array {
		return nil
	}
	drain, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		return nil
	}
	result := make([]any, 0, rValue.Len())
	_ = drain(func(_ int, element any) (bool, error) {
		result = append(result, element)
		return true, nil
	})
	return result
}

// ToSlice wraps an unconvertible value in a single element sequence; nil
// becomes an empty one.
func ToSlice(value any) []any {
	if value == nil {
		return []any{}
	}
	if result := TrySlice(value); result != nil {
		return result
	}
	return []any{value}
}

// AsIter fails with ErrInvalidArgument when value is not iterable.
func AsIter(value any) (iter.Seq[any], error) {
	if result := TryIter(value); result != nil {
		return result, nil
	}
	return nil, invalidArgument("iterable", value)
}

// TryIter returns the lazy form of value: an already lazy sequence passes
// through un-drained, a generator callable is invoked to obtain its
// sequence, slices and maps are wrapped without copying.
func TryIter(value any) iter.Seq[any] {
	switch actual := value.(type) {
	case nil:
		return nil
	case iter.Seq[any]:
		return actual
	case func() iter.Seq[any]:
		return actual()
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
		return func(yield func(any) bool) {
			for i := 0; i < rValue.Len(); i++ {
				if !yield(rValue.Index(i).Interface()) {
					return
				}
			}
		}
	case reflect.Map:
		return func(yield func(any) bool) {
			for _, key := range rValue.MapKeys() {
				if !yield(rValue.MapIndex(key).Interface()) {
					return
				}
			}
		}
	}
	return nil
}

// ToIter wraps an unconvertible value in a single element sequence; nil
// becomes an empty one.
func ToIter(value any) iter.Seq[any] {
	if value == nil {
		return func(yield func(any) bool) {}
	}
	if result := TryIter(value); result != nil {
		return result
	}
	return func(yield func(any) bool) {
		yield(value)
	}
}

// IterToSlice drains an iterable eagerly. A callable that is not a
// zero-argument sequence generator is rejected with ErrInvalidArgument.
func IterToSlice(value any) ([]any, error) {
	if value == nil {
		return nil, invalidArgument("iterable", value)
	}
	if reflect.TypeOf(value).Kind() == reflect.Func {
		switch value.(type) {
		case iter.Seq[any], func() iter.Seq[any]:
		default:
			return nil, fmt.Errorf("%w: callable %T is not a sequence generator", ErrInvalidArgument, value)
		}
	}
	result := TryIter(value)
	if result == nil {
		return nil, invalidArgument("iterable", value)
	}
	return collectSeq(result), nil
}

func collectSeq(seq iter.Seq[any]) []any {
	result := []any{}
	for element := range seq {
		result = append(result, element)
	}
	return result
}
