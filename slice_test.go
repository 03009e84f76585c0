package coerce

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func counting(values ...any) (func() iter.Seq[any], *int) {
	invocations := 0
	generator := func() iter.Seq[any] {
		invocations++
		return func(yield func(any) bool) {
			for _, value := range values {
				if !yield(value) {
					return
				}
			}
		}
	}
	return generator, &invocations
}

func TestTrySlice(t *testing.T) {
	generator, _ := counting(1, 2, 3)

	testCases := []struct {
		name     string
		value    any
		expected []any
	}{
		{"boxed slice", []any{1, "a"}, []any{1, "a"}},
		{"typed slice", []int{1, 2, 3}, []any{1, 2, 3}},
		{"array", [2]string{"a", "b"}, []any{"a", "b"}},
		{"generator callable", generator, []any{1, 2, 3}},
		{"lazy sequence", generator(), []any{1, 2, 3}},
		{"empty slice", []int{}, []any{}},
		{"nil", nil, nil},
		{"scalar", 5, nil},
		{"string", "abc", nil},
		{"map", map[string]any{"k": 1}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TrySlice(tc.value))
		})
	}
}

func TestAsSlice(t *testing.T) {
	actual, err := AsSlice([]string{"a"})
	assert.NoError(t, err)
	assert.Equal(t, []any{"a"}, actual)

	_, err = AsSlice(5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToSlice(t *testing.T) {
	assert.Equal(t, []any{}, ToSlice(nil))
	assert.Equal(t, []any{5}, ToSlice(5))
	assert.Equal(t, []any{1, 2}, ToSlice([]int{1, 2}))
}

func TestTryIterStaysLazy(t *testing.T) {
	generator, invocations := counting("a", "b")

	seq := TryIter(generator)
	if !assert.NotNil(t, seq) {
		return
	}
	// obtaining the sequence invokes the generator once, draining happens
	// only when the caller ranges over it
	assert.Equal(t, 1, *invocations)
	assert.Equal(t, []any{"a", "b"}, collectSeq(seq))

	lazy := TryIter([]int{1, 2})
	assert.Equal(t, []any{1, 2}, collectSeq(lazy))

	values := TryIter(map[string]int{"k": 7})
	assert.Equal(t, []any{7}, collectSeq(values))

	assert.Nil(t, TryIter(5))
	assert.Nil(t, TryIter(nil))
}

func TestToIter(t *testing.T) {
	assert.Equal(t, []any{}, collectSeq(ToIter(nil)))
	assert.Equal(t, []any{5}, collectSeq(ToIter(5)))
}

func TestIterToSlice(t *testing.T) {
	generator, _ := counting(1, 2, 3)

	actual, err := IterToSlice(generator)
	assert.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, actual)

	actual, err = IterToSlice([]string{"a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, actual)

	_, err = IterToSlice(func() int { return 1 })
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = IterToSlice(5)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = IterToSlice(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
