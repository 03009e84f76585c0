package coerce

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryMap(t *testing.T) {
	entries := func(yield func(string, any) bool) {
		if !yield("k", 1) {
			return
		}
		if !yield("other", "x") {
			return
		}
		yield("k", 2)
	}

	testCases := []struct {
		name     string
		value    any
		expected map[string]any
	}{
		{"generic record", map[string]any{"k": 1}, map[string]any{"k": 1}},
		{"typed map", map[string]int{"a": 1}, map[string]any{"a": 1}},
		{"non string keys stringified", map[int]string{1: "a"}, map[string]any{"1": "a"}},
		{"lazy entries last write wins", iter.Seq2[string, any](entries), map[string]any{"k": 2, "other": "x"}},
		{"generator callable", func() iter.Seq2[string, any] { return entries }, map[string]any{"k": 2, "other": "x"}},
		{"nil", nil, nil},
		{"scalar", 5, nil},
		{"slice", []any{1}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TryMap(tc.value))
		})
	}
}

func TestAsMap(t *testing.T) {
	actual, err := AsMap(map[string]string{"k": "v"})
	assert.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v"}, actual)

	_, err = AsMap("abc")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToMap(t *testing.T) {
	assert.Equal(t, map[string]any{}, ToMap(nil))
	assert.Equal(t, map[string]any{}, ToMap(5))
	assert.Equal(t, map[string]any{"k": 1}, ToMap(map[string]any{"k": 1}))
}
