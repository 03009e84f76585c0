package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryObject(t *testing.T) {
	source := &account{ID: 1}
	assert.Same(t, source, TryObject(source))

	byValue := account{ID: 2}
	assert.Equal(t, byValue, TryObject(byValue))

	generic := map[string]any{"k": 1}
	actual := TryObject(generic)
	if record, ok := actual.(map[string]any); assert.True(t, ok) {
		record["added"] = 2
		assert.Equal(t, 2, generic["added"])
	}

	// non objects route through record coercion
	assert.Equal(t, map[string]any{"1": "a"}, TryObject(map[int]string{1: "a"}))
	assert.Nil(t, TryObject(5))
	assert.Nil(t, TryObject(nil))
}

func TestAsObject(t *testing.T) {
	_, err := AsObject(5)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	source := &account{}
	actual, err := AsObject(source)
	assert.NoError(t, err)
	assert.Same(t, source, actual)
}

func TestToObject(t *testing.T) {
	assert.Equal(t, map[string]any{}, ToObject(5))
	assert.Equal(t, map[string]any{}, ToObject(nil))
}
