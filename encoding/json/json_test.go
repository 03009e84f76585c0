package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseObject(t *testing.T) {
	data := []byte(`{"name":"bob","age":30,"active":true,"tags":["a","b"],"note":null}`)
	actual, err := ParseObject(data)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, "bob", actual["name"])
	assert.EqualValues(t, 30, actual["age"])
	assert.Equal(t, true, actual["active"])
	assert.Len(t, actual["tags"], 2)
	assert.Nil(t, actual["note"])

	_, err = ParseObject([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestParseSlice(t *testing.T) {
	actual, err := ParseSlice([]byte(`[1,"a",false]`))
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, actual, 3)
	assert.Equal(t, "a", actual[1])

	_, err = ParseSlice([]byte(`{"k":1}`))
	assert.Error(t, err)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"name":`))
	assert.Error(t, err)
}

func TestParseNested(t *testing.T) {
	data := []byte(`{"outer":{"inner":[{"k":1}]}}`)
	actual, err := ParseObject(data)
	if !assert.NoError(t, err) {
		return
	}
	outer, ok := actual["outer"].(map[string]interface{})
	if assert.True(t, ok) {
		assert.Len(t, outer["inner"], 1)
	}
}
