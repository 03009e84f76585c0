// Package json ingests loosely-typed JSON documents into the value shapes
// the coerce package understands: map[string]interface{}, []interface{},
// numbers, strings, booleans and nil.
package json

import (
	"fmt"

	"github.com/francoispqt/gojay"
)

// Parse decodes an arbitrary JSON document into a coercible value.
func Parse(data []byte) (interface{}, error) {
	var result interface{}
	if err := gojay.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return result, nil
}

// ParseObject decodes a JSON document that must be an object.
func ParseObject(data []byte) (map[string]interface{}, error) {
	value, err := Parse(data)
	if err != nil {
		return nil, err
	}
	result, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expected JSON object, got %T", value)
	}
	return result, nil
}

// ParseSlice decodes a JSON document that must be an array.
func ParseSlice(data []byte) ([]interface{}, error) {
	value, err := Parse(data)
	if err != nil {
		return nil, err
	}
	result, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected JSON array, got %T", value)
	}
	return result, nil
}
