package coerce

import (
	"reflect"

	"github.com/viant/coerce/visitor"
	"github.com/viant/tagly/format/text"
)

// AsRecord fails with ErrInvalidArgument when value is neither a map nor a
// struct.
func AsRecord(value any, opts ...Option) (map[string]any, error) {
	if result := TryRecord(value, opts...); result != nil {
		return result, nil
	}
	return nil, invalidArgument("record", value)
}

// TryRecord passes generic records through, converts other maps key by key
// and reflectively snapshots structs: every declared field regardless of
// visibility is copied by resolved name with its value at call time. The
// snapshot carries no live binding, methods or inherited behavior.
func TryRecord(value any, opts ...Option) map[string]any {
	switch actual := value.(type) {
	case nil:
		return nil
	case map[string]any:
		return actual
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Map:
		return TryMap(value)
	case reflect.Ptr:
		if rValue.IsNil() || rValue.Elem().Kind() != reflect.Struct {
			return nil
		}
	case reflect.Struct:
	default:
		return nil
	}
	options := newOptions(opts)
	snapshot, err := visitor.StructVisitorOf(value, options.tagName)
	if err != nil {
		return nil
	}
	var formatter *text.CaseFormatter
	if options.caseFormat != text.CaseFormatUndefined {
		formatter = text.CaseFormatUpperCamel.To(options.caseFormat)
	}
	result := map[string]any{}
	_ = snapshot(func(name string, element any) (bool, error) {
		if formatter != nil {
			name = formatter.Format(name)
		}
		result[name] = element
		return true, nil
	})
	return result
}

// ToRecord collapses unconvertible values to an empty record.
func ToRecord(value any, opts ...Option) map[string]any {
	if result := TryRecord(value, opts...); result != nil {
		return result
	}
	return map[string]any{}
}
