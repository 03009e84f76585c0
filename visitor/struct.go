package visitor

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

var schemaCache = NewSyncMap[schemaKey, *structSchema]()

type schemaKey struct {
	rType reflect.Type
	tags  string
}

// structSchema holds the xunsafe field accessors together with the
// resolved output name per field; an empty name marks an ignored field.
type structSchema struct {
	xStruct *xunsafe.Struct
	names   []string
}

// StructVisitor implements Visitor[string, interface{}] for struct
// snapshots: every declared field regardless of visibility, by resolved
// name, with its value captured at call time.
type StructVisitor struct {
	value  interface{}
	ptr    unsafe.Pointer
	schema *structSchema
}

// StructVisitorOf creates a StructVisitor from a struct value or a pointer
// to struct. Field names honor the supplied tag names in the tagly format
// tag convention: a name override is applied, ignored fields are skipped.
func StructVisitorOf(value interface{}, tagNames ...string) (Visitor[string, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got <nil>")
	}
	isPtr := false
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		isPtr = true
		structType = valueType.Elem()
		if structType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
	case reflect.Struct:
		structType = valueType
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	if !isPtr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	key := schemaKey{rType: structType, tags: strings.Join(tagNames, ",")}
	schema, ok := schemaCache.Get(key)
	if !ok {
		schema = newStructSchema(structType, tagNames)
		schemaCache.Put(key, schema)
	}
	visitor := &StructVisitor{
		value:  value,
		ptr:    xunsafe.AsPointer(value),
		schema: schema,
	}
	return visitor.Visit, nil
}

func newStructSchema(structType reflect.Type, tagNames []string) *structSchema {
	xStruct := xunsafe.NewStruct(structType)
	schema := &structSchema{xStruct: xStruct, names: make([]string, len(xStruct.Fields))}
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		name := field.Name
		if tag, _ := format.Parse(field.Tag, tagNames...); tag != nil {
			if tag.Ignore {
				name = ""
			} else if tag.Name != "" {
				name = tag.Name
			}
		}
		schema.names[i] = name
	}
	return schema
}

// Visit iterates over the struct fields, calling f with each resolved name
// and the field value captured at call time.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	for i := 0; i < len(w.schema.xStruct.Fields); i++ {
		name := w.schema.names[i]
		if name == "" {
			continue
		}
		xField := w.schema.xStruct.Fields[i]
		continueVisit, err := f(name, xField.Value(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
