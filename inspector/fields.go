package inspector

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/modern-go/reflect2"
)

type FieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
}

// FieldCache memoizes the exported fields of configuration and behavior
// types. Embedded structs are skipped.
type FieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func NewFieldCache() *FieldCache {
	return &FieldCache{
		fields: make(map[reflect.Type][]FieldInfo),
	}
}

func (fc *FieldCache) GetFields(t reflect.Type) []FieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if cached, ok := fc.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Anonymous {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: field.Type.Kind() == reflect.Ptr,
			})
		}
	}

	fc.fields[t] = fields
	return fields
}

var globalFieldCache = NewFieldCache()

// FieldRow is one exported field of a value, flattened to a dotted path.
type FieldRow struct {
	Path  string
	Value string
}

// DescribeFields flattens the exported fields of v. Nested structs are
// expanded, slices and maps are summarized by their length.
func DescribeFields(v any) []FieldRow {
	if reflect2.IsNil(v) {
		return nil
	}
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	return describeValue("", val, nil)
}

func describeValue(prefix string, val reflect.Value, rows []FieldRow) []FieldRow {
	for _, f := range globalFieldCache.GetFields(val.Type()) {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		fv := val.Field(f.Index)
		if f.IsPointer {
			if fv.IsNil() {
				rows = append(rows, FieldRow{Path: path, Value: "nil"})
				continue
			}
			fv = fv.Elem()
		}
		switch fv.Kind() {
		case reflect.Struct:
			rows = describeValue(path, fv, rows)
		case reflect.Slice:
			rows = append(rows, FieldRow{Path: path, Value: fmt.Sprintf("[%d items]", fv.Len())})
		case reflect.Map:
			rows = append(rows, FieldRow{Path: path, Value: fmt.Sprintf("map[%d items]", fv.Len())})
		default:
			rows = append(rows, FieldRow{Path: path, Value: fmt.Sprintf("%v", fv.Interface())})
		}
	}
	return rows
}
