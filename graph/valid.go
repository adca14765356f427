package graph

import (
	"math"
	"reflect"
)

// Validatable lets a value type decide its own serializability, mirroring
// the isValidValue hook of the generated writer.
type Validatable interface {
	IsValidValue() bool
}

// DefaultValidValue is the validity predicate used by memstore and suitable
// for most stores: nil values, nil pointers, empty strings and NaN floats
// are not serializable; everything else is.
func DefaultValidValue(v any) bool {
	if v == nil {
		return false
	}
	if vv, ok := v.(Validatable); ok {
		return vv.IsValidValue()
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case float64:
		return !math.IsNaN(t)
	case float32:
		return !math.IsNaN(float64(t))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}
