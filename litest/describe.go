package litest

import (
	"fmt"
	"reflect"
	"strings"
)

// notAvailable is the placeholder for values that cannot be described and for
// missing expression strings and panic messages.
const notAvailable = "N/A"

// Describe produces a textual description of an arbitrary value, for use in
// assertion output. The fallback chain is fixed: a value that can render
// itself (fmt.Stringer, then error) is asked to; otherwise a slice or array
// is rendered as a brace-delimited list of its elements' descriptions;
// otherwise plain scalar kinds render via fmt; anything else degrades to the
// "N/A" placeholder. Describe never panics, even if a String method does.
func Describe(value interface{}) (desc string) {
	defer func() {
		if r := recover(); r != nil {
			desc = notAvailable
		}
	}()

	if value == nil {
		return notAvailable
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	if err, ok := value.(error); ok {
		return err.Error()
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		var elements []string
		for i := 0; i < v.Len(); i++ {
			elements = append(elements, Describe(v.Index(i).Interface()))
		}
		return "{ " + strings.Join(elements, ", ") + " }"
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprintf("%v", value)
	}
	return notAvailable
}
