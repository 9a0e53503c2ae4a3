package assertion

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// exportAll lets go-cmp descend into unexported struct fields,
// so values compare structurally regardless of visibility.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports whether a and b are structurally equal. Types
// with an Equal method are compared with it.
func Equal(a, b any) (equal bool) {
	defer func() {
		if r := recover(); r != nil {
			equal = reflect.DeepEqual(a, b)
		}
	}()
	return cmp.Equal(a, b, exportAll)
}

// Diff returns a human-readable report of the differences
// between expected and actual, or "" when none can be produced.
func Diff(expected, actual any) (diff string) {
	defer func() {
		if r := recover(); r != nil {
			diff = ""
		}
	}()
	return cmp.Diff(expected, actual, exportAll)
}
