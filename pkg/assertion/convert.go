package assertion

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

var (
	// ErrIncompatible reports that a value's type can never be
	// converted into the target type.
	ErrIncompatible = errors.New("incompatible types")

	// ErrNotRepresentable reports that a numeric value falls
	// outside the range or precision of the target type.
	ErrNotRepresentable = errors.New("value not representable")
)

const (
	twoTo63 = 1 << 63
	twoTo64 = 1 << 64
)

// Convert converts v into T. Assignable values pass through; nil
// becomes the zero value of a nilable T; values of the same kind
// use Go's conversion rules (named types); numeric values cross
// numeric kinds only when the exact value is representable in T.
//
// The returned error wraps ErrIncompatible or ErrNotRepresentable.
func Convert[T any](v any) (T, error) {
	var zero T
	if tv, ok := v.(T); ok {
		return tv, nil
	}

	target := reflect.TypeOf((*T)(nil)).Elem()
	if v == nil {
		if nilable(target.Kind()) {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: nil as %s", ErrIncompatible, target)
	}

	out, err := convertValue(reflect.ValueOf(v), target)
	if err != nil {
		return zero, err
	}
	return out.Interface().(T), nil
}

func convertValue(rv reflect.Value, target reflect.Type) (reflect.Value, error) {
	switch {
	case isNumeric(rv.Kind()) && isNumeric(target.Kind()):
		return convertNumber(rv, target)
	case rv.Kind() == target.Kind() && rv.Type().ConvertibleTo(target):
		return rv.Convert(target), nil
	default:
		return reflect.Value{}, fmt.Errorf(
			"%w: %s as %s", ErrIncompatible, rv.Type(), target,
		)
	}
}

func convertNumber(rv reflect.Value, target reflect.Type) (reflect.Value, error) {
	out := reflect.New(target).Elem()
	overflow := func() (reflect.Value, error) {
		return reflect.Value{}, fmt.Errorf(
			"%w: %v (%s) as %s",
			ErrNotRepresentable, rv.Interface(), rv.Type(), target,
		)
	}

	switch {
	case isInt(rv.Kind()):
		i := rv.Int()
		switch {
		case isInt(target.Kind()):
			if out.OverflowInt(i) {
				return overflow()
			}
			out.SetInt(i)
		case isUint(target.Kind()):
			if i < 0 || out.OverflowUint(uint64(i)) {
				return overflow()
			}
			out.SetUint(uint64(i))
		default:
			f := float64(i)
			if f >= twoTo63 || int64(f) != i || !exactFloat(out, f) {
				return overflow()
			}
			out.SetFloat(f)
		}

	case isUint(rv.Kind()):
		u := rv.Uint()
		switch {
		case isInt(target.Kind()):
			if u > math.MaxInt64 || out.OverflowInt(int64(u)) {
				return overflow()
			}
			out.SetInt(int64(u))
		case isUint(target.Kind()):
			if out.OverflowUint(u) {
				return overflow()
			}
			out.SetUint(u)
		default:
			f := float64(u)
			if f >= twoTo64 || uint64(f) != u || !exactFloat(out, f) {
				return overflow()
			}
			out.SetFloat(f)
		}

	default:
		f := rv.Float()
		switch {
		case isInt(target.Kind()):
			if !integral(f) || f < -twoTo63 || f >= twoTo63 {
				return overflow()
			}
			if out.OverflowInt(int64(f)) {
				return overflow()
			}
			out.SetInt(int64(f))
		case isUint(target.Kind()):
			if !integral(f) || f < 0 || f >= twoTo64 {
				return overflow()
			}
			if out.OverflowUint(uint64(f)) {
				return overflow()
			}
			out.SetUint(uint64(f))
		default:
			if !exactFloat(out, f) {
				return overflow()
			}
			out.SetFloat(f)
		}
	}

	return out, nil
}

// exactFloat reports whether f survives a round trip through
// the float kind of out. NaN and infinities are carried over.
func exactFloat(out reflect.Value, f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return true
	}
	if out.Kind() == reflect.Float32 {
		return !out.OverflowFloat(f) && float64(float32(f)) == f
	}
	return true
}

func integral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumeric(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || k == reflect.Float32 || k == reflect.Float64
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func:
		return true
	}
	return false
}
