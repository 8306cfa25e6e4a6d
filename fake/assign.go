package fake

import (
	"fmt"
	"reflect"
)

// Assign writes val into dst, converting between types with the same kind
// shape (named string to string, int32 to int64, and so on). It refuses the
// lossy cross-kind conversions reflect would otherwise allow, such as an
// integer converted into a one-rune string.
func Assign(dst reflect.Value, val any) error {
	if !dst.CanSet() {
		return fmt.Errorf("destination of type %s is not settable", dst.Type())
	}

	if val == nil {
		dst.SetZero()
		return nil
	}

	rv := reflect.ValueOf(val)
	if rv.Type().AssignableTo(dst.Type()) {
		dst.Set(rv)
		return nil
	}

	if convertible(rv.Type(), dst.Type()) {
		dst.Set(rv.Convert(dst.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign value of type %s to %s", rv.Type(), dst.Type())
}

func convertible(src, dst reflect.Type) bool {
	if !src.ConvertibleTo(dst) {
		return false
	}

	if src.Kind() == dst.Kind() {
		return true
	}

	return isNumeric(src.Kind()) && isNumeric(dst.Kind())
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
}
