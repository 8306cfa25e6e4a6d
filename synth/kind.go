// Package synth implements the generator factory: it maps a target type to
// a strategy that synthesizes a random value of that type, covering scalars,
// time values, UUIDs, pointers, collections and nested structs.
package synth

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// KindEnum classifies the directly synthesizable leaf types.
type KindEnum int

const (
	_ KindEnum = iota // zero is the invalid value

	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindTime
	KindDuration
	KindUUID

	// KindTotal is the total number of kinds defined.
	KindTotal = int(iota)
)

var kindNames = map[KindEnum]string{
	KindBool:     "bool",
	KindInt:      "int",
	KindInt8:     "int8",
	KindInt16:    "int16",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindUint:     "uint",
	KindUint8:    "uint8",
	KindUint16:   "uint16",
	KindUint32:   "uint32",
	KindUint64:   "uint64",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindString:   "string",
	KindTime:     "time.Time",
	KindDuration: "time.Duration",
	KindUUID:     "uuid.UUID",
}

func (k KindEnum) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "invalid"
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
	uuidType     = reflect.TypeOf(uuid.UUID{})
)

// FromReflectType classifies rtype as a synthesizable leaf kind, or zero
// when it is not one. Well-known concrete types are matched by identity
// before the reflect kind switch, so time.Duration does not land on
// KindInt64 and uuid.UUID does not land on the array path.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	case uuidType:
		return KindUUID
	}

	// Named scalar types classify by underlying kind.
	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.String:
		return KindString
	}
}
