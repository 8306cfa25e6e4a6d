package synth

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"

	"autofaker/fake"
)

// Numeric values are kept in human-scale ranges; generated data is meant to
// look like fixture data, not to probe numeric boundaries.
const (
	maxInt   = 1_000_000
	maxFloat = 10_000.0
)

// scalarGenerator builds a generator for one leaf kind. The produced value
// is converted to t, so named scalar types come out exactly typed.
func (f *Factory) scalarGenerator(kind KindEnum, t reflect.Type) fake.Generator {
	return fake.GeneratorFunc(func(ctx *fake.Context) (any, error) {
		val, err := scalarValue(kind, ctx)
		if err != nil {
			return nil, err
		}

		rv := reflect.ValueOf(val)
		if rv.Type() != t && rv.Type().ConvertibleTo(t) {
			return rv.Convert(t).Interface(), nil
		}

		return val, nil
	})
}

func scalarValue(kind KindEnum, ctx *fake.Context) (any, error) {
	r := ctx.Rand

	switch kind {
	case KindBool:
		return r.IntN(2) == 1, nil
	case KindInt:
		return int(r.Int64N(maxInt)), nil
	case KindInt8:
		return int8(r.IntN(math.MaxInt8 + 1)), nil
	case KindInt16:
		return int16(r.IntN(math.MaxInt16 + 1)), nil
	case KindInt32:
		return int32(r.Int64N(maxInt)), nil
	case KindInt64:
		return r.Int64N(maxInt), nil
	case KindUint:
		return uint(r.Uint64N(maxInt)), nil
	case KindUint8:
		return uint8(r.IntN(math.MaxUint8 + 1)), nil
	case KindUint16:
		return uint16(r.IntN(math.MaxUint16 + 1)), nil
	case KindUint32:
		return uint32(r.Uint64N(maxInt)), nil
	case KindUint64:
		return r.Uint64N(maxInt), nil
	case KindFloat32:
		return float32(r.Float64() * maxFloat), nil
	case KindFloat64:
		return r.Float64() * maxFloat, nil
	case KindString:
		return textValue(ctx), nil
	case KindTime:
		// Sometime within the past year.
		offset := time.Duration(r.Int64N(int64(365 * 24 * time.Hour)))
		return time.Now().Add(-offset), nil
	case KindDuration:
		return time.Duration(r.Int64N(int64(72 * time.Hour))), nil
	case KindUUID:
		return uuid.New(), nil
	default:
		return nil, fmt.Errorf("%w: kind %s", ErrUnsupportedType, kind)
	}
}
