package value

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
)

// AsString coerces a value to its string form. String-like primitives coerce
// directly; structured values, errors, blocks, binary data, and the stream
// markers do not.
func AsString(v Value) (string, *errors.ShellError) {
	if v.Value.Kind != ValuePrimitive {
		return "", errors.CoerceError("a string", v.Value.TypeName(), v.Tag)
	}

	p := v.Value.Primitive
	switch p.Kind {
	case KindString, KindPattern, KindFilePath:
		return p.Str, nil
	case KindInt, KindDecimal, KindBytes, KindBoolean, KindDate, KindDuration:
		return p.String(), nil
	default:
		return "", errors.CoerceError("a string", p.Kind.TypeName(), v.Tag)
	}
}

// ParseDate parses a freeform date/time string into a Date primitive.
// Accepts most common formats; the result is normalized to UTC.
func ParseDate(s string) (Primitive, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return Primitive{}, err
	}
	return DatePrimitive(t), nil
}

// Now returns the current instant as a Date primitive.
func Now() Primitive {
	return DatePrimitive(time.Now())
}
