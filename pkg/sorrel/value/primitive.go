package value

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// PrimitiveKind identifies the variant held by a Primitive.
type PrimitiveKind int

const (
	KindNothing PrimitiveKind = iota
	KindInt
	KindDecimal
	KindBytes
	KindString
	KindColumnPath
	KindPattern
	KindBoolean
	KindDate
	KindDuration
	KindFilePath
	KindBinary

	// Stream markers, used as bookend markers inside certain streams and
	// never as ordinary payload.
	KindBeginningOfStream
	KindEndOfStream
)

// TypeName returns the display name of the kind.
func (k PrimitiveKind) TypeName() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindInt:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindColumnPath:
		return "column path"
	case KindPattern:
		return "pattern"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindDuration:
		return "duration"
	case KindFilePath:
		return "file path"
	case KindBinary:
		return "binary"
	case KindBeginningOfStream:
		return "beginning-of-stream"
	case KindEndOfStream:
		return "end-of-stream"
	default:
		return "unknown"
	}
}

// Primitive is the closed set of scalar value kinds. Exactly the payload
// fields for Kind are meaningful; all others stay zero. Numbers are exact:
// integers are arbitrary-precision and decimals are arbitrary-precision
// decimals, never native floats.
type Primitive struct {
	Kind PrimitiveKind

	Int      *big.Int     // KindInt
	Decimal  *apd.Decimal // KindDecimal
	Size     uint64       // KindBytes, a size in bytes
	Str      string       // KindString, KindPattern, KindFilePath
	Path     ColumnPath   // KindColumnPath
	Bool     bool         // KindBoolean
	Date     time.Time    // KindDate, always UTC
	Duration uint64       // KindDuration, in seconds
	Binary   []byte       // KindBinary
}

// NothingPrimitive returns the Nothing primitive.
func NothingPrimitive() Primitive {
	return Primitive{Kind: KindNothing}
}

// IntPrimitive wraps an arbitrary-precision integer.
func IntPrimitive(i *big.Int) Primitive {
	return Primitive{Kind: KindInt, Int: i}
}

// IntPrimitiveFromInt64 wraps a native integer.
func IntPrimitiveFromInt64(i int64) Primitive {
	return Primitive{Kind: KindInt, Int: big.NewInt(i)}
}

// DecimalPrimitive wraps an exact decimal.
func DecimalPrimitive(d *apd.Decimal) Primitive {
	return Primitive{Kind: KindDecimal, Decimal: d}
}

// ParseDecimalPrimitive parses an exact decimal from its text form.
func ParseDecimalPrimitive(s string) (Primitive, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Primitive{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	return Primitive{Kind: KindDecimal, Decimal: d}, nil
}

// BytesPrimitive wraps a size in bytes.
func BytesPrimitive(size uint64) Primitive {
	return Primitive{Kind: KindBytes, Size: size}
}

// StringPrimitive wraps a string.
func StringPrimitive(s string) Primitive {
	return Primitive{Kind: KindString, Str: s}
}

// ColumnPathPrimitive wraps a column path.
func ColumnPathPrimitive(p ColumnPath) Primitive {
	return Primitive{Kind: KindColumnPath, Path: p}
}

// PatternPrimitive wraps a glob pattern string.
func PatternPrimitive(glob string) Primitive {
	return Primitive{Kind: KindPattern, Str: glob}
}

// BooleanPrimitive wraps a boolean.
func BooleanPrimitive(b bool) Primitive {
	return Primitive{Kind: KindBoolean, Bool: b}
}

// DatePrimitive wraps a timestamp, normalized to UTC.
func DatePrimitive(t time.Time) Primitive {
	return Primitive{Kind: KindDate, Date: t.UTC()}
}

// DurationPrimitive wraps a duration in whole seconds.
func DurationPrimitive(seconds uint64) Primitive {
	return Primitive{Kind: KindDuration, Duration: seconds}
}

// FilePathPrimitive wraps a filesystem path.
func FilePathPrimitive(path string) Primitive {
	return Primitive{Kind: KindFilePath, Str: path}
}

// BinaryPrimitive wraps a raw byte sequence.
func BinaryPrimitive(b []byte) Primitive {
	return Primitive{Kind: KindBinary, Binary: b}
}

// BeginningOfStreamPrimitive returns the leading stream bookend marker.
func BeginningOfStreamPrimitive() Primitive {
	return Primitive{Kind: KindBeginningOfStream}
}

// EndOfStreamPrimitive returns the trailing stream bookend marker.
func EndOfStreamPrimitive() Primitive {
	return Primitive{Kind: KindEndOfStream}
}

// compareRank collapses the two exact numeric kinds into one ordering class
// so integers and decimals compare by magnitude, and ranks every other kind
// by declaration order.
func (p Primitive) compareRank() int {
	switch p.Kind {
	case KindInt, KindDecimal:
		return int(KindInt)
	default:
		return int(p.Kind)
	}
}

// Compare defines the total order over primitives: first by kind rank, then
// by payload. Int and Decimal share one numeric class and compare exactly.
// Returns -1, 0, or 1.
func (p Primitive) Compare(other Primitive) int {
	pr, or := p.compareRank(), other.compareRank()
	if pr != or {
		return compareInts(pr, or)
	}

	switch p.Kind {
	case KindNothing, KindBeginningOfStream, KindEndOfStream:
		return 0
	case KindInt, KindDecimal:
		return compareNumeric(p, other)
	case KindBytes:
		return compareUints(p.Size, other.Size)
	case KindString, KindPattern, KindFilePath:
		return strings.Compare(p.Str, other.Str)
	case KindColumnPath:
		return strings.Compare(p.Path.String(), other.Path.String())
	case KindBoolean:
		return compareBools(p.Bool, other.Bool)
	case KindDate:
		switch {
		case p.Date.Before(other.Date):
			return -1
		case p.Date.After(other.Date):
			return 1
		default:
			return 0
		}
	case KindDuration:
		return compareUints(p.Duration, other.Duration)
	case KindBinary:
		return bytes.Compare(p.Binary, other.Binary)
	default:
		return 0
	}
}

// compareNumeric compares two primitives from the shared numeric class.
func compareNumeric(a, b Primitive) int {
	if a.Kind == KindInt && b.Kind == KindInt {
		return a.Int.Cmp(b.Int)
	}
	return asDecimal(a).Cmp(asDecimal(b))
}

// asDecimal widens a numeric primitive to an exact decimal.
func asDecimal(p Primitive) *apd.Decimal {
	if p.Kind == KindDecimal {
		return p.Decimal
	}
	d := new(apd.Decimal)
	// An integer's canonical text form is always a valid decimal.
	d, _, _ = d.SetString(p.Int.String())
	return d
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareUints(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// String returns the canonical display form of the primitive.
func (p Primitive) String() string {
	switch p.Kind {
	case KindNothing:
		return ""
	case KindInt:
		return p.Int.String()
	case KindDecimal:
		return p.Decimal.String()
	case KindBytes:
		return formatBytes(p.Size)
	case KindString, KindPattern, KindFilePath:
		return p.Str
	case KindColumnPath:
		return p.Path.String()
	case KindBoolean:
		if p.Bool {
			return "yes"
		}
		return "no"
	case KindDate:
		return p.Date.Format(time.RFC1123)
	case KindDuration:
		return fmt.Sprintf("%ds", p.Duration)
	case KindBinary:
		return fmt.Sprintf("<binary %d bytes>", len(p.Binary))
	case KindBeginningOfStream, KindEndOfStream:
		return ""
	default:
		return ""
	}
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(size uint64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := uint64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
