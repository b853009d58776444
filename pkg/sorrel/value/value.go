// Package value provides the tagged, typed value model of the Sorrel shell:
// scalar primitives, row and table aggregates, boxed errors, and evaluable
// blocks, all carrying source-provenance tags.
//
// Values are immutable once constructed; transformations build new values.
package value

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
)

// ValueKind identifies the variant held by an UntaggedValue.
type ValueKind int

const (
	ValuePrimitive ValueKind = iota
	ValueRow
	ValueTable
	ValueError
	ValueBlock
)

// UntaggedValue is a value without provenance. Exactly the payload field for
// Kind is meaningful.
type UntaggedValue struct {
	Kind ValueKind

	Primitive Primitive          // ValuePrimitive
	Row       *Dict              // ValueRow
	Table     []Value            // ValueTable
	Err       *errors.ShellError // ValueError
	Block     *Block             // ValueBlock
}

// Value is an UntaggedValue plus the Tag recording where it came from.
type Value struct {
	Value UntaggedValue
	Tag   tag.Tag
}

// IntoValue attaches provenance to the value.
func (uv UntaggedValue) IntoValue(t tag.Tag) Value {
	return Value{Value: uv, Tag: t}
}

// IntoUntaggedValue attaches unknown provenance, for synthetically produced
// values such as decoded subprocess lines.
func (uv UntaggedValue) IntoUntaggedValue() Value {
	return Value{Value: uv, Tag: tag.Unknown()}
}

// String creates a string value.
func String(s string) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: StringPrimitive(s)}
}

// Int creates an arbitrary-precision integer value.
func Int(i *big.Int) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: IntPrimitive(i)}
}

// IntFromInt64 creates an integer value from a native integer.
func IntFromInt64(i int64) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: IntPrimitiveFromInt64(i)}
}

// Decimal creates an exact decimal value.
func Decimal(d *apd.Decimal) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: DecimalPrimitive(d)}
}

// Boolean creates a boolean value.
func Boolean(b bool) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: BooleanPrimitive(b)}
}

// Nothing creates the nothing value.
func Nothing() UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: NothingPrimitive()}
}

// Bytes creates a byte-count value.
func Bytes(size uint64) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: BytesPrimitive(size)}
}

// Date creates a date value, normalized to UTC.
func Date(t time.Time) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: DatePrimitive(t)}
}

// Duration creates a duration value, in whole seconds.
func Duration(seconds uint64) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: DurationPrimitive(seconds)}
}

// FilePath creates a filesystem path value.
func FilePath(path string) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: FilePathPrimitive(path)}
}

// Pattern creates a glob pattern value.
func Pattern(glob string) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: PatternPrimitive(glob)}
}

// Binary creates a raw byte-sequence value.
func Binary(b []byte) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: BinaryPrimitive(b)}
}

// PathValue creates a column-path value.
func PathValue(p ColumnPath) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: ColumnPathPrimitive(p)}
}

// FromPrimitive wraps an already-built primitive.
func FromPrimitive(p Primitive) UntaggedValue {
	return UntaggedValue{Kind: ValuePrimitive, Primitive: p}
}

// Row creates a row value over an ordered dictionary.
func Row(d *Dict) UntaggedValue {
	return UntaggedValue{Kind: ValueRow, Row: d}
}

// Table creates a table value over an ordered sequence of values.
func Table(items []Value) UntaggedValue {
	return UntaggedValue{Kind: ValueTable, Table: items}
}

// Error boxes a structured error as a value.
func Error(err *errors.ShellError) UntaggedValue {
	return UntaggedValue{Kind: ValueError, Err: err}
}

// BlockValue wraps an evaluable block as a value.
func BlockValue(b *Block) UntaggedValue {
	return UntaggedValue{Kind: ValueBlock, Block: b}
}

// IsPrimitive reports whether the value holds the given primitive kind.
func (v Value) IsPrimitive(kind PrimitiveKind) bool {
	return v.Value.Kind == ValuePrimitive && v.Value.Primitive.Kind == kind
}

// IsNothing reports whether the value is the nothing primitive.
func (v Value) IsNothing() bool {
	return v.IsPrimitive(KindNothing)
}

// TypeName returns the display name of the value's type.
func (uv UntaggedValue) TypeName() string {
	switch uv.Kind {
	case ValuePrimitive:
		return uv.Primitive.Kind.TypeName()
	case ValueRow:
		return "row"
	case ValueTable:
		return "table"
	case ValueError:
		return "error"
	case ValueBlock:
		return "block"
	default:
		return "unknown"
	}
}

// DisplayString returns the plain display form of a value, used when a
// pipeline's final stream is rendered.
func (v Value) DisplayString() string {
	switch v.Value.Kind {
	case ValuePrimitive:
		return v.Value.Primitive.String()
	case ValueRow:
		var parts []string
		for _, k := range v.Value.Row.Keys() {
			item, _ := v.Value.Row.Get(k)
			parts = append(parts, fmt.Sprintf("%s: %s", k, item.DisplayString()))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ValueTable:
		var parts []string
		for _, item := range v.Value.Table {
			parts = append(parts, item.DisplayString())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ValueError:
		return v.Value.Err.String()
	case ValueBlock:
		return "<block>"
	default:
		return ""
	}
}

// Clone returns a deep copy of the value. Blocks are duplicated so composite
// values containing them remain independently evaluable.
func (v Value) Clone() Value {
	return Value{Value: v.Value.clone(), Tag: v.Tag}
}

func (uv UntaggedValue) clone() UntaggedValue {
	switch uv.Kind {
	case ValueRow:
		return UntaggedValue{Kind: ValueRow, Row: uv.Row.Clone()}
	case ValueTable:
		items := make([]Value, len(uv.Table))
		for i, item := range uv.Table {
			items[i] = item.Clone()
		}
		return UntaggedValue{Kind: ValueTable, Table: items}
	case ValueBlock:
		return UntaggedValue{Kind: ValueBlock, Block: uv.Block.Clone()}
	default:
		// Primitives and errors are never mutated after construction.
		return uv
	}
}

// GetPath walks a column path through rows and tables, returning the value it
// lands on. Missing columns and out-of-range indices yield a labeled error
// pointing at the offending member.
func GetPath(v Value, path ColumnPath, anchor string) (Value, *errors.ShellError) {
	current := v
	for _, member := range path.Members {
		switch {
		case member.Kind == MemberString && current.Value.Kind == ValueRow:
			item, ok := current.Value.Row.Get(member.Name)
			if !ok {
				return Value{}, errors.LabeledErrorWithSecondary(
					fmt.Sprintf("Unknown column %q", member.Name),
					"unknown column",
					tag.New(member.Span, anchor),
					"value originates from here",
					current.Tag,
				)
			}
			current = item
		case member.Kind == MemberInt && current.Value.Kind == ValueTable:
			if member.Index < 0 || member.Index >= len(current.Value.Table) {
				return Value{}, errors.LabeledErrorWithSecondary(
					fmt.Sprintf("Row %d out of range", member.Index),
					"out of range",
					tag.New(member.Span, anchor),
					"value originates from here",
					current.Tag,
				)
			}
			current = current.Value.Table[member.Index]
		default:
			return Value{}, errors.LabeledErrorWithSecondary(
				fmt.Sprintf("Cannot access %q in a %s", member.String(), current.Value.TypeName()),
				"invalid access",
				tag.New(member.Span, anchor),
				"value originates from here",
				current.Tag,
			)
		}
	}
	return current, nil
}
