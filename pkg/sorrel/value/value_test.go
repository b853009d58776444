package value

import (
	"testing"

	"github.com/sambeau/sorrel/pkg/sorrel/tag"
)

func sampleRow() Value {
	d := NewDict()
	d.Set("name", String("sorrel.go").IntoUntaggedValue())
	d.Set("size", Bytes(1024).IntoUntaggedValue())
	return Row(d).IntoUntaggedValue()
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("zebra", String("z").IntoUntaggedValue())
	d.Set("apple", String("a").IntoUntaggedValue())
	d.Set("mango", String("m").IntoUntaggedValue())
	// Replacing keeps the original position.
	d.Set("zebra", String("Z").IntoUntaggedValue())

	keys := d.Keys()
	expected := []string{"zebra", "apple", "mango"}
	if len(keys) != len(expected) {
		t.Fatalf("keys = %v, want %v", keys, expected)
	}
	for i, k := range expected {
		if keys[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
		}
	}
	v, _ := d.Get("zebra")
	if v.Value.Primitive.Str != "Z" {
		t.Errorf("replaced value = %q, want %q", v.Value.Primitive.Str, "Z")
	}
}

func TestGetPathRowColumn(t *testing.T) {
	path := ParseColumnPath("size", tag.NewSpan(0, 4))
	got, err := GetPath(sampleRow(), path, "line 1")
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsPrimitive(KindBytes) || got.Value.Primitive.Size != 1024 {
		t.Errorf("GetPath(size) = %v", got.Value)
	}
}

func TestGetPathThroughTable(t *testing.T) {
	table := Table([]Value{sampleRow(), sampleRow()}).IntoUntaggedValue()
	path := ParseColumnPath("1.name", tag.NewSpan(0, 6))

	got, err := GetPath(table, path, "line 1")
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsPrimitive(KindString) || got.Value.Primitive.Str != "sorrel.go" {
		t.Errorf("GetPath(1.name) = %v", got.Value)
	}
}

func TestGetPathUnknownColumn(t *testing.T) {
	path := ParseColumnPath("missing", tag.NewSpan(0, 7))
	_, err := GetPath(sampleRow(), path, "line 1")
	if err == nil {
		t.Fatal("expected an error for an unknown column")
	}
	if err.Secondary == nil {
		t.Error("error should point back at the value's origin")
	}
}

func TestGetPathIndexOutOfRange(t *testing.T) {
	table := Table([]Value{sampleRow()}).IntoUntaggedValue()
	path := ParseColumnPath("5", tag.NewSpan(0, 1))
	if _, err := GetPath(table, path, "line 1"); err == nil {
		t.Fatal("expected an error for an out-of-range index")
	}
}

func TestGetPathWrongShape(t *testing.T) {
	scalar := String("flat").IntoUntaggedValue()
	path := ParseColumnPath("field", tag.NewSpan(0, 5))
	if _, err := GetPath(scalar, path, "line 1"); err == nil {
		t.Fatal("expected an error when walking into a primitive")
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleRow()
	copied := original.Clone()

	copied.Value.Row.Set("name", String("changed").IntoUntaggedValue())

	v, _ := original.Value.Row.Get("name")
	if v.Value.Primitive.Str != "sorrel.go" {
		t.Error("mutating the clone leaked into the original")
	}
}

func TestDisplayString(t *testing.T) {
	tests := []struct {
		v        Value
		expected string
	}{
		{String("hello").IntoUntaggedValue(), "hello"},
		{IntFromInt64(7).IntoUntaggedValue(), "7"},
		{sampleRow(), "[name: sorrel.go, size: 1.0 KB]"},
		{Nothing().IntoUntaggedValue(), ""},
	}
	for _, tt := range tests {
		if got := tt.v.DisplayString(); got != tt.expected {
			t.Errorf("DisplayString = %q, want %q", got, tt.expected)
		}
	}
}

func TestParseColumnPathSpans(t *testing.T) {
	// Spans of the members are offsets into the original line, so an error
	// in a later member points at that member, not the whole path.
	path := ParseColumnPath("files.0.size", tag.NewSpan(10, 22))

	if len(path.Members) != 3 {
		t.Fatalf("members = %d, want 3", len(path.Members))
	}
	if path.Members[0].Kind != MemberString || path.Members[0].Name != "files" {
		t.Errorf("member 0 = %+v", path.Members[0])
	}
	if path.Members[1].Kind != MemberInt || path.Members[1].Index != 0 {
		t.Errorf("member 1 = %+v", path.Members[1])
	}
	if path.Members[2].Span.Start != 18 || path.Members[2].Span.End != 22 {
		t.Errorf("member 2 span = %s, want 18..22", path.Members[2].Span)
	}
	if path.String() != "files.0.size" {
		t.Errorf("String() = %q", path.String())
	}
}
