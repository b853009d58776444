package value

import (
	"strconv"
	"strings"

	"github.com/sambeau/sorrel/pkg/sorrel/tag"
)

// PathMemberKind identifies whether a path member names a row column or
// indexes into a table.
type PathMemberKind int

const (
	MemberString PathMemberKind = iota
	MemberInt
)

// PathMember is one step of a column path: a column name or a table index,
// with the span it was written at.
type PathMember struct {
	Kind  PathMemberKind
	Name  string // MemberString
	Index int    // MemberInt
	Span  tag.Span
}

// StringMember creates a column-name member.
func StringMember(name string, span tag.Span) PathMember {
	return PathMember{Kind: MemberString, Name: name, Span: span}
}

// IntMember creates a table-index member.
func IntMember(index int, span tag.Span) PathMember {
	return PathMember{Kind: MemberInt, Index: index, Span: span}
}

func (m PathMember) String() string {
	if m.Kind == MemberInt {
		return strconv.Itoa(m.Index)
	}
	return m.Name
}

// ColumnPath is an ordered sequence of path members for nested field access.
type ColumnPath struct {
	Members []PathMember
}

// NewColumnPath creates a path over the given members.
func NewColumnPath(members []PathMember) ColumnPath {
	return ColumnPath{Members: members}
}

// ParseColumnPath parses a dotted path such as "name" or "files.0.size".
// The spans of the members are offsets into the path text shifted by the
// start of the given span, so diagnostics can point at the exact member.
func ParseColumnPath(path string, spanOf tag.Span) ColumnPath {
	var members []PathMember
	offset := 0
	for _, part := range strings.Split(path, ".") {
		span := tag.NewSpan(spanOf.Start+offset, spanOf.Start+offset+len(part))
		if idx, err := strconv.Atoi(part); err == nil {
			members = append(members, IntMember(idx, span))
		} else {
			members = append(members, StringMember(part, span))
		}
		offset += len(part) + 1
	}
	return ColumnPath{Members: members}
}

func (p ColumnPath) String() string {
	parts := make([]string, len(p.Members))
	for i, m := range p.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, ".")
}
