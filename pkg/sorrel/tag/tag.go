// Package tag provides source-provenance records for the Sorrel shell.
//
// Every value flowing through a pipeline and every error label carries a Tag:
// the span of source text it originated from plus an optional anchor naming
// where that source came from (a file, the REPL line, a subprocess). Tags are
// purely diagnostic; no evaluation decision may depend on them.
package tag

import "fmt"

// Span is a half-open byte range [Start, End) into one source text.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// UnknownSpan returns the zero span used for synthetically produced values.
func UnknownSpan() Span {
	return Span{}
}

// IsUnknown reports whether the span carries no real location.
func (s Span) IsUnknown() bool {
	return s.Start == 0 && s.End == 0
}

// Until joins two spans into one covering both.
func (s Span) Until(other Span) Span {
	return Span{Start: s.Start, End: other.End}
}

// Slice returns the source text the span covers, or "" when the span
// is unknown or out of range.
func (s Span) Slice(source string) string {
	if s.IsUnknown() || s.Start < 0 || s.End > len(source) || s.Start > s.End {
		return ""
	}
	return source[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Tag is a span plus the origin of the source text it indexes into.
type Tag struct {
	Span   Span
	Anchor string // origin of the source text, "" when unknown
}

// New creates a tag for a span within the named origin.
func New(span Span, anchor string) Tag {
	return Tag{Span: span, Anchor: anchor}
}

// Unknown returns the tag attached to synthetically produced values, such as
// decoded subprocess output where full span tracking is infeasible.
func Unknown() Tag {
	return Tag{}
}

// IsUnknown reports whether the tag carries no provenance at all.
func (t Tag) IsUnknown() bool {
	return t.Span.IsUnknown() && t.Anchor == ""
}

// Until joins this tag's span with another's, keeping this tag's anchor.
func (t Tag) Until(other Tag) Tag {
	return Tag{Span: t.Span.Until(other.Span), Anchor: t.Anchor}
}

// Slice returns the source text the tag's span covers.
func (t Tag) Slice(source string) string {
	return t.Span.Slice(source)
}

func (t Tag) String() string {
	if t.Anchor == "" {
		return t.Span.String()
	}
	return fmt.Sprintf("%s@%s", t.Anchor, t.Span)
}
