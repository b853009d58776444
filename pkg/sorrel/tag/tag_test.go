package tag

import "testing"

func TestSpanSlice(t *testing.T) {
	source := "ls *.txt | lines"

	tests := []struct {
		span     Span
		expected string
	}{
		{NewSpan(0, 2), "ls"},
		{NewSpan(3, 8), "*.txt"},
		{NewSpan(11, 16), "lines"},
		{UnknownSpan(), ""},
		{NewSpan(5, 200), ""},
	}

	for _, tt := range tests {
		if got := tt.span.Slice(source); got != tt.expected {
			t.Errorf("Slice(%s) = %q, want %q", tt.span, got, tt.expected)
		}
	}
}

func TestSpanUntil(t *testing.T) {
	joined := NewSpan(3, 8).Until(NewSpan(11, 16))
	if joined.Start != 3 || joined.End != 16 {
		t.Errorf("Until = %s, want 3..16", joined)
	}
}

func TestTagUnknown(t *testing.T) {
	if !Unknown().IsUnknown() {
		t.Error("Unknown() should be unknown")
	}
	if New(NewSpan(1, 2), "line 1").IsUnknown() {
		t.Error("a real tag should not be unknown")
	}
	if !(Tag{Anchor: ""}).IsUnknown() {
		t.Error("zero tag should be unknown")
	}
}
