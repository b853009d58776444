package errors

import (
	"strings"
	"testing"

	"github.com/sambeau/sorrel/pkg/sorrel/tag"
)

func TestLabeledErrorString(t *testing.T) {
	err := LabeledError("Expected a string", "requires string input", tag.New(tag.NewSpan(0, 5), "line 1"))

	s := err.String()
	if !strings.Contains(s, "Expected a string") {
		t.Errorf("String() missing message: %q", s)
	}
	if !strings.Contains(s, "requires string input") {
		t.Errorf("String() missing label: %q", s)
	}
}

func TestPrettyStringExcerpts(t *testing.T) {
	source := "lines | first"
	err := LabeledError("Expected a string", "requires string input", tag.New(tag.NewSpan(0, 5), "line 1"))

	pretty := err.PrettyString(source)
	if !strings.Contains(pretty, "`lines`") {
		t.Errorf("PrettyString() should excerpt the span: %q", pretty)
	}
}

func TestSecondaryLabel(t *testing.T) {
	err := LabeledErrorWithSecondary(
		"Expected a string",
		"requires string input", tag.New(tag.NewSpan(0, 5), "line 1"),
		"value originates from here", tag.New(tag.NewSpan(8, 13), "line 1"),
	)
	if err.Secondary == nil {
		t.Fatal("secondary label missing")
	}
	pretty := err.PrettyString("lines | first")
	if !strings.Contains(pretty, "value originates from here") {
		t.Errorf("PrettyString() missing secondary: %q", pretty)
	}
}

func TestSpawnError(t *testing.T) {
	err := SpawnError("nosuchtool", tag.New(tag.NewSpan(0, 10), "line 1"))
	if err.Message != "Command not found" {
		t.Errorf("spawn message = %q, want %q", err.Message, "Command not found")
	}
	if err.Class != ClassSpawn {
		t.Errorf("class = %q, want %q", err.Class, ClassSpawn)
	}
}

func TestWithHintCopies(t *testing.T) {
	base := UntaggedError("something broke")
	hinted := base.WithHint("try again")

	if len(base.Hints) != 0 {
		t.Error("WithHint should not mutate the original")
	}
	if len(hinted.Hints) != 1 || hinted.Hints[0] != "try again" {
		t.Errorf("hints = %v", hinted.Hints)
	}
}
