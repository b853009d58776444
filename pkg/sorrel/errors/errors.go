// Package errors provides the structured error type for the Sorrel shell core.
//
// A ShellError carries a primary message tied to one source Tag and optionally
// a secondary label tied to a second Tag. The core only constructs and
// propagates these values; rendering to a terminal belongs to the host.
package errors

import (
	"fmt"
	"strings"

	"github.com/sambeau/sorrel/pkg/sorrel/tag"
)

// ErrorClass categorizes errors for filtering and templating.
type ErrorClass string

const (
	ClassArgument   ErrorClass = "argument"   // Wrong positional/named arity or type
	ClassCoerce     ErrorClass = "coerce"     // Value not coercible during substitution
	ClassSpawn      ErrorClass = "spawn"      // Subprocess could not be started
	ClassType       ErrorClass = "type"       // Type mismatches in commands
	ClassUndefined  ErrorClass = "undefined"  // Unknown command, variable, or column
	ClassDiagnostic ErrorClass = "diagnostic" // General labeled diagnostics
)

// Label ties one message fragment to a source location.
type Label struct {
	Text string
	Tag  tag.Tag
}

// ShellError represents any error raised while building or running a pipeline
// stage. The primary label names the problem; the secondary label, when
// present, points at a second location that explains it (e.g. where an
// offending value originated).
type ShellError struct {
	Class     ErrorClass
	Message   string
	Primary   Label
	Secondary *Label
	Hints     []string
}

// Error implements the error interface.
func (e *ShellError) Error() string {
	return e.String()
}

// String returns a single-line representation of the error.
func (e *ShellError) String() string {
	var sb strings.Builder

	sb.WriteString(e.Message)
	if e.Primary.Text != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Primary.Text)
	}
	if !e.Primary.Tag.IsUnknown() {
		sb.WriteString(fmt.Sprintf(" (at %s)", e.Primary.Tag))
	}

	return sb.String()
}

// PrettyString returns a multi-line representation for interactive display.
// Source, when non-empty, is the original text the labels' spans index into.
func (e *ShellError) PrettyString(source string) string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Message)

	writeLabel := func(l Label) {
		sb.WriteString("\n  ")
		if frag := l.Tag.Slice(source); frag != "" {
			sb.WriteString(fmt.Sprintf("`%s`: ", frag))
		}
		sb.WriteString(l.Text)
		if !l.Tag.IsUnknown() {
			sb.WriteString(fmt.Sprintf(" (at %s)", l.Tag))
		}
	}

	if e.Primary.Text != "" {
		writeLabel(e.Primary)
	}
	if e.Secondary != nil {
		writeLabel(*e.Secondary)
	}
	for i, hint := range e.Hints {
		sb.WriteString("\n  ")
		if i == 0 {
			sb.WriteString("Use: ")
		} else {
			sb.WriteString(" or: ")
		}
		sb.WriteString(hint)
	}

	return sb.String()
}

// WithHint returns a copy of the error with an extra hint appended.
func (e *ShellError) WithHint(hint string) *ShellError {
	copied := *e
	copied.Hints = append(append([]string{}, e.Hints...), hint)
	return &copied
}

// LabeledError creates a diagnostic with a single labeled location.
func LabeledError(message, label string, t tag.Tag) *ShellError {
	return &ShellError{
		Class:   ClassDiagnostic,
		Message: message,
		Primary: Label{Text: label, Tag: t},
	}
}

// LabeledErrorWithSecondary creates a diagnostic with two labeled locations:
// the problem site and the site that explains it.
func LabeledErrorWithSecondary(message, primary string, primaryTag tag.Tag, secondary string, secondaryTag tag.Tag) *ShellError {
	return &ShellError{
		Class:     ClassDiagnostic,
		Message:   message,
		Primary:   Label{Text: primary, Tag: primaryTag},
		Secondary: &Label{Text: secondary, Tag: secondaryTag},
	}
}

// ArgumentError reports a wrong positional or named argument to a command.
func ArgumentError(command, problem string, t tag.Tag) *ShellError {
	return &ShellError{
		Class:   ClassArgument,
		Message: fmt.Sprintf("%s: %s", command, problem),
		Primary: Label{Text: problem, Tag: t},
	}
}

// CoerceError reports a value that could not be converted to the form an
// operation requires.
func CoerceError(expected, actual string, t tag.Tag) *ShellError {
	return &ShellError{
		Class:   ClassCoerce,
		Message: fmt.Sprintf("expected %s, got %s", expected, actual),
		Primary: Label{Text: fmt.Sprintf("requires %s", expected), Tag: t},
	}
}

// SpawnError reports a subprocess that could not be started.
func SpawnError(name string, t tag.Tag) *ShellError {
	return &ShellError{
		Class:   ClassSpawn,
		Message: "Command not found",
		Primary: Label{Text: fmt.Sprintf("%s: command not found", name), Tag: t},
	}
}

// UndefinedError reports an unknown command, variable, or column name.
func UndefinedError(kind, name string, t tag.Tag) *ShellError {
	return &ShellError{
		Class:   ClassUndefined,
		Message: fmt.Sprintf("%s not found: %s", kind, name),
		Primary: Label{Text: fmt.Sprintf("unknown %s", kind), Tag: t},
	}
}

// UntaggedError creates a diagnostic with no source location, for failures
// that occur outside any one span.
func UntaggedError(message string) *ShellError {
	return &ShellError{
		Class:   ClassDiagnostic,
		Message: message,
		Primary: Label{Text: message, Tag: tag.Unknown()},
	}
}
