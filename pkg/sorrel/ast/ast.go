// Package ast defines the command nodes the pipeline runtime consumes: the
// expressions of a parsed internal call, the argument list of an external
// command, and the classified pipeline that chains them. The tokenizer and
// parser producing these nodes live outside the core; pkg/sorrel/parse
// supplies a minimal reader for interactive use.
package ast

import (
	"strings"

	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// Expression represents an argument expression node.
type Expression interface {
	ExprTag() tag.Tag
	String() string
	expressionNode()
}

// StringLiteral is a quoted or bare string argument. Text holds the literal
// content with quotes already removed; the tag spans the original token,
// quotes included.
type StringLiteral struct {
	Text string
	Tag  tag.Tag
}

func (e *StringLiteral) expressionNode()  {}
func (e *StringLiteral) ExprTag() tag.Tag { return e.Tag }
func (e *StringLiteral) String() string   { return e.Text }

// NumberLiteral is an exact numeric argument kept in its text form; the
// argument evaluator parses it into an arbitrary-precision integer or
// decimal.
type NumberLiteral struct {
	Text string
	Tag  tag.Tag
}

func (e *NumberLiteral) expressionNode()  {}
func (e *NumberLiteral) ExprTag() tag.Tag { return e.Tag }
func (e *NumberLiteral) String() string   { return e.Text }

// PatternLiteral is a glob pattern argument.
type PatternLiteral struct {
	Glob string
	Tag  tag.Tag
}

func (e *PatternLiteral) expressionNode()  {}
func (e *PatternLiteral) ExprTag() tag.Tag { return e.Tag }
func (e *PatternLiteral) String() string   { return e.Glob }

// Variable references the implicit current item ("it") or a named scope
// variable.
type Variable struct {
	Name string // without the leading '$'
	Tag  tag.Tag
}

func (e *Variable) expressionNode()  {}
func (e *Variable) ExprTag() tag.Tag { return e.Tag }
func (e *Variable) String() string   { return "$" + e.Name }

// BlockExpr wraps an evaluable block literal. The argument evaluator passes
// the block through as a value without evaluating it.
type BlockExpr struct {
	Block *value.Block
	Tag   tag.Tag
}

func (e *BlockExpr) expressionNode()  {}
func (e *BlockExpr) ExprTag() tag.Tag { return e.Tag }
func (e *BlockExpr) String() string   { return "<block>" }

// NamedValue is the right-hand side of a named argument: either a bare
// switch, present at its own site, or a value expression.
type NamedValue struct {
	Switch bool
	Tag    tag.Tag    // site of the flag itself
	Expr   Expression // nil for a present switch
}

// NamedArguments is an ordered flag-name to NamedValue mapping.
type NamedArguments struct {
	names   []string
	entries map[string]NamedValue
}

// NewNamedArguments creates an empty named-argument set.
func NewNamedArguments() *NamedArguments {
	return &NamedArguments{entries: make(map[string]NamedValue)}
}

// Insert adds or replaces a named argument, preserving first-seen order.
func (n *NamedArguments) Insert(name string, nv NamedValue) {
	if _, ok := n.entries[name]; !ok {
		n.names = append(n.names, name)
	}
	n.entries[name] = nv
}

// Names returns the flag names in insertion order.
func (n *NamedArguments) Names() []string { return n.names }

// Get returns the named value for a flag.
func (n *NamedArguments) Get(name string) (NamedValue, bool) {
	nv, ok := n.entries[name]
	return nv, ok
}

// Len returns the number of named arguments.
func (n *NamedArguments) Len() int { return len(n.names) }

// Call is a parsed internal-command invocation: positional expressions in
// source order plus named arguments. Either list may be absent.
type Call struct {
	Positional []Expression
	Named      *NamedArguments
	Span       tag.Span
}

// InternalCommand is a pipeline stage resolved to a registered command.
type InternalCommand struct {
	Name    string
	NameTag tag.Tag
	Call    *Call
}

func (c *InternalCommand) String() string {
	var parts []string
	parts = append(parts, c.Name)
	if c.Call != nil {
		for _, e := range c.Positional() {
			parts = append(parts, e.String())
		}
	}
	return strings.Join(parts, " ")
}

// Positional returns the call's positional expressions, nil-safe.
func (c *InternalCommand) Positional() []Expression {
	if c.Call == nil {
		return nil
	}
	return c.Call.Positional
}

// ExternalArg is one external-command argument with its own tag, so the exact
// offending argument can be blamed during substitution failures.
type ExternalArg struct {
	Arg string
	Tag tag.Tag
}

// ExternalCommand is a pipeline stage that runs as an OS subprocess.
type ExternalCommand struct {
	Name    string
	NameTag tag.Tag
	Args    []ExternalArg
}

func (c *ExternalCommand) String() string {
	parts := []string{c.Name}
	for _, a := range c.Args {
		parts = append(parts, a.Arg)
	}
	return strings.Join(parts, " ")
}

// ClassifiedCommand is one pipeline stage: exactly one of Internal or
// External is set.
type ClassifiedCommand struct {
	Internal *InternalCommand
	External *ExternalCommand
}

func (c ClassifiedCommand) String() string {
	if c.Internal != nil {
		return c.Internal.String()
	}
	if c.External != nil {
		return c.External.String()
	}
	return ""
}

// Pipeline is an ordered chain of classified stages.
type Pipeline struct {
	Commands []ClassifiedCommand
}

func (p *Pipeline) String() string {
	parts := make([]string, len(p.Commands))
	for i, c := range p.Commands {
		parts[i] = c.String()
	}
	return strings.Join(parts, " | ")
}
