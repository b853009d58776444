package pipeline

import (
	"fmt"
	"math/big"

	"github.com/sambeau/sorrel/pkg/sorrel/ast"
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// EvaluatedArgs holds a call's arguments after evaluation: an optional
// ordered positional list and an optional ordered name-to-value mapping. A
// present switch appears as a Boolean true value tagged at the flag's site.
type EvaluatedArgs struct {
	Positional []value.Value
	Named      *value.Dict
}

// Nth returns the i-th positional argument.
func (a EvaluatedArgs) Nth(i int) (value.Value, bool) {
	if i < 0 || i >= len(a.Positional) {
		return value.Value{}, false
	}
	return a.Positional[i], true
}

// Len returns the number of positional arguments.
func (a EvaluatedArgs) Len() int {
	return len(a.Positional)
}

// GetNamed returns the value of a named argument.
func (a EvaluatedArgs) GetNamed(name string) (value.Value, bool) {
	if a.Named == nil {
		return value.Value{}, false
	}
	return a.Named.Get(name)
}

// Has reports whether a named argument is present. For switches this is the
// whole story; the stored value is Boolean true.
func (a EvaluatedArgs) Has(name string) bool {
	_, ok := a.GetNamed(name)
	return ok
}

// CallInfo pairs evaluated arguments with the tag of the invocation site.
// Built once per command invocation, consumed read-only.
type CallInfo struct {
	Args    EvaluatedArgs
	NameTag tag.Tag
}

// EvaluateArgs resolves a parsed call's expression nodes into evaluated
// values against one scope. Positionals evaluate left to right; the first
// failure aborts the whole evaluation with no partial result.
func EvaluateArgs(call *ast.Call, reg *Registry, scope *value.Scope, source string) (EvaluatedArgs, error) {
	if call == nil {
		return EvaluatedArgs{}, nil
	}

	var positional []value.Value
	for _, expr := range call.Positional {
		v, err := evaluateExpr(expr, reg, scope, source)
		if err != nil {
			return EvaluatedArgs{}, err
		}
		positional = append(positional, v)
	}

	var named *value.Dict
	if call.Named != nil && call.Named.Len() > 0 {
		named = value.NewDict()
		for _, name := range call.Named.Names() {
			nv, _ := call.Named.Get(name)
			if nv.Switch {
				named.Set(name, value.Boolean(true).IntoValue(nv.Tag))
				continue
			}
			v, err := evaluateExpr(nv.Expr, reg, scope, source)
			if err != nil {
				return EvaluatedArgs{}, err
			}
			named.Set(name, v)
		}
	}

	return EvaluatedArgs{Positional: positional, Named: named}, nil
}

// evaluateExpr resolves one expression node against the scope.
func evaluateExpr(expr ast.Expression, reg *Registry, scope *value.Scope, source string) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.StringLiteral:
		return value.String(e.Text).IntoValue(e.Tag), nil
	case *ast.PatternLiteral:
		return value.Pattern(e.Glob).IntoValue(e.Tag), nil
	case *ast.NumberLiteral:
		return evaluateNumber(e, source)
	case *ast.Variable:
		if e.Name == "it" {
			return scope.It, nil
		}
		if v, ok := scope.Var(e.Name); ok {
			return v, nil
		}
		return value.Value{}, errors.UndefinedError("variable", e.Name, e.Tag)
	case *ast.BlockExpr:
		return value.BlockValue(e.Block.Clone()).IntoValue(e.Tag), nil
	default:
		return value.Value{}, errors.LabeledError("Unrecognized expression", "cannot be evaluated", expr.ExprTag())
	}
}

// evaluateNumber parses an exact integer or decimal from the literal's text.
func evaluateNumber(e *ast.NumberLiteral, source string) (value.Value, error) {
	if i, ok := new(big.Int).SetString(e.Text, 10); ok {
		return value.Int(i).IntoValue(e.Tag), nil
	}
	p, err := value.ParseDecimalPrimitive(e.Text)
	if err == nil {
		return value.FromPrimitive(p).IntoValue(e.Tag), nil
	}
	label := fmt.Sprintf("%q is not a number", e.Tag.Slice(source))
	if e.Tag.Slice(source) == "" {
		label = fmt.Sprintf("%q is not a number", e.Text)
	}
	return value.Value{}, errors.LabeledError("Invalid number", label, e.Tag)
}
