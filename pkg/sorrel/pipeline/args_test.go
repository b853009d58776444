package pipeline

import (
	"testing"

	"github.com/sambeau/sorrel/pkg/sorrel/ast"
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

func litTag(start, end int) tag.Tag {
	return tag.New(tag.NewSpan(start, end), "line 1")
}

func TestEvaluateLiterals(t *testing.T) {
	call := &ast.Call{
		Positional: []ast.Expression{
			&ast.StringLiteral{Text: "hello", Tag: litTag(0, 7)},
			&ast.NumberLiteral{Text: "42", Tag: litTag(8, 10)},
			&ast.NumberLiteral{Text: "2.5", Tag: litTag(11, 14)},
			&ast.PatternLiteral{Glob: "*.txt", Tag: litTag(15, 20)},
		},
	}

	args, err := EvaluateArgs(call, NewRegistry(), value.EmptyScope(), `"hello" 42 2.5 *.txt`)
	if err != nil {
		t.Fatal(err)
	}
	if args.Len() != 4 {
		t.Fatalf("positional = %d, want 4", args.Len())
	}

	str, _ := args.Nth(0)
	if !str.IsPrimitive(value.KindString) || str.Value.Primitive.Str != "hello" {
		t.Errorf("arg 0 = %v", str.Value)
	}
	n, _ := args.Nth(1)
	if !n.IsPrimitive(value.KindInt) || n.Value.Primitive.Int.Int64() != 42 {
		t.Errorf("arg 1 = %v", n.Value)
	}
	d, _ := args.Nth(2)
	if !d.IsPrimitive(value.KindDecimal) || d.Value.Primitive.Decimal.String() != "2.5" {
		t.Errorf("arg 2 = %v", d.Value)
	}
	g, _ := args.Nth(3)
	if !g.IsPrimitive(value.KindPattern) || g.Value.Primitive.Str != "*.txt" {
		t.Errorf("arg 3 = %v", g.Value)
	}
}

func TestEvaluateItVariable(t *testing.T) {
	scope := value.NewScope(value.String("current").IntoUntaggedValue())
	call := &ast.Call{
		Positional: []ast.Expression{&ast.Variable{Name: "it", Tag: litTag(0, 3)}},
	}

	args, err := EvaluateArgs(call, NewRegistry(), scope, "$it")
	if err != nil {
		t.Fatal(err)
	}
	v, _ := args.Nth(0)
	if v.Value.Primitive.Str != "current" {
		t.Errorf("$it = %v", v.Value)
	}
}

func TestUnboundVariableFails(t *testing.T) {
	call := &ast.Call{
		Positional: []ast.Expression{&ast.Variable{Name: "nope", Tag: litTag(0, 5)}},
	}

	if _, err := EvaluateArgs(call, NewRegistry(), value.EmptyScope(), "$nope"); err == nil {
		t.Fatal("expected an undefined-variable error")
	}
}

func TestEvaluationIsFailFast(t *testing.T) {
	// The first failing expression aborts the whole evaluation; nothing
	// partial is returned.
	call := &ast.Call{
		Positional: []ast.Expression{
			&ast.Variable{Name: "missing", Tag: litTag(0, 8)},
			&ast.StringLiteral{Text: "never", Tag: litTag(9, 14)},
		},
	}

	args, err := EvaluateArgs(call, NewRegistry(), value.EmptyScope(), "$missing never")
	if err == nil {
		t.Fatal("expected an error")
	}
	if args.Len() != 0 {
		t.Errorf("partial result leaked: %d positionals", args.Len())
	}
}

func TestSwitchBecomesBooleanTrue(t *testing.T) {
	named := ast.NewNamedArguments()
	named.Insert("now", ast.NamedValue{Switch: true, Tag: litTag(5, 10)})
	call := &ast.Call{Named: named}

	args, err := EvaluateArgs(call, NewRegistry(), value.EmptyScope(), "exit --now")
	if err != nil {
		t.Fatal(err)
	}
	if !args.Has("now") {
		t.Fatal("switch not recorded")
	}
	v, _ := args.GetNamed("now")
	if !v.IsPrimitive(value.KindBoolean) || !v.Value.Primitive.Bool {
		t.Errorf("switch value = %v, want boolean true", v.Value)
	}
	if v.Tag != litTag(5, 10) {
		t.Errorf("switch tag = %v, want the flag's own site", v.Tag)
	}
}

func TestBlockExprPassesThroughUnevaluated(t *testing.T) {
	block := value.FieldPathBlock(value.ParseColumnPath("name", tag.UnknownSpan()))
	call := &ast.Call{
		Positional: []ast.Expression{&ast.BlockExpr{Block: block, Tag: litTag(0, 6)}},
	}

	args, err := EvaluateArgs(call, NewRegistry(), value.EmptyScope(), "{name}")
	if err != nil {
		t.Fatal(err)
	}
	v, _ := args.Nth(0)
	if v.Value.Kind != value.ValueBlock {
		t.Fatalf("arg = %v, want a block", v.Value.TypeName())
	}
	// The stored block is a copy, so later evaluation is unaffected by the
	// caller's instance.
	if v.Value.Block == block {
		t.Error("block should be cloned, not shared")
	}
}

func TestNilCallYieldsEmptyArgs(t *testing.T) {
	args, err := EvaluateArgs(nil, NewRegistry(), value.EmptyScope(), "")
	if err != nil {
		t.Fatal(err)
	}
	if args.Len() != 0 || args.Has("anything") {
		t.Error("nil call should evaluate to no arguments")
	}
}

func TestBadNumberLiteral(t *testing.T) {
	call := &ast.Call{
		Positional: []ast.Expression{&ast.NumberLiteral{Text: "12x", Tag: litTag(0, 3)}},
	}
	if _, err := EvaluateArgs(call, NewRegistry(), value.EmptyScope(), "12x"); err == nil {
		t.Fatal("expected an invalid-number error")
	}
}
