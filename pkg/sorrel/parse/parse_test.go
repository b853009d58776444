package parse

import (
	"testing"

	"github.com/sambeau/sorrel/pkg/sorrel/ast"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
)

type nopCommand struct {
	name string
	sig  pipeline.Signature
}

func (c nopCommand) Name() string                 { return c.name }
func (c nopCommand) Signature() pipeline.Signature { return c.sig }
func (c nopCommand) Usage() string                { return c.name }
func (c nopCommand) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	return pipeline.OutputFromReturnValues(), nil
}

func testRegistry() *pipeline.Registry {
	reg := pipeline.NewRegistry()
	reg.Register(nopCommand{name: "lines", sig: pipeline.Build("lines")})
	reg.Register(nopCommand{name: "first", sig: pipeline.Build("first").
		Optional("rows", pipeline.ShapeInt, "rows")})
	reg.Register(nopCommand{name: "exit", sig: pipeline.Build("exit").
		Switch("now", "quit immediately")})
	reg.Register(nopCommand{name: "get", sig: pipeline.Build("get").
		Required("path", pipeline.ShapeColumnPath, "path")})
	return reg
}

func TestClassifiesStagesByRegistry(t *testing.T) {
	p, err := ParsePipeline("cat notes.txt | lines | first 3", testRegistry(), "line 1")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Commands) != 3 {
		t.Fatalf("stages = %d, want 3", len(p.Commands))
	}
	if p.Commands[0].External == nil || p.Commands[0].External.Name != "cat" {
		t.Errorf("stage 0 = %+v, want external cat", p.Commands[0])
	}
	if p.Commands[1].Internal == nil || p.Commands[1].Internal.Name != "lines" {
		t.Errorf("stage 1 = %+v, want internal lines", p.Commands[1])
	}
	if p.Commands[2].Internal == nil {
		t.Fatalf("stage 2 = %+v, want internal first", p.Commands[2])
	}
}

func TestNumberArgumentsShape(t *testing.T) {
	p, err := ParsePipeline("first 3", testRegistry(), "line 1")
	if err != nil {
		t.Fatal(err)
	}
	pos := p.Commands[0].Internal.Positional()
	if len(pos) != 1 {
		t.Fatalf("positional = %d, want 1", len(pos))
	}
	num, ok := pos[0].(*ast.NumberLiteral)
	if !ok {
		t.Fatalf("arg = %T, want number literal", pos[0])
	}
	if num.Text != "3" {
		t.Errorf("text = %q", num.Text)
	}
}

func TestQuotedStringsKeepSpacesAndLoseQuotes(t *testing.T) {
	p, err := ParsePipeline(`get "deep path"`, testRegistry(), "line 1")
	if err != nil {
		t.Fatal(err)
	}
	pos := p.Commands[0].Internal.Positional()
	str, ok := pos[0].(*ast.StringLiteral)
	if !ok {
		t.Fatalf("arg = %T, want string literal", pos[0])
	}
	if str.Text != "deep path" {
		t.Errorf("text = %q", str.Text)
	}
	// The tag spans the original token, quotes included.
	if got := str.Tag.Slice(`get "deep path"`); got != `"deep path"` {
		t.Errorf("tag slices %q", got)
	}
}

func TestGlobBecomesPattern(t *testing.T) {
	reg := testRegistry()
	reg.Register(nopCommand{name: "ls", sig: pipeline.Build("ls").
		Optional("pattern", pipeline.ShapePattern, "filter")})

	p, err := ParsePipeline("ls *.txt", reg, "line 1")
	if err != nil {
		t.Fatal(err)
	}
	pos := p.Commands[0].Internal.Positional()
	glob, ok := pos[0].(*ast.PatternLiteral)
	if !ok {
		t.Fatalf("arg = %T, want pattern literal", pos[0])
	}
	if glob.Glob != "*.txt" {
		t.Errorf("glob = %q", glob.Glob)
	}
}

func TestDollarWordBecomesVariable(t *testing.T) {
	reg := testRegistry()
	reg.Register(nopCommand{name: "echo", sig: pipeline.Build("echo").
		Optional("rest", pipeline.ShapeAny, "values")})

	p, err := ParsePipeline("echo $it", reg, "line 1")
	if err != nil {
		t.Fatal(err)
	}
	pos := p.Commands[0].Internal.Positional()
	v, ok := pos[0].(*ast.Variable)
	if !ok {
		t.Fatalf("arg = %T, want variable", pos[0])
	}
	if v.Name != "it" {
		t.Errorf("name = %q", v.Name)
	}
}

func TestSwitchFlagParses(t *testing.T) {
	p, err := ParsePipeline("exit --now", testRegistry(), "line 1")
	if err != nil {
		t.Fatal(err)
	}
	call := p.Commands[0].Internal.Call
	if call.Named == nil {
		t.Fatal("named arguments missing")
	}
	nv, ok := call.Named.Get("now")
	if !ok || !nv.Switch {
		t.Errorf("now = %+v", nv)
	}
}

func TestUnknownFlagFails(t *testing.T) {
	if _, err := ParsePipeline("exit --fast", testRegistry(), "line 1"); err == nil {
		t.Fatal("expected an unknown-flag error")
	}
}

func TestMissingRequiredArgumentFails(t *testing.T) {
	if _, err := ParsePipeline("get", testRegistry(), "line 1"); err == nil {
		t.Fatal("expected a missing-argument error")
	}
}

func TestExternalArgsKeepQuotes(t *testing.T) {
	p, err := ParsePipeline(`grep "a phrase" notes.txt`, testRegistry(), "line 1")
	if err != nil {
		t.Fatal(err)
	}
	ec := p.Commands[0].External
	if ec == nil {
		t.Fatal("grep should classify as external")
	}
	if len(ec.Args) != 2 {
		t.Fatalf("args = %d, want 2", len(ec.Args))
	}
	// External arguments stay verbatim; the subprocess driver owns quote
	// handling and substitution.
	if ec.Args[0].Arg != `"a phrase"` {
		t.Errorf("arg 0 = %q", ec.Args[0].Arg)
	}
}

func TestPipeInsideQuotesIsLiteral(t *testing.T) {
	p, err := ParsePipeline(`grep "a|b"`, testRegistry(), "line 1")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Commands) != 1 {
		t.Fatalf("stages = %d, want 1", len(p.Commands))
	}
}

func TestBrokenPipelines(t *testing.T) {
	for _, line := range []string{"| lines", "lines |", "lines | | first"} {
		if _, err := ParsePipeline(line, testRegistry(), "line 1"); err == nil {
			t.Errorf("%q should fail to parse", line)
		}
	}
}

func TestUnclosedQuoteFails(t *testing.T) {
	if _, err := ParsePipeline(`grep "unclosed`, testRegistry(), "line 1"); err == nil {
		t.Fatal("expected an unclosed-quote error")
	}
}

func TestEmptyLineParsesToNothing(t *testing.T) {
	p, err := ParsePipeline("   ", testRegistry(), "line 1")
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Errorf("pipeline = %+v, want nil", p)
	}
}
