// Package parse reads one interactive line into a classified pipeline. It is
// a deliberately small reader: words, quotes, pipes, and flags — enough to
// drive the runtime from a prompt. It does not attempt a full grammar.
package parse

import (
	"strings"

	"github.com/sambeau/sorrel/pkg/sorrel/ast"
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
)

// word is one token of the line, with the byte span it occupies. Text keeps
// the original characters, quotes included.
type word struct {
	text string
	span tag.Span
}

func (w word) tag(anchor string) tag.Tag {
	return tag.New(w.span, anchor)
}

// ParsePipeline reads a line into pipeline stages. The head word of each
// stage decides its kind: a registered name runs in-process, anything else
// spawns a subprocess. Anchor names the origin of the line for tags.
func ParsePipeline(line string, reg *pipeline.Registry, anchor string) (*ast.Pipeline, error) {
	stages, err := splitStages(line, anchor)
	if err != nil {
		return nil, err
	}

	p := &ast.Pipeline{}
	for _, stage := range stages {
		if len(stage) == 0 {
			return nil, errors.UntaggedError("Empty pipeline stage")
		}
		head := stage[0]
		name := unquote(head.text)
		if reg.Has(name) {
			cmd, perr := parseInternal(name, head, stage[1:], reg, anchor)
			if perr != nil {
				return nil, perr
			}
			p.Commands = append(p.Commands, ast.ClassifiedCommand{Internal: cmd})
			continue
		}
		p.Commands = append(p.Commands, ast.ClassifiedCommand{External: parseExternal(name, head, stage[1:], anchor)})
	}
	if len(p.Commands) == 0 {
		return nil, nil
	}
	return p, nil
}

// splitStages tokenizes the line and splits it on unquoted pipes.
func splitStages(line string, anchor string) ([][]word, error) {
	words, err := tokenize(line, anchor)
	if err != nil {
		return nil, err
	}

	var stages [][]word
	var current []word
	sawPipe := false
	for _, w := range words {
		if w.text == "|" {
			if len(current) == 0 {
				return nil, errors.LabeledError("Broken pipeline", "nothing before this pipe", tag.New(w.span, anchor))
			}
			stages = append(stages, current)
			current = nil
			sawPipe = true
			continue
		}
		current = append(current, w)
	}
	if sawPipe && len(current) == 0 {
		last := words[len(words)-1]
		return nil, errors.LabeledError("Broken pipeline", "nothing after this pipe", tag.New(last.span, anchor))
	}
	if len(current) > 0 {
		stages = append(stages, current)
	}
	return stages, nil
}

// tokenize splits the line into whitespace-separated words. Quoted runs keep
// their quote characters and may contain spaces and pipes.
func tokenize(line string, anchor string) ([]word, error) {
	var words []word
	i := 0
	for i < len(line) {
		if line[i] == ' ' || line[i] == '\t' {
			i++
			continue
		}
		if line[i] == '|' {
			words = append(words, word{text: "|", span: tag.NewSpan(i, i+1)})
			i++
			continue
		}
		start := i
		for i < len(line) && line[i] != ' ' && line[i] != '\t' && line[i] != '|' {
			if line[i] == '"' || line[i] == '\'' {
				quote := line[i]
				i++
				for i < len(line) && line[i] != quote {
					i++
				}
				if i >= len(line) {
					return nil, errors.LabeledError("Unclosed quote", "quote opened here", tag.New(tag.NewSpan(start, start+1), anchor))
				}
			}
			i++
		}
		words = append(words, word{text: line[start:i], span: tag.NewSpan(start, i)})
	}
	return words, nil
}

// parseInternal shapes a stage's words into a call using the command's
// signature: flags are matched against declared names, everything else fills
// positional slots in order.
func parseInternal(name string, head word, rest []word, reg *pipeline.Registry, anchor string) (*ast.InternalCommand, error) {
	cmd, _ := reg.Get(name)
	sig := cmd.Signature()

	call := &ast.Call{Span: head.span}
	named := ast.NewNamedArguments()

	for i := 0; i < len(rest); i++ {
		w := rest[i]
		if strings.HasPrefix(w.text, "--") {
			flagName := w.text[2:]
			flag, ok := sig.FindFlag(flagName)
			if !ok {
				return nil, errors.LabeledError(
					name+" does not know this flag",
					"unknown flag",
					w.tag(anchor),
				)
			}
			if flag.Switch {
				named.Insert(flagName, ast.NamedValue{Switch: true, Tag: w.tag(anchor)})
				continue
			}
			if i+1 >= len(rest) {
				return nil, errors.LabeledError(
					name+" needs a value for this flag",
					"missing value",
					w.tag(anchor),
				)
			}
			i++
			named.Insert(flagName, ast.NamedValue{Tag: w.tag(anchor), Expr: shapeWord(rest[i], anchor)})
			continue
		}
		call.Positional = append(call.Positional, shapeWord(w, anchor))
	}

	for i, slot := range sig.Positional {
		if slot.Required && len(call.Positional) <= i {
			return nil, errors.ArgumentError(name, "requires "+slot.Name, head.tag(anchor))
		}
	}
	if named.Len() > 0 {
		call.Named = named
	}
	if len(rest) > 0 {
		call.Span = head.span.Until(rest[len(rest)-1].span)
	}

	return &ast.InternalCommand{Name: name, NameTag: head.tag(anchor), Call: call}, nil
}

// shapeWord classifies one bare word into an expression node.
func shapeWord(w word, anchor string) ast.Expression {
	t := w.tag(anchor)
	text := w.text

	if strings.HasPrefix(text, "$") && len(text) > 1 {
		return &ast.Variable{Name: text[1:], Tag: t}
	}
	if len(text) > 1 && (text[0] == '"' || text[0] == '\'') {
		return &ast.StringLiteral{Text: unquote(text), Tag: t}
	}
	if isNumber(text) {
		return &ast.NumberLiteral{Text: text, Tag: t}
	}
	if strings.ContainsAny(text, "*?") {
		return &ast.PatternLiteral{Glob: text, Tag: t}
	}
	return &ast.StringLiteral{Text: text, Tag: t}
}

// parseExternal keeps the stage's words verbatim, quotes and all; the
// subprocess driver owns quote handling and substitution.
func parseExternal(name string, head word, rest []word, anchor string) *ast.ExternalCommand {
	ec := &ast.ExternalCommand{Name: name, NameTag: head.tag(anchor)}
	for _, w := range rest {
		ec.Args = append(ec.Args, ast.ExternalArg{Arg: w.text, Tag: w.tag(anchor)})
	}
	return ec
}

// unquote strips one layer of matching outer quotes.
func unquote(s string) string {
	if len(s) > 1 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// isNumber reports whether the word reads as a decimal number, optionally
// signed, optionally with a fractional part.
func isNumber(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" || s == "." {
		return false
	}
	dots := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			dots++
			if dots > 1 {
				return false
			}
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
