// Package repl provides the interactive prompt: line editing, history, tab
// completion over the registered commands, and per-line error reporting.
package repl

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/sambeau/sorrel/pkg/sorrel/parse"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
)

const PROMPT = "> "

const SORREL_LOGO = `
█▀ █▀█ █▀█ █▀█ █▀▀ █░░
▄█ █▄█ █▀▄ █▀▄ ██▄ █▄▄ `

// Options configures a REPL session.
type Options struct {
	HistoryFile string
	Prompt      string // %p expands to the current shell path
	Version     string
}

// Start runs the read-eval-print loop until the session ends. The context's
// shell stack supplies the prompt path; each line parses into a pipeline and
// runs against the shared context.
func Start(ctx *pipeline.Context, out io.Writer, opts Options) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	// Tab completion over registered command names
	line.SetCompleter(func(prefix string) []string {
		return filterCompletions(ctx.Registry.Names(), prefix)
	})

	if opts.HistoryFile != "" {
		if f, err := os.Open(opts.HistoryFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if opts.HistoryFile != "" {
			if f, err := os.Create(opts.HistoryFile); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}
	}()

	fmt.Fprintf(out, "%s", SORREL_LOGO)
	fmt.Fprintln(out, "v", opts.Version)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Type 'exit --now' or Ctrl+D to quit")
	fmt.Fprintln(out, "Use Tab for completion, ↑↓ for history")
	fmt.Fprintln(out, "")

	lineNo := 0
	for {
		input, err := line.Prompt(prompt(ctx, opts.Prompt))
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(out, "^C")
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(input)

		lineNo++
		anchor := fmt.Sprintf("line %d", lineNo)
		EvalLine(input, anchor, ctx, out)
	}
}

// EvalLine parses and runs one line against the context, printing any
// recorded errors with their source excerpts.
func EvalLine(input, anchor string, ctx *pipeline.Context, out io.Writer) {
	p, err := parse.ParsePipeline(input, ctx.Registry, anchor)
	if err != nil {
		printError(out, err, input)
		return
	}
	if p == nil {
		return
	}

	if rerr := pipeline.RunPipeline(p, ctx, input); rerr != nil {
		printError(out, rerr, input)
	}
	for _, serr := range ctx.TakeErrors() {
		fmt.Fprintln(out, serr.PrettyString(input))
	}
}

func printError(out io.Writer, err error, source string) {
	type pretty interface {
		PrettyString(source string) string
	}
	if p, ok := err.(pretty); ok {
		fmt.Fprintln(out, p.PrettyString(source))
		return
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}

// prompt renders the prompt template against the current shell path.
func prompt(ctx *pipeline.Context, template string) string {
	if template == "" {
		template = PROMPT
	}
	return strings.ReplaceAll(template, "%p", ctx.Shells.Path())
}

// filterCompletions returns registered names starting with the prefix
func filterCompletions(names []string, prefix string) []string {
	prefix = strings.ToLower(prefix)
	var completions []string
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			completions = append(completions, name)
		}
	}
	sort.Strings(completions)
	return completions
}
