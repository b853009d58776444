package pipeline

import (
	"bytes"
	gocontext "context"
	"io"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/sambeau/sorrel/pkg/sorrel/ast"
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// StreamNext tells the external driver what follows this stage, which decides
// how stdout is wired.
type StreamNext int

const (
	// StreamLast leaves stdout attached to the controlling terminal.
	StreamLast StreamNext = iota
	// StreamExternal forwards the raw stdout handle to the next subprocess.
	StreamExternal
	// StreamInternal decodes stdout into line-delimited string values.
	StreamInternal
)

// RunExternalCommand represents one pipeline stage as an OS process.
//
// When the literal substring "$it" appears in the command name or any
// argument, the stage runs once per input row: the rows' string forms are
// substituted into per-row argument lists, joined into a single
// shell-interpreted command line with " && ", and run by the in-process
// shell. Otherwise the process is spawned directly, once.
func RunExternalCommand(ec *ast.ExternalCommand, ctx *Context, input ClassifiedInputStream, next StreamNext) (ClassifiedInputStream, error) {
	stdin := input.Stdin
	inputs := input.Objects.Drain()

	externalLog.Debug("->", "command", ec.Name, "inputs", len(inputs))

	argText := ec.Name
	for _, a := range ec.Args {
		argText += a.Arg
	}

	home, _ := os.UserHomeDir()

	if strings.Contains(argText, "$it") {
		line, err := buildItShellLine(ec, inputs, home)
		if err != nil {
			return ClassifiedInputStream{}, err
		}
		externalLog.Debug("shell line", "line", line)
		return runShellLine(ec, ctx, line, stdin, next)
	}

	args := make([]string, len(ec.Args))
	for i, a := range ec.Args {
		args[i] = transformExternalArg(a.Arg, home)
	}
	return runDirect(ec, ctx, args, stdin, next)
}

// buildItShellLine coerces every input row to its string form and builds one
// shell command line per row, joined with " && ". A row that cannot coerce
// aborts before anything is spawned, blaming the first argument textually
// containing "$it", or the command itself when no argument does.
func buildItShellLine(ec *ast.ExternalCommand, inputs []value.Value, home string) (string, error) {
	rows := make([]string, len(inputs))
	for i, in := range inputs {
		s, cerr := value.AsString(in)
		if cerr != nil {
			for _, a := range ec.Args {
				if strings.Contains(a.Arg, "$it") {
					return "", errors.LabeledError(
						"External $it needs string data",
						"given row instead of string data",
						a.Tag,
					)
				}
			}
			return "", errors.LabeledError(
				"$it needs string data",
				"given something else",
				ec.NameTag,
			)
		}
		rows[i] = s
	}

	commands := make([]string, len(rows))
	for i, row := range rows {
		var args []string
		for _, a := range ec.Args {
			if strings.TrimSpace(a.Arg) == "" {
				continue
			}
			arg := strings.ReplaceAll(a.Arg, "~", home)
			args = append(args, strings.ReplaceAll(arg, "$it", row))
		}
		commands[i] = strings.TrimSpace(ec.Name + " " + strings.Join(args, " "))
	}

	return strings.Join(commands, " && "), nil
}

// transformExternalArg applies the two single-mode argument transforms, in
// order: a blind substring replacement of "~" with the home directory (not
// restricted to path position; a literal interior "~" is rewritten too), then
// stripping a matching pair of outer double quotes.
func transformExternalArg(arg, home string) string {
	arg = strings.ReplaceAll(arg, "~", home)
	if len(arg) > 1 && arg[0] == '"' && arg[len(arg)-1] == '"' {
		return arg[1 : len(arg)-1]
	}
	return arg
}

// runShellLine executes a joined per-row command line through the in-process
// POSIX shell interpreter: one invocation, sequential, short-circuiting.
func runShellLine(ec *ast.ExternalCommand, ctx *Context, line string, stdin io.ReadCloser, next StreamNext) (ClassifiedInputStream, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		return ClassifiedInputStream{}, errors.LabeledError(
			"Invalid external command line",
			"could not be interpreted by the shell",
			ec.NameTag,
		)
	}

	var in io.Reader = os.Stdin
	if stdin != nil {
		in = stdin
	}
	cwd := ctx.Shells.Path()

	if next == StreamLast {
		runner, err := interp.New(
			interp.Dir(cwd),
			interp.StdIO(in, os.Stdout, os.Stderr),
		)
		if err != nil {
			return ClassifiedInputStream{}, errors.UntaggedError(err.Error())
		}
		// Blocking run: the driver holds until the whole joined line exits.
		_ = runner.Run(gocontext.Background(), file)
		closeIfSet(stdin)
		return NewClassifiedInputStream(), nil
	}

	pr, pw := io.Pipe()
	runner, err := interp.New(
		interp.Dir(cwd),
		interp.StdIO(in, pw, os.Stderr),
	)
	if err != nil {
		return ClassifiedInputStream{}, errors.UntaggedError(err.Error())
	}
	go func() {
		_ = runner.Run(gocontext.Background(), file)
		pw.Close()
		closeIfSet(stdin)
	}()

	if next == StreamExternal {
		return FromStdout(pr), nil
	}
	return FromInputStream(decodeLines(pr, ec.NameTag)), nil
}

// runDirect spawns the stage as a single process with an argument vector and
// no shell interpretation.
func runDirect(ec *ast.ExternalCommand, ctx *Context, args []string, stdin io.ReadCloser, next StreamNext) (ClassifiedInputStream, error) {
	cmd := exec.Command(ec.Name, args...)
	cmd.Dir = ctx.Shells.Path()
	cmd.Stderr = os.Stderr
	if stdin != nil {
		cmd.Stdin = stdin
	} else {
		cmd.Stdin = os.Stdin
	}

	externalLog.Debug("spawn", "command", ec.Name, "cwd", cmd.Dir, "next", next)

	if next == StreamLast {
		cmd.Stdout = os.Stdout
		if err := cmd.Start(); err != nil {
			return ClassifiedInputStream{}, errors.SpawnError(ec.Name, ec.NameTag)
		}
		_ = cmd.Wait()
		closeIfSet(stdin)
		return NewClassifiedInputStream(), nil
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return ClassifiedInputStream{}, errors.UntaggedError(err.Error())
	}
	cmd.Stdout = pw
	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return ClassifiedInputStream{}, errors.SpawnError(ec.Name, ec.NameTag)
	}
	// The child holds its own copy of the write end; release ours so the
	// read side sees EOF when the process exits.
	pw.Close()
	go func() {
		_ = cmd.Wait()
		closeIfSet(stdin)
	}()

	if next == StreamExternal {
		return FromStdout(pr), nil
	}
	return FromInputStream(decodeLines(pr, ec.NameTag)), nil
}

// decodeLines bridges raw subprocess stdout back into the typed pipeline:
// bytes are split by the line codec and emitted as string values tagged with
// the spawning stage's own tag.
func decodeLines(r io.ReadCloser, t tag.Tag) *InputStream {
	return NewInputStream(func(out *InputStream) {
		defer r.Close()

		codec := LinesCodec{}
		var buf bytes.Buffer
		chunk := make([]byte, 4096)

		emit := func() bool {
			for {
				record, ok := codec.Decode(&buf)
				if !ok {
					return true
				}
				if !out.Send(value.String(record).IntoValue(t)) {
					return false
				}
			}
		}

		for {
			n, err := r.Read(chunk)
			if n > 0 {
				buf.Write(chunk[:n])
				if !emit() {
					return
				}
			}
			if err != nil {
				emit()
				return
			}
		}
	})
}

func closeIfSet(c io.Closer) {
	if c != nil {
		c.Close()
	}
}
