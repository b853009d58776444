package pipeline

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
	"golang.org/x/term"
)

// Trace loggers for the two drivers, mirroring the stage classification.
var (
	internalLog = log.WithPrefix("sorrel:run:internal")
	externalLog = log.WithPrefix("sorrel:run:external")
)

// debugMargin is subtracted from the host terminal width when rendering
// DebugValue output.
const debugMargin = 5

// ShellStack is the ordered collection of active navigation contexts plus the
// active cursor. Manipulated only through control actions.
type ShellStack struct {
	shells  []Shell
	current int
}

// NewShellStack creates a stack holding one initial shell.
func NewShellStack(initial Shell) *ShellStack {
	return &ShellStack{shells: []Shell{initial}}
}

// Current returns the active shell.
func (st *ShellStack) Current() Shell {
	if st.IsEmpty() {
		return nil
	}
	return st.shells[st.current]
}

// Len returns the number of shells on the stack.
func (st *ShellStack) Len() int {
	return len(st.shells)
}

// IsEmpty reports whether no shells remain.
func (st *ShellStack) IsEmpty() bool {
	return len(st.shells) == 0
}

// InsertAtCurrent pushes a shell just after the active position and makes it
// the active shell.
func (st *ShellStack) InsertAtCurrent(s Shell) {
	at := st.current + 1
	if st.IsEmpty() {
		at = 0
	}
	st.shells = append(st.shells[:at], append([]Shell{s}, st.shells[at:]...)...)
	st.current = at
}

// RemoveAtCurrent pops the active shell. The cursor moves to the previous
// shell, or stays at zero.
func (st *ShellStack) RemoveAtCurrent() {
	if st.IsEmpty() {
		return
	}
	st.shells = append(st.shells[:st.current], st.shells[st.current+1:]...)
	if st.current >= len(st.shells) && st.current > 0 {
		st.current--
	}
}

// Prev moves the active cursor back, wrapping around. Stack size is
// unchanged.
func (st *ShellStack) Prev() {
	if st.Len() < 2 {
		return
	}
	st.current--
	if st.current < 0 {
		st.current = len(st.shells) - 1
	}
}

// Next moves the active cursor forward, wrapping around. Stack size is
// unchanged.
func (st *ShellStack) Next() {
	if st.Len() < 2 {
		return
	}
	st.current++
	if st.current >= len(st.shells) {
		st.current = 0
	}
}

// Path returns the active shell's working path.
func (st *ShellStack) Path() string {
	if sh := st.Current(); sh != nil {
		return sh.Path()
	}
	return ""
}

// SetPath moves the active shell's working path.
func (st *ShellStack) SetPath(path string) {
	if sh := st.Current(); sh != nil {
		sh.SetPath(path)
	}
}

// Context is the mutable execution state shared across one pipeline run: the
// shell stack, the command registry, the shell factory, and the errors
// recorded so far. Action effects are applied only by the internal driver's
// drain loop, which owns the context for the duration of a run.
type Context struct {
	Registry *Registry
	Shells   *ShellStack
	Factory  ShellFactory
	Out      io.Writer // final-stage rendering

	errs []*errors.ShellError
	exit func(code int)
}

// NewContext creates a context over a registry, a shell factory, and the
// initial shell.
func NewContext(reg *Registry, factory ShellFactory, initial Shell) *Context {
	return &Context{
		Registry: reg,
		Shells:   NewShellStack(initial),
		Factory:  factory,
		Out:      os.Stdout,
		exit:     os.Exit,
	}
}

// OnError records an error surfaced during a stage.
func (ctx *Context) OnError(err *errors.ShellError) {
	ctx.errs = append(ctx.errs, err)
}

// Errors returns the errors recorded so far.
func (ctx *Context) Errors() []*errors.ShellError {
	return ctx.errs
}

// TakeErrors returns the recorded errors and clears them, typically once per
// interactive line.
func (ctx *Context) TakeErrors() []*errors.ShellError {
	errs := ctx.errs
	ctx.errs = nil
	return errs
}

// applyAction applies one control directive to the context. It reports
// whether the driver should stop consuming the stage's remaining output.
func (ctx *Context) applyAction(a *CommandAction) bool {
	switch a.Kind {
	case ActionChangePath:
		ctx.Shells.SetPath(a.Path)
	case ActionExit:
		ctx.exit(0)
	case ActionError:
		ctx.OnError(a.Err)
		return true
	case ActionEnterHelpShell:
		var (
			sh  Shell
			err error
		)
		if a.Value.IsPrimitive(value.KindString) {
			sh, err = ctx.Factory.HelpForCommand(a.Value.Value.Primitive.Str, ctx.Registry)
		} else {
			sh, err = ctx.Factory.HelpIndex(ctx.Registry)
		}
		if err != nil {
			ctx.OnError(errors.UntaggedError(err.Error()))
			return false
		}
		ctx.Shells.InsertAtCurrent(sh)
	case ActionEnterValueShell:
		ctx.Shells.InsertAtCurrent(ctx.Factory.ValueBrowser(a.Value))
	case ActionEnterShell:
		sh, err := ctx.Factory.Filesystem(a.Location)
		if err != nil {
			ctx.OnError(errors.UntaggedError(err.Error()))
			return false
		}
		ctx.Shells.InsertAtCurrent(sh)
	case ActionPreviousShell:
		ctx.Shells.Prev()
	case ActionNextShell:
		ctx.Shells.Next()
	case ActionLeaveShell:
		ctx.Shells.RemoveAtCurrent()
		if ctx.Shells.IsEmpty() {
			ctx.exit(0)
		}
	}
	return false
}

// hostWidth returns the controlling terminal's width, or a conventional
// fallback when stdout is not a terminal.
func hostWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
