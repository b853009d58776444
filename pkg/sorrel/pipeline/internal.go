package pipeline

import (
	"github.com/sambeau/sorrel/pkg/sorrel/ast"
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// RunInternalCommand executes one registered command stage: it resolves the
// command, evaluates its arguments, invokes the handler, and drains the lazy
// result sequence, interpreting control actions along the way.
//
// The returned stream carries the stage's ordinary output. Any error item in
// the result sequence is recorded on the context and closes the stream early;
// downstream stages observe end-of-stream, never an error value.
func RunInternalCommand(ic *ast.InternalCommand, ctx *Context, input ClassifiedInputStream, source string) (*InputStream, error) {
	internalLog.Debug("->", "command", ic.Name)

	cmd, ok := ctx.Registry.Get(ic.Name)
	if !ok {
		return nil, errors.UndefinedError("command", ic.Name, ic.NameTag)
	}

	args, err := EvaluateArgs(ic.Call, ctx.Registry, value.EmptyScope(), source)
	if err != nil {
		return nil, err
	}

	output, err := cmd.Run(CommandArgs{
		Call:     CallInfo{Args: args, NameTag: ic.NameTag},
		Input:    input.Objects,
		Registry: ctx.Registry,
		Shells:   ctx.Shells,
	})
	if err != nil {
		return nil, err
	}

	width := hostWidth() - debugMargin

	stream := NewInputStream(func(out *InputStream) {
		defer output.Close()
		for item := range output.Values() {
			switch item.Kind {
			case ReturnPlainValue:
				if !out.Send(item.Value) {
					return
				}
			case ReturnDebugValue:
				rendered := value.DebugString(item.Value, width)
				if !out.Send(value.String(rendered).IntoUntaggedValue()) {
					return
				}
			case ReturnAction:
				internalLog.Debug("action", "command", ic.Name, "kind", item.Action.Kind)
				if stop := ctx.applyAction(item.Action); stop {
					return
				}
			case ReturnErr:
				ctx.OnError(item.Err)
				return
			}
		}
	})

	return stream, nil
}
