package pipeline

import (
	"fmt"

	"github.com/sambeau/sorrel/pkg/sorrel/ast"
)

// RunPipeline evaluates a classified pipeline: each stage's output becomes
// the next stage's input, in strict FIFO order, and the final stream is
// rendered to the context's output writer (or discarded when the last stage
// was external and already wrote to the terminal).
//
// Stage-construction failures — unknown commands, argument evaluation
// errors, $it coercion failures, spawn failures — abort the run and are
// returned to the caller. Errors surfacing mid-stream are recorded on the
// context instead and truncate the stage that raised them.
func RunPipeline(p *ast.Pipeline, ctx *Context, source string) error {
	input := NewClassifiedInputStream()

	for i, stage := range p.Commands {
		last := i == len(p.Commands)-1

		switch {
		case stage.Internal != nil:
			stream, err := RunInternalCommand(stage.Internal, ctx, input, source)
			if err != nil {
				abandon(input)
				return err
			}
			input = FromInputStream(stream)

		case stage.External != nil:
			next := StreamLast
			if !last {
				if p.Commands[i+1].External != nil {
					next = StreamExternal
				} else {
					next = StreamInternal
				}
			}
			out, err := RunExternalCommand(stage.External, ctx, input, next)
			if err != nil {
				abandon(input)
				return err
			}
			input = out
		}
	}

	// Render or discard the final stream.
	for v := range input.Objects.Values() {
		if v.IsNothing() {
			continue
		}
		fmt.Fprintln(ctx.Out, v.DisplayString())
	}
	closeIfSet(input.Stdin)

	return nil
}

// abandon releases a transport whose consumer stage failed to construct, so
// upstream producers can unwind.
func abandon(input ClassifiedInputStream) {
	if input.Objects != nil {
		input.Objects.Close()
	}
	closeIfSet(input.Stdin)
}
