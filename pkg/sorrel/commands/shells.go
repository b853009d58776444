package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
)

// Next cycles the active shell forward in the ring.
type Next struct{}

func (Next) Name() string { return "n" }

func (Next) Signature() pipeline.Signature {
	return pipeline.Build("n")
}

func (Next) Usage() string {
	return "Switch to the next shell."
}

func (Next) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()
		args.Input.Drain()
		out.Send(pipeline.OfAction(pipeline.NextShell()))
	}), nil
}

// Previous cycles the active shell backward in the ring.
type Previous struct{}

func (Previous) Name() string { return "p" }

func (Previous) Signature() pipeline.Signature {
	return pipeline.Build("p")
}

func (Previous) Usage() string {
	return "Switch to the previous shell."
}

func (Previous) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()
		args.Input.Drain()
		out.Send(pipeline.OfAction(pipeline.PreviousShell()))
	}), nil
}
