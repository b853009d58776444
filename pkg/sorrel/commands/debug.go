package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
)

// Debug renders each input with its type annotations visible.
type Debug struct{}

func (Debug) Name() string { return "debug" }

func (Debug) Signature() pipeline.Signature {
	return pipeline.Build("debug")
}

func (Debug) Usage() string {
	return "Print the inspected form of each value in the pipeline."
}

func (Debug) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()
		for v := range args.Input.Values() {
			if !out.Send(pipeline.OfDebugValue(v)) {
				return
			}
		}
	}), nil
}
