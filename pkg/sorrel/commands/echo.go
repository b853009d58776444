package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
)

// Echo produces its arguments as output values.
type Echo struct{}

func (Echo) Name() string { return "echo" }

func (Echo) Signature() pipeline.Signature {
	return pipeline.Build("echo").
		Optional("rest", pipeline.ShapeAny, "the values to produce")
}

func (Echo) Usage() string {
	return "Echo the arguments back."
}

func (Echo) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()

		for _, v := range args.Call.Args.Positional {
			if !out.Send(pipeline.OfValue(v)) {
				return
			}
		}
	}), nil
}
