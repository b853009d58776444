package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
)

// First forwards only the leading rows of its input.
type First struct{}

func (First) Name() string { return "first" }

func (First) Signature() pipeline.Signature {
	return pipeline.Build("first").
		Optional("rows", pipeline.ShapeInt, "how many rows to keep (default 1)")
}

func (First) Usage() string {
	return "Show only the first number of rows."
}

func (First) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	n, present, aerr := intArg(args, 0, "first")
	if aerr != nil {
		return nil, aerr
	}
	if !present {
		n = 1
	}

	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()

		seen := int64(0)
		for v := range args.Input.Values() {
			if seen >= n {
				return
			}
			if !out.Send(pipeline.OfValue(v)) {
				return
			}
			seen++
		}
	}), nil
}
