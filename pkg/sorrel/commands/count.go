package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// Count reduces its input to the number of rows that flowed through.
type Count struct{}

func (Count) Name() string { return "count" }

func (Count) Signature() pipeline.Signature {
	return pipeline.Build("count")
}

func (Count) Usage() string {
	return "Count the number of rows in the pipeline."
}

func (Count) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	nameTag := args.NameTag()

	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()

		var n int64
		for range args.Input.Values() {
			n++
		}
		out.Send(pipeline.OfValue(value.IntFromInt64(n).IntoValue(nameTag)))
	}), nil
}
