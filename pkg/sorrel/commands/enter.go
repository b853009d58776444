package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// Enter pushes a new shell. Given a path it opens a filesystem shell there;
// given structured pipeline input and no argument, it opens a value shell
// browsing that structure.
type Enter struct{}

func (Enter) Name() string { return "enter" }

func (Enter) Signature() pipeline.Signature {
	return pipeline.Build("enter").
		Optional("location", pipeline.ShapePath, "the directory to enter")
}

func (Enter) Usage() string {
	return "Enter a new shell at a directory, or browse a piped value."
}

func (Enter) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	text, _, present, aerr := stringArg(args, 0)
	if aerr != nil {
		return nil, aerr
	}

	nameTag := args.NameTag()
	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()

		if present {
			args.Input.Drain()
			out.Send(pipeline.OfAction(pipeline.EnterShell(text)))
			return
		}

		entered := false
		for v := range args.Input.Values() {
			if v.IsNothing() {
				continue
			}
			if v.Value.Kind != value.ValueRow && v.Value.Kind != value.ValueTable {
				out.Send(pipeline.OfError(errors.LabeledErrorWithSecondary(
					"Can only enter structured data",
					"requires a row or table",
					nameTag,
					"value originates from here",
					v.Tag,
				)))
				return
			}
			out.Send(pipeline.OfAction(pipeline.EnterValueShell(v)))
			entered = true
		}
		if !entered {
			out.Send(pipeline.OfError(errors.ArgumentError(
				"enter", "requires a location or piped input", nameTag)))
		}
	}), nil
}
