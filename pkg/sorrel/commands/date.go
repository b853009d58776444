package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// Date emits the current moment, or parses its argument into a date.
type Date struct{}

func (Date) Name() string { return "date" }

func (Date) Signature() pipeline.Signature {
	return pipeline.Build("date").
		Optional("text", pipeline.ShapeString, "a date string to parse")
}

func (Date) Usage() string {
	return "Emit the current date, or parse a date string."
}

func (Date) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	text, argTag, present, aerr := stringArg(args, 0)
	if aerr != nil {
		return nil, aerr
	}

	nameTag := args.NameTag()
	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()
		args.Input.Drain()

		if !present {
			out.Send(pipeline.OfValue(value.FromPrimitive(value.Now()).IntoValue(nameTag)))
			return
		}
		parsed, perr := value.ParseDate(text)
		if perr != nil {
			out.Send(pipeline.OfError(errors.LabeledError(
				"Could not parse as a date",
				"unrecognized date format",
				argTag,
			)))
			return
		}
		out.Send(pipeline.OfValue(value.FromPrimitive(parsed).IntoValue(argTag)))
	}), nil
}
