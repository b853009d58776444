package commands

import (
	"strings"

	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// Lines splits each string flowing through the pipeline into rows, one per
// line, dropping lines that are empty or whitespace-only.
type Lines struct{}

func (Lines) Name() string { return "lines" }

func (Lines) Signature() pipeline.Signature {
	return pipeline.Build("lines")
}

func (Lines) Usage() string {
	return "Split single string into rows, one per line."
}

func (Lines) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	nameTag := args.NameTag()

	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()

		for v := range args.Input.Values() {
			if !v.IsPrimitive(value.KindString) {
				out.Send(pipeline.OfError(errors.LabeledErrorWithSecondary(
					"Expected a string from pipeline",
					"requires string input",
					nameTag,
					"value originates from here",
					v.Tag,
				)))
				return
			}

			for _, line := range strings.Split(v.Value.Primitive.Str, "\n") {
				if strings.TrimSpace(line) == "" {
					continue
				}
				if !out.Send(pipeline.OfValue(value.String(line).IntoUntaggedValue())) {
					return
				}
			}
		}
	}), nil
}
