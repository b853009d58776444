package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// Get extracts the value at a column path from each row.
type Get struct{}

func (Get) Name() string { return "get" }

func (Get) Signature() pipeline.Signature {
	return pipeline.Build("get").
		Required("path", pipeline.ShapeColumnPath, "the column path to extract")
}

func (Get) Usage() string {
	return "Get the value at a column path from each row."
}

func (Get) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	text, argTag, present, aerr := stringArg(args, 0)
	if aerr != nil {
		return nil, aerr
	}
	if !present {
		return nil, errors.ArgumentError("get", "requires a column path", args.NameTag())
	}
	path := value.ParseColumnPath(text, argTag.Span)

	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()

		for v := range args.Input.Values() {
			item, serr := value.GetPath(v, path, argTag.Anchor)
			if serr != nil {
				out.Send(pipeline.OfError(serr))
				return
			}
			// A path landing on a table flattens into its rows.
			if item.Value.Kind == value.ValueTable {
				for _, element := range item.Value.Table {
					if !out.Send(pipeline.OfValue(element)) {
						return
					}
				}
				continue
			}
			if !out.Send(pipeline.OfValue(item)) {
				return
			}
		}
	}), nil
}
