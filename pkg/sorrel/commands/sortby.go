package commands

import (
	"sort"

	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// SortBy orders rows by the primitive at a column path. Only primitives have
// a total order; a key landing on a row, table, block, or error rejects the
// sort.
type SortBy struct{}

func (SortBy) Name() string { return "sort-by" }

func (SortBy) Signature() pipeline.Signature {
	return pipeline.Build("sort-by").
		Required("path", pipeline.ShapeColumnPath, "the column path to sort by")
}

func (SortBy) Usage() string {
	return "Sort rows by the value at a column path."
}

func (SortBy) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	text, argTag, present, aerr := stringArg(args, 0)
	if aerr != nil {
		return nil, aerr
	}
	if !present {
		return nil, errors.ArgumentError("sort-by", "requires a column path", args.NameTag())
	}
	path := value.ParseColumnPath(text, argTag.Span)

	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()

		type keyed struct {
			key value.Primitive
			v   value.Value
		}

		var rows []keyed
		for v := range args.Input.Values() {
			item, serr := value.GetPath(v, path, argTag.Anchor)
			if serr != nil {
				out.Send(pipeline.OfError(serr))
				return
			}
			if item.Value.Kind != value.ValuePrimitive {
				out.Send(pipeline.OfError(errors.LabeledErrorWithSecondary(
					"Cannot sort by a "+item.Value.TypeName(),
					"sort keys must be primitives",
					argTag,
					"value originates from here",
					item.Tag,
				)))
				return
			}
			rows = append(rows, keyed{key: item.Value.Primitive, v: v})
		}

		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].key.Compare(rows[j].key) < 0
		})

		for _, row := range rows {
			if !out.Send(pipeline.OfValue(row.v)) {
				return
			}
		}
	}), nil
}
