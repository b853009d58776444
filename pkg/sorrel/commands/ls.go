package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
)

// Ls lists the contents of the current shell, whatever kind it is.
type Ls struct{}

func (Ls) Name() string { return "ls" }

func (Ls) Signature() pipeline.Signature {
	return pipeline.Build("ls").
		Optional("pattern", pipeline.ShapePattern, "a glob to filter entries")
}

func (Ls) Usage() string {
	return "List the contents of the current shell."
}

func (Ls) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	pattern, patTag, present, aerr := stringArg(args, 0)
	if aerr != nil {
		return nil, aerr
	}

	nameTag := args.NameTag()
	errTag := nameTag
	if present {
		errTag = patTag
	}

	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()
		args.Input.Drain()

		sh := args.Shells.Current()
		if sh == nil {
			out.Send(pipeline.OfError(errors.LabeledError(
				"Nothing to list", "no active shell", nameTag)))
			return
		}
		entries, lerr := sh.Ls(pattern, errTag)
		if lerr != nil {
			if serr, ok := lerr.(*errors.ShellError); ok {
				out.Send(pipeline.OfError(serr))
			} else {
				out.Send(pipeline.OfError(errors.LabeledError(
					"Could not list", lerr.Error(), errTag)))
			}
			return
		}
		for _, entry := range entries {
			if !out.Send(pipeline.OfValue(entry)) {
				return
			}
		}
	}), nil
}
