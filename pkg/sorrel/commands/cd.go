package commands

import (
	"os"
	"path/filepath"

	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
)

// Cd changes the current shell's working path. With no argument it moves to
// the home directory.
type Cd struct{}

func (Cd) Name() string { return "cd" }

func (Cd) Signature() pipeline.Signature {
	return pipeline.Build("cd").
		Optional("directory", pipeline.ShapePath, "the directory to change to")
}

func (Cd) Usage() string {
	return "Change the current directory."
}

func (Cd) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	text, argTag, present, aerr := stringArg(args, 0)
	if aerr != nil {
		return nil, aerr
	}

	target := text
	errTag := argTag
	if !present {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return nil, errors.LabeledError("Cannot change directory", "no home directory", args.NameTag())
		}
		target = home
		errTag = args.NameTag()
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(args.Shells.Path(), target)
	}
	target = filepath.Clean(target)

	info, serr := os.Stat(target)
	if serr != nil {
		return nil, errors.LabeledError("Cannot change directory", "directory not found", errTag)
	}
	if !info.IsDir() {
		return nil, errors.LabeledError("Cannot change directory", "is not a directory", errTag)
	}

	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()
		args.Input.Drain()
		out.Send(pipeline.OfAction(pipeline.ChangePath(target)))
	}), nil
}
