package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// Help pushes a help shell, scoped to one command when given a topic.
type Help struct{}

func (Help) Name() string { return "help" }

func (Help) Signature() pipeline.Signature {
	return pipeline.Build("help").
		Optional("topic", pipeline.ShapeString, "the command to describe")
}

func (Help) Usage() string {
	return "Browse help for the available commands."
}

func (Help) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	topic, present := args.Call.Args.Nth(0)

	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()
		args.Input.Drain()
		if !present {
			topic = value.Nothing().IntoValue(args.NameTag())
		}
		out.Send(pipeline.OfAction(pipeline.EnterHelpShell(topic)))
	}), nil
}
