package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
)

// Exit leaves the current shell. The last shell leaving ends the session,
// and --now skips straight to quitting.
type Exit struct{}

func (Exit) Name() string { return "exit" }

func (Exit) Signature() pipeline.Signature {
	return pipeline.Build("exit").
		Switch("now", "quit immediately instead of leaving one shell")
}

func (Exit) Usage() string {
	return "Leave the current shell, or quit with --now."
}

func (Exit) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	now := args.Call.Args.Has("now")

	return pipeline.NewOutputStream(func(out *pipeline.OutputStream) {
		defer args.Input.Close()
		args.Input.Drain()
		if now {
			out.Send(pipeline.OfAction(pipeline.Exit()))
			return
		}
		out.Send(pipeline.OfAction(pipeline.LeaveShell()))
	}), nil
}
