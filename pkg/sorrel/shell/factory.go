package shell

import (
	"path/filepath"

	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// Factory builds the concrete shells the pipeline driver pushes in response
// to control actions.
type Factory struct{}

func (Factory) Filesystem(location string) (pipeline.Shell, error) {
	return NewFilesystemShell(location)
}

func (Factory) ValueBrowser(v value.Value) pipeline.Shell {
	return NewValueShell(v)
}

func (Factory) HelpForCommand(topic string, reg *pipeline.Registry) (pipeline.Shell, error) {
	return HelpForCommand(topic, reg)
}

func (Factory) HelpIndex(reg *pipeline.Registry) (pipeline.Shell, error) {
	return HelpIndex(reg)
}

var _ pipeline.ShellFactory = Factory{}

// matchPattern reports whether a glob pattern matches a name.
func matchPattern(pattern, name string) (bool, error) {
	return filepath.Match(pattern, name)
}
