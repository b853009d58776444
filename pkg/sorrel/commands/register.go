package commands

import (
	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
)

// RegisterAll installs every built-in command into the registry.
func RegisterAll(reg *pipeline.Registry) {
	reg.Register(Cd{})
	reg.Register(Count{})
	reg.Register(Date{})
	reg.Register(Debug{})
	reg.Register(Echo{})
	reg.Register(Enter{})
	reg.Register(Exit{})
	reg.Register(First{})
	reg.Register(Get{})
	reg.Register(Help{})
	reg.Register(Lines{})
	reg.Register(Ls{})
	reg.Register(Next{})
	reg.Register(Previous{})
	reg.Register(SortBy{})
}
