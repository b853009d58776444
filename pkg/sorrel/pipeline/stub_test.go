package pipeline

import (
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// fakeShell is a canned navigation context for driver tests.
type fakeShell struct {
	name    string
	path    string
	entries []value.Value
}

func (f *fakeShell) Name() string      { return f.name }
func (f *fakeShell) Path() string      { return f.path }
func (f *fakeShell) SetPath(p string)  { f.path = p }
func (f *fakeShell) Ls(pattern string, t tag.Tag) ([]value.Value, error) {
	return f.entries, nil
}

// fakeFactory hands back fakeShells for every control action.
type fakeFactory struct{}

func (fakeFactory) Filesystem(location string) (Shell, error) {
	return &fakeShell{name: "filesystem", path: location}, nil
}

func (fakeFactory) ValueBrowser(v value.Value) Shell {
	return &fakeShell{name: "value", path: ""}
}

func (fakeFactory) HelpForCommand(topic string, reg *Registry) (Shell, error) {
	return &fakeShell{name: "help:" + topic}, nil
}

func (fakeFactory) HelpIndex(reg *Registry) (Shell, error) {
	return &fakeShell{name: "help"}, nil
}

// newTestContext builds a context whose exit calls are recorded instead of
// terminating the test binary.
func newTestContext(reg *Registry, initial Shell) (*Context, *[]int) {
	ctx := NewContext(reg, fakeFactory{}, initial)
	var codes []int
	ctx.exit = func(code int) { codes = append(codes, code) }
	return ctx, &codes
}
