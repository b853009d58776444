package pipeline

import (
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// SyntaxShape describes what kind of argument a signature slot accepts. Used
// for help output and by the pipeline reader to shape bare words.
type SyntaxShape int

const (
	ShapeAny SyntaxShape = iota
	ShapeString
	ShapeInt
	ShapePath
	ShapePattern
	ShapeColumnPath
)

func (s SyntaxShape) String() string {
	switch s {
	case ShapeString:
		return "string"
	case ShapeInt:
		return "integer"
	case ShapePath:
		return "path"
	case ShapePattern:
		return "pattern"
	case ShapeColumnPath:
		return "column path"
	default:
		return "any"
	}
}

// PositionalArg describes one positional slot of a command signature.
type PositionalArg struct {
	Name     string
	Shape    SyntaxShape
	Required bool
	Desc     string
}

// Flag describes one named argument of a command signature.
type Flag struct {
	Name   string
	Shape  SyntaxShape
	Switch bool // a bare flag with no value
	Desc   string
}

// Signature describes a command's argument surface.
type Signature struct {
	Name       string
	Positional []PositionalArg
	Named      []Flag
}

// Build starts a signature for the named command.
func Build(name string) Signature {
	return Signature{Name: name}
}

// Required adds a mandatory positional slot.
func (s Signature) Required(name string, shape SyntaxShape, desc string) Signature {
	s.Positional = append(s.Positional, PositionalArg{Name: name, Shape: shape, Required: true, Desc: desc})
	return s
}

// Optional adds an optional positional slot.
func (s Signature) Optional(name string, shape SyntaxShape, desc string) Signature {
	s.Positional = append(s.Positional, PositionalArg{Name: name, Shape: shape, Desc: desc})
	return s
}

// Switch adds a bare named flag.
func (s Signature) Switch(name, desc string) Signature {
	s.Named = append(s.Named, Flag{Name: name, Switch: true, Desc: desc})
	return s
}

// NamedFlag adds a named flag that takes a value.
func (s Signature) NamedFlag(name string, shape SyntaxShape, desc string) Signature {
	s.Named = append(s.Named, Flag{Name: name, Shape: shape, Desc: desc})
	return s
}

// FindFlag returns the flag declaration for a name.
func (s Signature) FindFlag(name string) (Flag, bool) {
	for _, f := range s.Named {
		if f.Name == name {
			return f, true
		}
	}
	return Flag{}, false
}

// CommandArgs is everything one internal command invocation receives:
// evaluated arguments, the stage's input stream, and the shared registry and
// shell stack. Consumed read-only by the implementation.
type CommandArgs struct {
	Call     CallInfo
	Input    *InputStream
	Registry *Registry
	Shells   *ShellStack
}

// NameTag returns the tag of the invocation site.
func (a CommandArgs) NameTag() tag.Tag {
	return a.Call.NameTag
}

// Command is one registered internal command. Run returns a lazy result
// sequence; it must not assume the driver buffers more than one item ahead.
type Command interface {
	Name() string
	Signature() Signature
	Usage() string
	Run(args CommandArgs) (*OutputStream, error)
}

// Registry holds the registered internal commands, in registration order.
type Registry struct {
	names []string
	cmds  map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// Register adds a command. Re-registering a name replaces the command but
// keeps its original position.
func (r *Registry) Register(cmd Command) {
	if _, ok := r.cmds[cmd.Name()]; !ok {
		r.names = append(r.names, cmd.Name())
	}
	r.cmds[cmd.Name()] = cmd
}

// Get returns the command registered under a name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Has reports whether a name is registered. This is the classification rule
// for pipeline stages: registered names run in-process, everything else
// spawns a subprocess.
func (r *Registry) Has(name string) bool {
	_, ok := r.cmds[name]
	return ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return r.names
}

// Shell is one navigation context on the shell stack. Concrete shells live in
// pkg/sorrel/shell; the driver only needs this surface.
type Shell interface {
	// Name identifies the shell kind for display.
	Name() string
	// Path is the shell's current working path.
	Path() string
	// SetPath moves the shell's working path.
	SetPath(path string)
	// Ls lists the entries visible at the current path, optionally filtered
	// by a glob pattern. Results are rows tagged at the requesting site.
	Ls(pattern string, t tag.Tag) ([]value.Value, error)
}

// ShellFactory constructs the concrete shells the driver pushes in response
// to control actions. Injected so the driver stays independent of the shell
// implementations.
type ShellFactory interface {
	Filesystem(location string) (Shell, error)
	ValueBrowser(v value.Value) Shell
	HelpForCommand(topic string, reg *Registry) (Shell, error)
	HelpIndex(reg *Registry) (Shell, error)
}
