package shell

import (
	"strconv"

	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// ValueShell browses one value as a navigable structure. The working path is
// a dotted column path into the value; the root is the empty path.
type ValueShell struct {
	root value.Value
	path string
}

// NewValueShell creates a browser over the given value, positioned at its
// root.
func NewValueShell(v value.Value) *ValueShell {
	return &ValueShell{root: v}
}

func (s *ValueShell) Name() string { return "value" }

func (s *ValueShell) Path() string { return s.path }

func (s *ValueShell) SetPath(path string) { s.path = path }

// at resolves the current path within the browsed value.
func (s *ValueShell) at() (value.Value, error) {
	if s.path == "" {
		return s.root, nil
	}
	v, serr := value.GetPath(s.root, value.ParseColumnPath(s.path, tag.UnknownSpan()), "")
	if serr != nil {
		return value.Value{}, serr
	}
	return v, nil
}

// Ls lists the children of the value at the current path: row fields by
// name, table elements by index, or the value itself when it is scalar.
// The glob pattern filters by child name.
func (s *ValueShell) Ls(pattern string, t tag.Tag) ([]value.Value, error) {
	current, err := s.at()
	if err != nil {
		return nil, err
	}

	matches := func(name string) bool {
		if pattern == "" {
			return true
		}
		ok, merr := matchPattern(pattern, name)
		return merr == nil && ok
	}

	var rows []value.Value
	switch current.Value.Kind {
	case value.ValueRow:
		for _, key := range current.Value.Row.Keys() {
			if !matches(key) {
				continue
			}
			item, _ := current.Value.Row.Get(key)
			row := value.NewDict()
			row.Set("name", value.String(key).IntoValue(t))
			row.Set("type", value.String(item.Value.TypeName()).IntoValue(t))
			row.Set("value", value.String(item.DisplayString()).IntoValue(t))
			rows = append(rows, value.Row(row).IntoValue(t))
		}
	case value.ValueTable:
		for i, item := range current.Value.Table {
			name := strconv.Itoa(i)
			if !matches(name) {
				continue
			}
			row := value.NewDict()
			row.Set("name", value.String(name).IntoValue(t))
			row.Set("type", value.String(item.Value.TypeName()).IntoValue(t))
			row.Set("value", value.String(item.DisplayString()).IntoValue(t))
			rows = append(rows, value.Row(row).IntoValue(t))
		}
	default:
		rows = append(rows, current)
	}

	return rows, nil
}

var _ pipeline.Shell = (*ValueShell)(nil)
