package shell

import (
	"fmt"
	"strings"

	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// HelpShell browses command documentation built from the registry: either an
// index of every registered command or a single command's detail.
type HelpShell struct {
	topic string // "" for the index
	rows  []helpEntry
	path  string
}

type helpEntry struct {
	name      string
	usage     string
	signature string
}

// HelpForCommand creates a help shell scoped to one command topic.
func HelpForCommand(topic string, reg *pipeline.Registry) (*HelpShell, error) {
	cmd, ok := reg.Get(topic)
	if !ok {
		return nil, fmt.Errorf("no help topic for %q", topic)
	}
	return &HelpShell{
		topic: topic,
		path:  "/help/" + topic,
		rows: []helpEntry{{
			name:      cmd.Name(),
			usage:     cmd.Usage(),
			signature: renderSignature(cmd.Signature()),
		}},
	}, nil
}

// HelpIndex creates a help shell over every registered command.
func HelpIndex(reg *pipeline.Registry) (*HelpShell, error) {
	sh := &HelpShell{path: "/help"}
	for _, name := range reg.Names() {
		cmd, ok := reg.Get(name)
		if !ok {
			continue
		}
		sh.rows = append(sh.rows, helpEntry{
			name:      cmd.Name(),
			usage:     cmd.Usage(),
			signature: renderSignature(cmd.Signature()),
		})
	}
	return sh, nil
}

func (s *HelpShell) Name() string { return "help" }

func (s *HelpShell) Path() string { return s.path }

func (s *HelpShell) SetPath(path string) { s.path = path }

// Ls lists the help entries as rows with command, usage, and signature
// columns, optionally filtered by a glob pattern over the command name.
func (s *HelpShell) Ls(pattern string, t tag.Tag) ([]value.Value, error) {
	var rows []value.Value
	for _, entry := range s.rows {
		if pattern != "" {
			ok, err := matchPattern(pattern, entry.name)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		row := value.NewDict()
		row.Set("command", value.String(entry.name).IntoValue(t))
		row.Set("usage", value.String(entry.usage).IntoValue(t))
		row.Set("signature", value.String(entry.signature).IntoValue(t))
		rows = append(rows, value.Row(row).IntoValue(t))
	}
	return rows, nil
}

// renderSignature formats a command signature for help display.
func renderSignature(sig pipeline.Signature) string {
	var sb strings.Builder
	sb.WriteString(sig.Name)
	for _, p := range sig.Positional {
		if p.Required {
			sb.WriteString(fmt.Sprintf(" <%s>", p.Name))
		} else {
			sb.WriteString(fmt.Sprintf(" [%s]", p.Name))
		}
	}
	for _, f := range sig.Named {
		if f.Switch {
			sb.WriteString(fmt.Sprintf(" [--%s]", f.Name))
		} else {
			sb.WriteString(fmt.Sprintf(" [--%s <%s>]", f.Name, f.Shape))
		}
	}
	return sb.String()
}

var _ pipeline.Shell = (*HelpShell)(nil)
