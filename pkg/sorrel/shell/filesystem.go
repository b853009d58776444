// Package shell provides the concrete navigation contexts the pipeline
// driver pushes onto the shell stack: a filesystem shell, a value browser,
// and a help shell over the command registry.
package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// FilesystemShell is a navigation context rooted at a directory.
type FilesystemShell struct {
	path string
}

// NewFilesystemShell creates a filesystem shell rooted at the location,
// which must be an existing directory.
func NewFilesystemShell(location string) (*FilesystemShell, error) {
	abs, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}
	return &FilesystemShell{path: abs}, nil
}

func (s *FilesystemShell) Name() string { return "filesystem" }

func (s *FilesystemShell) Path() string { return s.path }

func (s *FilesystemShell) SetPath(path string) { s.path = path }

// Ls lists the directory entries at the current path as rows with name,
// type, size, and modification date columns, optionally filtered by a glob
// pattern.
func (s *FilesystemShell) Ls(pattern string, t tag.Tag) ([]value.Value, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, err
	}

	var rows []value.Value
	for _, entry := range entries {
		if pattern != "" {
			matched, err := filepath.Match(pattern, entry.Name())
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if !matched {
				continue
			}
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		kind := "file"
		var size uint64
		if entry.IsDir() {
			kind = "directory"
		} else if info.Size() > 0 {
			size = uint64(info.Size())
		}

		row := value.NewDict()
		row.Set("name", value.FilePath(entry.Name()).IntoValue(t))
		row.Set("type", value.String(kind).IntoValue(t))
		row.Set("size", value.Bytes(size).IntoValue(t))
		row.Set("modified", value.Date(info.ModTime()).IntoValue(t))
		rows = append(rows, value.Row(row).IntoValue(t))
	}

	return rows, nil
}

// interface check
var _ pipeline.Shell = (*FilesystemShell)(nil)
