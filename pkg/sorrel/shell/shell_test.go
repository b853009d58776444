package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sambeau/sorrel/pkg/sorrel/pipeline"
	"github.com/sambeau/sorrel/pkg/sorrel/tag"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

func testDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"alpha.txt", "beta.txt", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("content"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func columnString(t *testing.T, row value.Value, key string) string {
	t.Helper()
	if row.Value.Kind != value.ValueRow {
		t.Fatalf("not a row: %v", row.Value.TypeName())
	}
	item, ok := row.Value.Row.Get(key)
	if !ok {
		t.Fatalf("row has no column %q", key)
	}
	return item.Value.Primitive.String()
}

func TestFilesystemShellLists(t *testing.T) {
	sh, err := NewFilesystemShell(testDir(t))
	if err != nil {
		t.Fatal(err)
	}

	rows, err := sh.Ls("", tag.Unknown())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("listed %d entries, want 4", len(rows))
	}

	byName := map[string]value.Value{}
	for _, row := range rows {
		byName[columnString(t, row, "name")] = row
	}
	if columnString(t, byName["sub"], "type") != "directory" {
		t.Error("sub should list as a directory")
	}
	if columnString(t, byName["alpha.txt"], "type") != "file" {
		t.Error("alpha.txt should list as a file")
	}
}

func TestFilesystemShellGlobFilter(t *testing.T) {
	sh, err := NewFilesystemShell(testDir(t))
	if err != nil {
		t.Fatal(err)
	}

	rows, err := sh.Ls("*.txt", tag.Unknown())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("matched %d entries, want 2", len(rows))
	}
}

func TestFilesystemShellRejectsFiles(t *testing.T) {
	dir := testDir(t)
	if _, err := NewFilesystemShell(filepath.Join(dir, "alpha.txt")); err == nil {
		t.Error("a plain file must not become a shell root")
	}
	if _, err := NewFilesystemShell(filepath.Join(dir, "missing")); err == nil {
		t.Error("a missing path must not become a shell root")
	}
}

func browsedRow() value.Value {
	files := value.Table([]value.Value{
		value.String("a.txt").IntoUntaggedValue(),
		value.String("b.txt").IntoUntaggedValue(),
	}).IntoUntaggedValue()

	d := value.NewDict()
	d.Set("name", value.String("project").IntoUntaggedValue())
	d.Set("files", files)
	return value.Row(d).IntoUntaggedValue()
}

func TestValueShellListsRowFields(t *testing.T) {
	sh := NewValueShell(browsedRow())

	rows, err := sh.Ls("", tag.Unknown())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("listed %d fields, want 2", len(rows))
	}
	if columnString(t, rows[0], "name") != "name" || columnString(t, rows[1], "name") != "files" {
		t.Error("fields should list in insertion order")
	}
	if columnString(t, rows[1], "type") != "table" {
		t.Errorf("files type = %q", columnString(t, rows[1], "type"))
	}
}

func TestValueShellDescends(t *testing.T) {
	sh := NewValueShell(browsedRow())
	sh.SetPath("files")

	rows, err := sh.Ls("", tag.Unknown())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("listed %d elements, want 2", len(rows))
	}
	if columnString(t, rows[0], "name") != "0" {
		t.Errorf("element name = %q, want index", columnString(t, rows[0], "name"))
	}
	if columnString(t, rows[0], "value") != "a.txt" {
		t.Errorf("element value = %q", columnString(t, rows[0], "value"))
	}
}

func TestValueShellScalarListsItself(t *testing.T) {
	sh := NewValueShell(value.String("leaf").IntoUntaggedValue())

	rows, err := sh.Ls("", tag.Unknown())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Value.Primitive.Str != "leaf" {
		t.Errorf("rows = %v", rows)
	}
}

func TestValueShellBadPathErrors(t *testing.T) {
	sh := NewValueShell(browsedRow())
	sh.SetPath("missing")

	if _, err := sh.Ls("", tag.Unknown()); err == nil {
		t.Error("expected an error for a dangling path")
	}
}

func sampleRegistry() *pipeline.Registry {
	reg := pipeline.NewRegistry()
	reg.Register(docCommand{name: "ls", usage: "List things."})
	reg.Register(docCommand{name: "get", usage: "Get things."})
	return reg
}

type docCommand struct {
	name  string
	usage string
}

func (c docCommand) Name() string { return c.name }
func (c docCommand) Signature() pipeline.Signature {
	return pipeline.Build(c.name).Optional("pattern", pipeline.ShapePattern, "filter")
}
func (c docCommand) Usage() string { return c.usage }
func (c docCommand) Run(args pipeline.CommandArgs) (*pipeline.OutputStream, error) {
	return pipeline.OutputFromReturnValues(), nil
}

func TestHelpIndexListsAllCommands(t *testing.T) {
	sh, err := HelpIndex(sampleRegistry())
	if err != nil {
		t.Fatal(err)
	}
	rows, err := sh.Ls("", tag.Unknown())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("listed %d topics, want 2", len(rows))
	}
	if columnString(t, rows[0], "command") != "ls" {
		t.Errorf("first topic = %q", columnString(t, rows[0], "command"))
	}
}

func TestHelpForCommand(t *testing.T) {
	sh, err := HelpForCommand("get", sampleRegistry())
	if err != nil {
		t.Fatal(err)
	}
	rows, err := sh.Ls("", tag.Unknown())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("listed %d rows, want 1", len(rows))
	}
	if columnString(t, rows[0], "usage") != "Get things." {
		t.Errorf("usage = %q", columnString(t, rows[0], "usage"))
	}
	if columnString(t, rows[0], "signature") != "get [pattern]" {
		t.Errorf("signature = %q", columnString(t, rows[0], "signature"))
	}
}

func TestHelpForUnknownTopic(t *testing.T) {
	if _, err := HelpForCommand("nope", sampleRegistry()); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}
