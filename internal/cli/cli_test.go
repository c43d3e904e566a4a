package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand_Subcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"scan":       false,
		"graph":      false,
		"languages":  false,
		"completion": false,
	}
	for _, sub := range root.Commands() {
		name := strings.Fields(sub.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}

func TestValidateGraphFormat(t *testing.T) {
	for _, f := range []string{"dot", "svg", "png"} {
		if err := validateGraphFormat(f); err != nil {
			t.Errorf("validateGraphFormat(%q) = %v", f, err)
		}
	}
	if err := validateGraphFormat("pdf"); err == nil {
		t.Error("validateGraphFormat(pdf) = nil, want error")
	}
}

func TestParseLangFilter(t *testing.T) {
	langs, err := parseLangFilter("python, typescript")
	if err != nil {
		t.Fatalf("parseLangFilter() error = %v", err)
	}
	if len(langs) != 2 || langs[0].Name != "python" || langs[1].Name != "typescript" {
		t.Errorf("parseLangFilter() = %v", langs)
	}

	if _, err := parseLangFilter("cobol"); err == nil {
		t.Error("parseLangFilter(cobol) = nil, want error")
	}

	if langs, err := parseLangFilter(""); err != nil || langs != nil {
		t.Errorf("parseLangFilter(\"\") = %v, %v, want nil, nil", langs, err)
	}
}

func TestScanCommand_JSONAndYAMLExclusive(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"scan", "--json", "--yaml", t.TempDir()})

	if err := root.Execute(); err == nil {
		t.Error("scan with --json and --yaml should fail")
	}
}

func TestScanCommand_WritesReport(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.ts")
	if err := os.WriteFile(src, []byte("import \"./b\";\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "report.json")

	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"scan", "--json", "--cycles", "-o", outPath, dir})

	if err := root.Execute(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !bytes.Contains(data, []byte(`"total_dependencies": 1`)) {
		t.Errorf("unexpected report contents:\n%s", data)
	}
}

func TestGraphCommand_WritesDOT(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.ts"), []byte("import \"./b\";\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "deps.dot")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"graph", "-o", outPath, dir})

	if err := root.Execute(); err != nil {
		t.Fatalf("graph failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("DOT not written: %v", err)
	}
	if !bytes.Contains(data, []byte("digraph deps")) {
		t.Errorf("unexpected DOT contents:\n%s", data)
	}
}
