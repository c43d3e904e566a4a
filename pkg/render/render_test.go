package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/depscope/depscope/pkg/deps"
	"github.com/depscope/depscope/pkg/report"
)

func fixtureReport() *report.Report {
	r := report.New("/src/app")
	r.Add(deps.Record{Package: "react", Kind: deps.KindStatic, File: "a.ts", Line: 1, External: true})
	r.Add(deps.Record{Package: "./util", Kind: deps.KindStatic, File: "a.ts", Line: 2, External: false})
	r.Add(deps.Record{Package: "./lazy", Kind: deps.KindDynamic, File: "b.ts", Line: 5, External: false})
	return r
}

func TestText_Sections(t *testing.T) {
	r := fixtureReport()
	r.DetectCycles()

	var buf bytes.Buffer
	Text(&buf, r, 10)
	out := buf.String()

	for _, want := range []string{
		"Dependency report for /src/app",
		"Files analyzed:   2",
		"Dependencies:     3",
		"external:       1 (33.3%)",
		"internal:       2 (66.7%)",
		"By import type:",
		"react",
		"Highest fan-out:",
		"No circular dependencies detected.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestText_WithoutDetectionSkipsCycleSection(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, fixtureReport(), 0)

	if strings.Contains(buf.String(), "circular") {
		t.Errorf("cycle section rendered without detection:\n%s", buf.String())
	}
}

func TestText_TopNCapsFanOut(t *testing.T) {
	r := report.New("/src/app")
	for _, f := range []string{"a.ts", "b.ts", "c.ts"} {
		r.Add(deps.Record{Package: "./x", Kind: deps.KindStatic, File: f, Line: 1})
	}

	var buf bytes.Buffer
	Text(&buf, r, 1)
	out := buf.String()

	if !strings.Contains(out, "a.ts") || strings.Contains(out, "c.ts") {
		t.Errorf("top-1 fan-out table wrong:\n%s", out)
	}
}

func TestNewDocument(t *testing.T) {
	r := fixtureReport()
	r.DetectCycles()

	doc := NewDocument(r)

	if doc.RunID != r.ID || doc.Root != "/src/app" {
		t.Errorf("doc identity = %q/%q", doc.RunID, doc.Root)
	}
	if doc.Summary.Total != 3 || doc.Summary.External != 1 {
		t.Errorf("summary = %+v", doc.Summary)
	}
	if doc.ByKind["static"] != 2 || doc.ByKind["dynamic"] != 1 {
		t.Errorf("ByKind = %v", doc.ByKind)
	}
	if doc.CircularDependencies == nil || len(doc.CircularDependencies) != 0 {
		t.Errorf("CircularDependencies = %v, want empty non-nil", doc.CircularDependencies)
	}
	if got := doc.Graph["a.ts"]; len(got) != 1 || got[0] != "./util" {
		t.Errorf("Graph[a.ts] = %v", got)
	}
}

func TestNewDocument_NoDetectionKeepsCyclesNil(t *testing.T) {
	if doc := NewDocument(fixtureReport()); doc.CircularDependencies != nil {
		t.Errorf("CircularDependencies = %v, want nil", doc.CircularDependencies)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, fixtureReport()); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	summary, ok := decoded["summary"].(map[string]any)
	if !ok {
		t.Fatalf("summary section missing: %v", decoded)
	}
	if got := summary["total_dependencies"].(float64); got != 3 {
		t.Errorf("total_dependencies = %v, want 3", got)
	}
	if _, ok := decoded["dependencies_by_file"]; !ok {
		t.Error("dependencies_by_file section missing")
	}
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := YAML(&buf, fixtureReport()); err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if _, ok := decoded["summary"]; !ok {
		t.Error("summary section missing")
	}
}

func TestToDOT(t *testing.T) {
	r := fixtureReport()
	dot := ToDOT(r.Graph, nil)

	for _, want := range []string{
		"digraph deps {",
		`"a.ts" -> "./util";`,
		`"b.ts" -> "./lazy";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "react") {
		t.Error("external reference leaked into DOT output")
	}
}

func TestToDOT_HighlightsCycleEdges(t *testing.T) {
	r := report.New("/src")
	r.Add(deps.Record{Package: "b", Kind: deps.KindStatic, File: "a", Line: 1})
	r.Add(deps.Record{Package: "a", Kind: deps.KindStatic, File: "b", Line: 1})
	cycles := r.DetectCycles()
	if len(cycles) != 1 {
		t.Fatalf("cycles = %v, want one", cycles)
	}

	dot := ToDOT(r.Graph, cycles)
	if !strings.Contains(dot, `"a" -> "b" [color=red, penwidth=2];`) {
		t.Errorf("cycle edge not highlighted:\n%s", dot)
	}
}
