package render

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/depscope/depscope/pkg/deps"
	"github.com/depscope/depscope/pkg/errors"
	"github.com/depscope/depscope/pkg/report"
)

// Document is the export schema shared by the JSON and YAML writers. It is a
// frozen view of one report; building it never mutates the report.
type Document struct {
	RunID                string                   `json:"run_id" yaml:"run_id"`
	Root                 string                   `json:"root" yaml:"root"`
	GeneratedAt          time.Time                `json:"generated_at" yaml:"generated_at"`
	Summary              report.Summary           `json:"summary" yaml:"summary"`
	ByKind               map[string]int           `json:"dependencies_by_type" yaml:"dependencies_by_type"`
	ExternalUsage        []report.PackageUsage    `json:"external_usage" yaml:"external_usage"`
	DependenciesByFile   map[string][]deps.Record `json:"dependencies_by_file" yaml:"dependencies_by_file"`
	Graph                map[string][]string      `json:"graph" yaml:"graph"`
	CircularDependencies []string                 `json:"circular_dependencies" yaml:"circular_dependencies"`
	Diagnostics          report.Diagnostics       `json:"diagnostics" yaml:"diagnostics"`
}

// NewDocument builds the export view of r. Cycles are rendered as arrow
// chains; CircularDependencies is nil when detection was never requested.
func NewDocument(r *report.Report) *Document {
	byKind := make(map[string]int)
	for kind, n := range report.GroupByKind(r) {
		byKind[string(kind)] = n
	}

	var cycles []string
	if r.Cycles != nil {
		cycles = make([]string, 0, len(r.Cycles))
		for _, c := range r.Cycles {
			cycles = append(cycles, strings.Join(c, " -> "))
		}
	}

	return &Document{
		RunID:                r.ID,
		Root:                 r.Root,
		GeneratedAt:          r.GeneratedAt,
		Summary:              report.Summarize(r),
		ByKind:               byKind,
		ExternalUsage:        report.ExternalUsage(r),
		DependenciesByFile:   r.ByFile,
		Graph:                r.Graph.Adjacency(),
		CircularDependencies: cycles,
		Diagnostics:          r.Diag,
	}
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, r *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(r)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding report as JSON")
	}
	return nil
}

// YAML writes the report as YAML.
func YAML(w io.Writer, r *report.Report) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(NewDocument(r)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding report as YAML")
	}
	return nil
}
