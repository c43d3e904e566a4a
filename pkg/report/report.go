// Package report collects dependency records for one analysis run and
// derives summary statistics from them.
//
// The [Report] is the single mutable accumulator of a run: the scanner feeds
// it records one at a time, and exactly one writer touches it until the run
// completes. Everything in aggregate.go is a pure read-only view over the
// finished report.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/depscope/depscope/pkg/depgraph"
	"github.com/depscope/depscope/pkg/deps"
)

// Diagnostics counts absorbed failures. None of these abort a run; they are
// surfaced so an empty or partial report can be told apart from a clean one.
type Diagnostics struct {
	SkippedDirs     int `json:"skipped_dirs" yaml:"skipped_dirs"`
	UnreadableFiles int `json:"unreadable_files" yaml:"unreadable_files"`
	PatternMisses   int `json:"pattern_misses" yaml:"pattern_misses"`
	ToolTimeouts    int `json:"tool_timeouts" yaml:"tool_timeouts"`
}

// Merge adds the counters of other into d.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.SkippedDirs += other.SkippedDirs
	d.UnreadableFiles += other.UnreadableFiles
	d.PatternMisses += other.PatternMisses
	d.ToolTimeouts += other.ToolTimeouts
}

// Report is the aggregate result of one analysis run: counters, per-file
// record groupings, the internal dependency graph, and (once detection has
// been requested) the cycle list. A report is owned by its run and discarded
// after consumers have read it; nothing here persists across runs.
type Report struct {
	// ID uniquely identifies the run.
	ID string

	// Root is the scanned root directory.
	Root string

	// GeneratedAt is the run start time.
	GeneratedAt time.Time

	// Total, External and Internal count all collected records.
	Total    int
	External int
	Internal int

	// Files lists files owning at least one record, in first-seen order.
	// ByFile groups the records per file, in extraction order.
	Files  []string
	ByFile map[string][]deps.Record

	// Graph holds one edge per internal record, from the owning file's
	// identifier to the raw reference string.
	Graph *depgraph.Graph

	// Cycles is populated by DetectCycles; nil until then.
	Cycles []depgraph.Cycle

	// Diag counts failures absorbed during the run.
	Diag Diagnostics
}

// New creates an empty report for the given root directory.
func New(root string) *Report {
	return &Report{
		ID:          uuid.NewString(),
		Root:        root,
		GeneratedAt: time.Now().UTC(),
		ByFile:      make(map[string][]deps.Record),
		Graph:       depgraph.New(),
	}
}

// Add appends one record to the report: counters, the per-file grouping,
// and, for internal records only, a graph edge. External records never
// touch the graph.
func (r *Report) Add(rec deps.Record) {
	if _, seen := r.ByFile[rec.File]; !seen {
		r.Files = append(r.Files, rec.File)
	}
	r.ByFile[rec.File] = append(r.ByFile[rec.File], rec)

	r.Total++
	if rec.External {
		r.External++
	} else {
		r.Internal++
		r.Graph.AddEdge(rec.File, rec.Package)
	}
}

// DetectCycles runs the cycle detector over the graph and stores the result.
// Detection is on-demand: it is not part of record accumulation, and the
// presence of cycles is informational only, never a failure of the run.
// After detection Cycles is non-nil even when empty, so consumers can tell
// "none found" apart from "never looked".
func (r *Report) DetectCycles() []depgraph.Cycle {
	r.Cycles = depgraph.FindCycles(r.Graph)
	if r.Cycles == nil {
		r.Cycles = []depgraph.Cycle{}
	}
	return r.Cycles
}
