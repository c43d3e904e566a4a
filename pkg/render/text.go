// Package render turns a finished report into human- and machine-readable
// output: a plain-text console view, JSON/YAML export, and Graphviz diagrams
// of the internal dependency graph.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/depscope/depscope/pkg/deps"
	"github.com/depscope/depscope/pkg/report"
)

// Text writes the console report: headline figures, the per-kind breakdown,
// the external usage histogram, the top-N fan-out ranking, and any detected
// cycles. topN caps the fan-out table; zero or negative shows all files.
func Text(w io.Writer, r *report.Report, topN int) {
	s := report.Summarize(r)

	fmt.Fprintf(w, "Dependency report for %s\n", r.Root)
	fmt.Fprintf(w, "Run %s at %s\n\n", r.ID, r.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))

	fmt.Fprintf(w, "Files analyzed:   %d\n", s.FilesAnalyzed)
	fmt.Fprintf(w, "Dependencies:     %d\n", s.Total)
	fmt.Fprintf(w, "  external:       %d (%.1f%%)\n", s.External, s.ExternalPct)
	fmt.Fprintf(w, "  internal:       %d (%.1f%%)\n", s.Internal, s.InternalPct)

	writeKinds(w, r)
	writeExternalUsage(w, r)
	writeFanOut(w, r, topN)
	writeCycles(w, r)
	writeDiagnostics(w, r)
}

func writeKinds(w io.Writer, r *report.Report) {
	byKind := report.GroupByKind(r)
	if len(byKind) == 0 {
		return
	}

	fmt.Fprintf(w, "\nBy import type:\n")
	for _, kind := range deps.Kinds {
		if n, ok := byKind[kind]; ok {
			fmt.Fprintf(w, "  %-12s %d\n", kind, n)
		}
	}
}

func writeExternalUsage(w io.Writer, r *report.Report) {
	usage := report.ExternalUsage(r)
	if len(usage) == 0 {
		return
	}

	fmt.Fprintf(w, "\nExternal packages:\n")
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Package", "Files"})
	for _, u := range usage {
		tbl.AppendRow(table.Row{u.Package, u.Files})
	}
	tbl.Render()
}

func writeFanOut(w io.Writer, r *report.Report, topN int) {
	ranked := report.RankByFanOut(r)
	if len(ranked) == 0 {
		return
	}
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	fmt.Fprintf(w, "\nHighest fan-out:\n")
	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"File", "Fan-out", "Imports"})
	for _, f := range ranked {
		tbl.AppendRow(table.Row{f.File, f.FanOut, f.Records})
	}
	tbl.Render()
}

func writeCycles(w io.Writer, r *report.Report) {
	if r.Cycles == nil {
		return
	}

	if len(r.Cycles) == 0 {
		fmt.Fprintf(w, "\nNo circular dependencies detected.\n")
		return
	}

	fmt.Fprintf(w, "\nCircular dependencies (%d):\n", len(r.Cycles))
	for _, c := range r.Cycles {
		fmt.Fprintf(w, "  %s\n", strings.Join(c, " -> "))
	}
}

func writeDiagnostics(w io.Writer, r *report.Report) {
	d := r.Diag
	if d.SkippedDirs == 0 && d.UnreadableFiles == 0 && d.PatternMisses == 0 && d.ToolTimeouts == 0 {
		return
	}

	fmt.Fprintf(w, "\nDiagnostics: %d dirs skipped, %d files unreadable, %d pattern misses, %d tool timeouts\n",
		d.SkippedDirs, d.UnreadableFiles, d.PatternMisses, d.ToolTimeouts)
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.SeparateRows = false
	return tbl
}
