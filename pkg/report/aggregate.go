package report

import (
	"sort"

	"github.com/depscope/depscope/pkg/deps"
)

// Summary holds the headline figures of a report. Percentages are 0 when the
// report holds no records at all; they never divide by zero.
type Summary struct {
	Total         int     `json:"total_dependencies" yaml:"total_dependencies"`
	External      int     `json:"external_dependencies" yaml:"external_dependencies"`
	Internal      int     `json:"internal_dependencies" yaml:"internal_dependencies"`
	FilesAnalyzed int     `json:"files_analyzed" yaml:"files_analyzed"`
	CycleCount    int     `json:"circular_dependencies_count" yaml:"circular_dependencies_count"`
	ExternalPct   float64 `json:"external_pct" yaml:"external_pct"`
	InternalPct   float64 `json:"internal_pct" yaml:"internal_pct"`
}

// PackageUsage is one row of the external usage histogram: how many distinct
// files reference the package.
type PackageUsage struct {
	Package string `json:"package" yaml:"package"`
	Files   int    `json:"files" yaml:"files"`
}

// FileFanOut is one row of the fan-out ranking. FanOut counts distinct
// outgoing graph edges (internal references only); Records counts all
// records owned by the file.
type FileFanOut struct {
	File    string `json:"file" yaml:"file"`
	FanOut  int    `json:"fan_out" yaml:"fan_out"`
	Records int    `json:"records" yaml:"records"`
}

// Summarize computes the headline figures. It never mutates the report.
func Summarize(r *Report) Summary {
	return Summary{
		Total:         r.Total,
		External:      r.External,
		Internal:      r.Internal,
		FilesAnalyzed: len(r.Files),
		CycleCount:    len(r.Cycles),
		ExternalPct:   Percent(r.External, r.Total),
		InternalPct:   Percent(r.Internal, r.Total),
	}
}

// Percent returns part as a percentage of total, or 0 when total is zero.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// GroupByKind counts records per import kind across the whole report.
func GroupByKind(r *Report) map[deps.ImportKind]int {
	out := make(map[deps.ImportKind]int)
	for _, file := range r.Files {
		for _, rec := range r.ByFile[file] {
			out[rec.Kind]++
		}
	}
	return out
}

// ExternalUsage returns the external usage histogram: for each external
// package, the number of distinct files referencing it. Rows are sorted by
// descending file count, ties broken by package name.
func ExternalUsage(r *Report) []PackageUsage {
	files := make(map[string]map[string]struct{})
	for _, file := range r.Files {
		for _, rec := range r.ByFile[file] {
			if !rec.External {
				continue
			}
			if files[rec.Package] == nil {
				files[rec.Package] = make(map[string]struct{})
			}
			files[rec.Package][rec.File] = struct{}{}
		}
	}

	out := make([]PackageUsage, 0, len(files))
	for pkg, set := range files {
		out = append(out, PackageUsage{Package: pkg, Files: len(set)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Files != out[j].Files {
			return out[i].Files > out[j].Files
		}
		return out[i].Package < out[j].Package
	})
	return out
}

// RankByFanOut ranks all files owning records by descending fan-out.
// Ties keep the report's stable input order. Files whose references are all
// external have fan-out 0 but still appear, ranked by that order.
func RankByFanOut(r *Report) []FileFanOut {
	out := make([]FileFanOut, 0, len(r.Files))
	for _, file := range r.Files {
		out = append(out, FileFanOut{
			File:    file,
			FanOut:  r.Graph.OutDegree(file),
			Records: len(r.ByFile[file]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FanOut > out[j].FanOut
	})
	return out
}
