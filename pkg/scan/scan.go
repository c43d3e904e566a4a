// Package scan turns a source tree into a dependency report. It discovers
// analyzable files, runs the extractor over them with a worker pool, and
// feeds the results into a single report in deterministic file order.
package scan

import (
	"context"
	"os"
	"runtime"
	"sync"

	"github.com/depscope/depscope/pkg/deps"
	"github.com/depscope/depscope/pkg/extract"
	"github.com/depscope/depscope/pkg/report"
)

// DefaultMaxFileSize is the size cutoff above which files are not read.
const DefaultMaxFileSize = 1 << 20 // 1 MiB

// Options configures one scan run. The zero value is not usable; Root is
// required, everything else has a default applied by Run.
type Options struct {
	// Root is the directory to analyze.
	Root string

	// Denylist holds directory base names to skip. Nil means DefaultDenylist;
	// an explicit empty slice disables the denylist entirely.
	Denylist []string

	// Languages to extract. Nil means deps.DefaultLanguages().
	Languages []*deps.Language

	// Engine evaluates import patterns. Nil means the builtin matcher.
	Engine extract.Engine

	// Workers caps extraction concurrency. Zero means GOMAXPROCS.
	Workers int

	// UseGitignore also honors a .gitignore at the root.
	UseGitignore bool

	// MaxFileSize skips files larger than this many bytes.
	// Zero means DefaultMaxFileSize.
	MaxFileSize int64
}

func (o *Options) applyDefaults() {
	if o.Denylist == nil {
		o.Denylist = DefaultDenylist
	}
	if o.Languages == nil {
		o.Languages = deps.DefaultLanguages()
	}
	if o.Engine == nil {
		o.Engine = &extract.Builtin{}
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.MaxFileSize <= 0 {
		o.MaxFileSize = DefaultMaxFileSize
	}
}

// fileResult carries one file's extraction output back to the collector.
// index points into the discovered file list so merge order is stable no
// matter which worker finished first.
type fileResult struct {
	index      int
	records    []deps.Record
	stats      extract.Stats
	unreadable bool
}

// Run scans opts.Root and returns the accumulated report.
//
// Only an unusable root fails the run. Per-file and per-pattern failures are
// absorbed into the report's diagnostics, so a partially readable tree still
// yields a (partial) report.
func Run(ctx context.Context, opts Options) (*report.Report, error) {
	opts.applyDefaults()

	entries, skippedDirs, err := discover(opts.Root, opts.Languages, opts.Denylist, opts.UseGitignore)
	if err != nil {
		return nil, err
	}

	rep := report.New(opts.Root)
	rep.Diag.SkippedDirs = skippedDirs

	results := extractConcurrent(ctx, opts, entries)

	// Single writer: fold worker output into the report in discovery order.
	for _, res := range results {
		if res.unreadable {
			rep.Diag.UnreadableFiles++
			continue
		}
		rep.Diag.PatternMisses += res.stats.PatternMisses
		rep.Diag.ToolTimeouts += res.stats.ToolTimeouts
		for _, rec := range res.records {
			rep.Add(rec)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rep, nil
}

// extractConcurrent fans the discovered files out to a worker pool and
// returns per-file results indexed by discovery order. Workers stop picking
// up new files once ctx is canceled.
func extractConcurrent(ctx context.Context, opts Options, entries []fileEntry) []fileResult {
	workers := opts.Workers
	if workers > len(entries) {
		workers = len(entries)
	}

	results := make([]fileResult, len(entries))
	work := make(chan int, len(entries))
	extractor := extract.New(opts.Engine)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				if ctx.Err() != nil {
					return
				}
				results[idx] = extractOne(ctx, extractor, opts.MaxFileSize, idx, entries[idx])
			}
		}()
	}

	for i := range entries {
		work <- i
	}
	close(work)
	wg.Wait()

	return results
}

func extractOne(ctx context.Context, extractor *extract.Extractor, maxSize int64, idx int, e fileEntry) fileResult {
	info, err := os.Stat(e.abs)
	if err != nil {
		return fileResult{index: idx, unreadable: true}
	}
	if info.Size() > maxSize {
		// Oversized files are deliberately ignored, not an error.
		return fileResult{index: idx}
	}

	content, err := os.ReadFile(e.abs)
	if err != nil {
		return fileResult{index: idx, unreadable: true}
	}

	records, stats := extractor.File(ctx, extract.File{
		Path:     e.abs,
		RelPath:  e.rel,
		Content:  content,
		Language: e.lang,
	})
	return fileResult{index: idx, records: records, stats: stats}
}
