// Package extract turns file contents into dependency records.
//
// The extraction driver walks a language's fixed pattern list and asks an
// [Engine] for occurrences of each pattern. Two engines exist: [Builtin]
// matches in-process with the patterns' compiled regexps, and [AstGrep]
// shells out to the ast-grep binary per (file, pattern) invocation.
//
// Extraction is tolerant by contract: a pattern that fails (engine error,
// tool timeout, malformed tool output) yields zero records for that
// (file, pattern) pair and a diagnostic counter tick, never an aborted run.
// The same textual import may match more than one pattern and produce
// multiple records; that duplication is accepted, not an error.
package extract

import (
	"context"

	"github.com/depscope/depscope/pkg/deps"
	"github.com/depscope/depscope/pkg/errors"
)

// Match is one pattern occurrence: the captured reference string and the
// 1-based line of the match start.
type Match struct {
	Ref  string
	Line int
}

// File carries everything an engine may need to match against one source
// file. Builtin engines use Content; external engines use Path.
type File struct {
	// Path is the absolute path on disk.
	Path string

	// RelPath is the repo-relative identifier used on records.
	RelPath string

	// Content is the file's contents.
	Content []byte

	// Language selects the pattern list and the external tool's language ID.
	Language *deps.Language
}

// Engine finds occurrences of one import pattern in one file.
type Engine interface {
	// Find returns all matches of p in f, in source order. A returned error
	// means the pattern could not be evaluated (not that nothing matched);
	// the driver absorbs it into diagnostics and moves on.
	Find(ctx context.Context, f File, p deps.ImportPattern) ([]Match, error)
}

// Stats counts failures absorbed while extracting one file.
type Stats struct {
	PatternMisses int // engine failures other than timeouts
	ToolTimeouts  int // external tool invocations that hit the deadline
}

// Extractor drives an engine over language pattern lists.
type Extractor struct {
	engine Engine
}

// New creates an extractor using the given engine.
func New(engine Engine) *Extractor {
	return &Extractor{engine: engine}
}

// File extracts all dependency records from one file, in pattern order then
// source order. Empty reference captures are dropped. Failures never
// propagate; they are returned as counters alongside the records.
func (e *Extractor) File(ctx context.Context, f File) ([]deps.Record, Stats) {
	var records []deps.Record
	var stats Stats

	for _, p := range f.Language.Patterns {
		matches, err := e.engine.Find(ctx, f, p)
		if err != nil {
			if errors.Is(err, errors.ErrCodeToolTimeout) {
				stats.ToolTimeouts++
			} else {
				stats.PatternMisses++
			}
			continue
		}
		for _, m := range matches {
			if m.Ref == "" {
				continue
			}
			records = append(records, deps.Record{
				Package:  m.Ref,
				Kind:     p.Kind,
				File:     f.RelPath,
				Line:     m.Line,
				External: deps.External(m.Ref),
			})
		}
	}

	return records, stats
}
