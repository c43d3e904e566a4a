package extract

import (
	"bytes"
	"context"

	"github.com/depscope/depscope/pkg/deps"
)

// Builtin matches import patterns in-process using the patterns' compiled
// regexps. It needs no external tooling and is the default engine.
type Builtin struct{}

// Find runs the pattern's regexp over the whole file content. The reference
// is the first non-empty capture group of each match; the line is derived
// from the match's byte offset.
func (Builtin) Find(_ context.Context, f File, p deps.ImportPattern) ([]Match, error) {
	if p.Regex == nil {
		return nil, nil
	}

	idxs := p.Regex.FindAllSubmatchIndex(f.Content, -1)
	if idxs == nil {
		return nil, nil
	}

	matches := make([]Match, 0, len(idxs))
	for _, m := range idxs {
		ref := firstGroup(f.Content, m)
		matches = append(matches, Match{
			Ref:  ref,
			Line: lineAt(f.Content, m[0]),
		})
	}
	return matches, nil
}

// firstGroup returns the text of the first non-empty capture group.
// Patterns with alternating groups (e.g. the Python TYPE_CHECKING variant)
// populate only one of them per match.
func firstGroup(content []byte, m []int) string {
	for i := 2; i+1 < len(m); i += 2 {
		if m[i] >= 0 && m[i+1] > m[i] {
			return string(content[m[i]:m[i+1]])
		}
	}
	return ""
}

// lineAt returns the 1-based line number of the given byte offset.
func lineAt(content []byte, offset int) int {
	return 1 + bytes.Count(content[:offset], []byte{'\n'})
}
