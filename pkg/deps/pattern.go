package deps

import "regexp"

// ImportPattern is one recognizable import construct for one language.
// Each pattern carries both engine representations: an ast-grep rule for the
// external matcher and a compiled regexp for the builtin matcher. The two are
// kept deliberately equivalent so switching engines does not change which
// constructs are recognized.
type ImportPattern struct {
	// Name identifies the pattern variant in diagnostics, e.g. "named_import".
	Name string

	// Kind is the import kind this pattern produces records for.
	Kind ImportKind

	// AstGrep is the ast-grep pattern with a $REF metavariable marking the
	// package reference, e.g. `import $$$ from "$REF"`.
	AstGrep string

	// Regex matches the same construct in-process. The package reference is
	// taken from the first non-empty capture group. Patterns are matched
	// against whole file contents, so multi-line constructs are allowed.
	Regex *regexp.Regexp
}

// Language describes one supported source language: which file extensions it
// claims and the fixed pattern list used to extract imports from it.
// Language values are built once at package init and treated as immutable.
type Language struct {
	// Name is the canonical language name, e.g. "typescript".
	Name string

	// AstGrepID is the value passed to ast-grep's --lang flag.
	AstGrepID string

	// Extensions lists the file extensions (with leading dot) mapped to this
	// language, e.g. [".ts", ".tsx"].
	Extensions []string

	// Patterns is the ordered pattern list. Order matters for record output:
	// records are emitted pattern by pattern in this order.
	Patterns []ImportPattern
}

// KindPatterns returns the subset of patterns producing the given kind.
func (l *Language) KindPatterns(kind ImportKind) []ImportPattern {
	var out []ImportPattern
	for _, p := range l.Patterns {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// ExtensionMap builds an extension→language lookup from the given languages.
// Later languages win on extension conflicts; callers pass an explicit,
// fixed language list so the mapping is deterministic.
func ExtensionMap(langs []*Language) map[string]*Language {
	m := make(map[string]*Language)
	for _, l := range langs {
		for _, ext := range l.Extensions {
			m[ext] = l
		}
	}
	return m
}

// ByName returns the language with the given name from langs, or nil.
func ByName(langs []*Language, name string) *Language {
	for _, l := range langs {
		if l.Name == name {
			return l
		}
	}
	return nil
}
