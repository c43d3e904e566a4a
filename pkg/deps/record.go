// Package deps defines the dependency data model: import records, the
// internal/external classifier, and the per-language import pattern registry.
//
// A [Record] is one observed import occurrence in one source file. Records are
// immutable once created and are owned by the report that collects them.
// Languages register a fixed list of [ImportPattern] values, one per
// (language, kind) variant, so adding a language never touches the extraction
// driver.
package deps

// ImportKind classifies how a dependency is pulled in at the source level.
type ImportKind string

// Recognized import kinds.
const (
	// KindStatic covers whole-module, named, aliased, and side-effect-only
	// imports resolved at load time.
	KindStatic ImportKind = "static"

	// KindDynamic covers conditional import expressions evaluated at runtime,
	// e.g. import("x") or importlib.import_module("x").
	KindDynamic ImportKind = "dynamic"

	// KindRequire covers synchronous load-by-string calls, e.g. require("x")
	// or __import__("x").
	KindRequire ImportKind = "require"

	// KindTypeOnly covers compile-time-only imports with no runtime effect,
	// e.g. TypeScript "import type" or TYPE_CHECKING-guarded Python imports.
	KindTypeOnly ImportKind = "type_only"
)

// Kinds lists all recognized import kinds in display order.
var Kinds = []ImportKind{KindStatic, KindDynamic, KindRequire, KindTypeOnly}

// Record is a single observed import occurrence plus its classification.
// The zero value is not meaningful; records are produced by the extractor
// and never mutated afterwards.
type Record struct {
	// Package is the reference string exactly as written in the source,
	// e.g. "react", "../utils", ".models".
	Package string `json:"package" yaml:"package"`

	// Kind is the import kind recognized by the matching pattern.
	Kind ImportKind `json:"import_type" yaml:"import_type"`

	// File is the repo-relative path of the file containing the import.
	File string `json:"source_file" yaml:"source_file"`

	// Line is the 1-based line number of the import occurrence.
	Line int `json:"line_number" yaml:"line_number"`

	// External reports whether the reference was classified as third-party.
	External bool `json:"is_external" yaml:"is_external"`
}
