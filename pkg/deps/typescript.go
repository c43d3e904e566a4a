package deps

// TypeScript shares the ECMAScript pattern list with JavaScript. The
// type_only variant is the native `import type` syntax here rather than a
// Flow extension.
var TypeScript = &Language{
	Name:       "typescript",
	AstGrepID:  "typescript",
	Extensions: []string{".ts", ".tsx"},
	Patterns:   ecmaPatterns(),
}

// DefaultLanguages returns the fixed language set recognized by default.
// The slice is freshly allocated on each call; the Language values themselves
// are shared and immutable.
func DefaultLanguages() []*Language {
	return []*Language{JavaScript, TypeScript, Python}
}
