package deps

import "regexp"

// Python recognizes plain and aliased module imports, from-imports,
// importlib/__import__ load-by-string calls, and TYPE_CHECKING-guarded
// imports.
//
// The from_import pattern also matches imports inside a TYPE_CHECKING block;
// such statements legitimately produce both a static and a type_only record.
// That duplication is accepted rather than resolved here.
var Python = &Language{
	Name:       "python",
	AstGrepID:  "python",
	Extensions: []string{".py"},
	Patterns: []ImportPattern{
		{
			Name:    "module_import",
			Kind:    KindStatic,
			AstGrep: `import $REF`,
			Regex:   regexp.MustCompile(`(?m)^\s*import\s+([\w.]+)\s*(?:#.*)?$`),
		},
		{
			Name:    "aliased_import",
			Kind:    KindStatic,
			AstGrep: `import $REF as $ALIAS`,
			Regex:   regexp.MustCompile(`(?m)^\s*import\s+([\w.]+)\s+as\s+\w+`),
		},
		{
			Name:    "from_import",
			Kind:    KindStatic,
			AstGrep: `from $REF import $$$NAMES`,
			Regex:   regexp.MustCompile(`(?m)^\s*from\s+([.\w]+)\s+import\s+`),
		},
		{
			Name:    "dynamic_import",
			Kind:    KindDynamic,
			AstGrep: `importlib.import_module("$REF")`,
			Regex:   regexp.MustCompile(`importlib\.import_module\(\s*['"]([^'"]+)['"]`),
		},
		{
			Name:    "builtin_import_call",
			Kind:    KindRequire,
			AstGrep: `__import__("$REF")`,
			Regex:   regexp.MustCompile(`__import__\(\s*['"]([^'"]+)['"]`),
		},
		{
			// No single ast-grep pattern spans the guard and the guarded
			// import, so this variant is builtin-only.
			Name:  "type_checking_import",
			Kind:  KindTypeOnly,
			Regex: regexp.MustCompile(`(?m)^\s*if\s+(?:typing\.)?TYPE_CHECKING\s*:\s*\n\s+(?:from\s+([.\w]+)\s+import|import\s+([\w.]+))`),
		},
	},
}
