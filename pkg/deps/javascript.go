package deps

import "regexp"

// JavaScript recognizes ES module imports, CommonJS require calls, dynamic
// import expressions, and Flow-style type-only imports.
var JavaScript = &Language{
	Name:       "javascript",
	AstGrepID:  "javascript",
	Extensions: []string{".js", ".jsx", ".mjs", ".cjs"},
	Patterns:   ecmaPatterns(),
}

// ecmaPatterns is the shared pattern list for JavaScript and TypeScript.
// The syntax of the recognized constructs is identical in both languages;
// only the ast-grep language ID differs, and that lives on the Language.
func ecmaPatterns() []ImportPattern {
	return []ImportPattern{
		{
			Name:    "default_import",
			Kind:    KindStatic,
			AstGrep: `import $NAME from "$REF"`,
			Regex:   regexp.MustCompile(`(?m)^\s*import\s+[A-Za-z_$][\w$]*\s+from\s+['"]([^'"]+)['"]`),
		},
		{
			Name:    "default_and_named_import",
			Kind:    KindStatic,
			AstGrep: `import $NAME, { $$$NAMES } from "$REF"`,
			Regex:   regexp.MustCompile(`(?m)^\s*import\s+[A-Za-z_$][\w$]*\s*,\s*\{[^}]*\}\s*from\s+['"]([^'"]+)['"]`),
		},
		{
			Name:    "named_import",
			Kind:    KindStatic,
			AstGrep: `import { $$$NAMES } from "$REF"`,
			Regex:   regexp.MustCompile(`(?m)^\s*import\s+\{[^}]*\}\s*from\s+['"]([^'"]+)['"]`),
		},
		{
			Name:    "namespace_import",
			Kind:    KindStatic,
			AstGrep: `import * as $NS from "$REF"`,
			Regex:   regexp.MustCompile(`(?m)^\s*import\s+\*\s+as\s+[A-Za-z_$][\w$]*\s+from\s+['"]([^'"]+)['"]`),
		},
		{
			Name:    "side_effect_import",
			Kind:    KindStatic,
			AstGrep: `import "$REF"`,
			Regex:   regexp.MustCompile(`(?m)^\s*import\s+['"]([^'"]+)['"]`),
		},
		{
			Name:    "dynamic_import",
			Kind:    KindDynamic,
			AstGrep: `import("$REF")`,
			Regex:   regexp.MustCompile(`import\(\s*['"]([^'"]+)['"]\s*\)`),
		},
		{
			Name:    "require_call",
			Kind:    KindRequire,
			AstGrep: `require("$REF")`,
			Regex:   regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`),
		},
		{
			Name:    "type_only_import",
			Kind:    KindTypeOnly,
			AstGrep: `import type { $$$NAMES } from "$REF"`,
			Regex:   regexp.MustCompile(`(?m)^\s*import\s+type\s+(?:\{[^}]*\}|[A-Za-z_$][\w$]*)\s*from\s+['"]([^'"]+)['"]`),
		},
	}
}
