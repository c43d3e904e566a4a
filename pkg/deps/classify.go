package deps

import "strings"

// External reports whether a reference string points at a third-party
// dependency. Any reference using relative-path syntax (a leading ".") is
// internal; every other non-empty reference is external.
//
// The check is purely syntactic. Absolute-path internal modules and
// workspace aliases (e.g. "@app/utils", "src/lib") are not resolved and are
// therefore classified as external. That conservative behavior is part of
// the reporting contract; callers must not "fix" it by resolving references
// against the scanned tree.
func External(ref string) bool {
	if ref == "" {
		return false
	}
	return !strings.HasPrefix(ref, ".")
}
