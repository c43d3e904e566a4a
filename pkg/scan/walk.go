package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/depscope/depscope/pkg/deps"
	"github.com/depscope/depscope/pkg/errors"
)

// DefaultDenylist names directories that never hold first-party source.
// Matching is by exact base name at any depth.
var DefaultDenylist = []string{
	".git",
	".hg",
	".svn",
	"node_modules",
	"__pycache__",
	"venv",
	".venv",
	"env",
	".env",
	"dist",
	"build",
	"vendor",
	"target",
	".tox",
	".mypy_cache",
	".pytest_cache",
	"coverage",
	".next",
	".cache",
}

// fileEntry is one discovered source file, pending extraction.
type fileEntry struct {
	abs  string
	rel  string
	lang *deps.Language
}

// discover walks root and returns analyzable files sorted by relative path,
// plus the number of directories skipped because they could not be read.
//
// The root itself must exist and be a directory; that failure aborts the
// whole run. Everything below it is tolerant: unreadable subdirectories are
// skipped and counted, dotfiles, symlinks, denylisted directories and files
// with no registered language are passed over silently.
func discover(root string, langs []*deps.Language, denylist []string, useGitignore bool) ([]fileEntry, int, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodeInvalidPath, err, "scan root is not accessible")
	}
	if !info.IsDir() {
		return nil, 0, errors.New(errors.ErrCodeInvalidPath, "scan root is not a directory")
	}

	denied := make(map[string]struct{}, len(denylist))
	for _, d := range denylist {
		denied[d] = struct{}{}
	}
	byExt := deps.ExtensionMap(langs)

	var gi *ignore.GitIgnore
	if useGitignore {
		gi = loadGitignore(root)
	}

	var entries []fileEntry
	var skippedDirs int

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			skippedDirs++
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := denied[name]; skip || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") || d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		lang, ok := byExt[filepath.Ext(name)]
		if !ok {
			return nil
		}

		entries = append(entries, fileEntry{abs: path, rel: rel, lang: lang})
		return nil
	})
	if walkErr != nil {
		return nil, skippedDirs, errors.Wrap(errors.ErrCodeInternal, walkErr, "walking scan root")
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].rel < entries[j].rel })
	return entries, skippedDirs, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
