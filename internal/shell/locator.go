package shell

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"prtl/pkg/logging"
)

const (
	// DefaultMaxDepth bounds how many directory levels below the root are searched.
	DefaultMaxDepth = 4
	// DefaultMaxResults bounds how many candidates are produced.
	DefaultMaxResults = 10
)

// Locator searches a directory tree for shell profile files.
type Locator struct {
	// Root is the directory to search, normally the user's home directory.
	Root string
	// MaxDepth is the deepest directory level searched; the root is depth 0.
	MaxDepth int
	// MaxResults caps the number of candidates yielded.
	MaxResults int
}

// NewLocator returns a Locator over the user's home directory with the
// default bounds.
func NewLocator() (*Locator, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, &IOError{Op: "determine", Path: "home directory", Reason: err}
	}
	return &Locator{
		Root:       home,
		MaxDepth:   DefaultMaxDepth,
		MaxResults: DefaultMaxResults,
	}, nil
}

// Locate lazily yields regular files under Root whose base name contains the
// profile fragment for kind, compared case-insensitively. Hidden files and
// directories are included. Unreadable directories are skipped. The walk stops
// as soon as MaxResults paths were yielded or the consumer stops iterating.
func (l *Locator) Locate(kind Kind) iter.Seq[string] {
	fragment := strings.ToLower(kind.ProfileFragment())
	root := filepath.Clean(l.Root)

	return func(yield func(string) bool) {
		found := 0
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logging.Debug("Shell", "Skipping %s: %v", path, err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != root && l.depth(root, path) > l.MaxDepth {
					return fs.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}
			if !strings.Contains(strings.ToLower(d.Name()), fragment) {
				return nil
			}

			found++
			if !yield(path) {
				return fs.SkipAll
			}
			if l.MaxResults > 0 && found >= l.MaxResults {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			logging.Debug("Shell", "Profile search under %s ended early: %v", root, err)
		}
	}
}

// depth counts path separators between root and path.
func (l *Locator) depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
