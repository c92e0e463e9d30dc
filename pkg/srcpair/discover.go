package srcpair

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
)

// DefaultExcludeDirs lists directory names skipped during discovery.
var DefaultExcludeDirs = []string{".git", ".svn", ".hg", "build"}

// Finder discovers compilation units under a directory tree.
// The zero value is not usable; call NewFinder for defaults.
type Finder struct {
	SourceExtensions []string
	HeaderExtensions []string
	ExcludeDirs      []string
}

// NewFinder returns a Finder with the default extension and exclusion sets.
func NewFinder() *Finder {
	return &Finder{
		SourceExtensions: SourceExtensions,
		HeaderExtensions: HeaderExtensions,
		ExcludeDirs:      DefaultExcludeDirs,
	}
}

// FromDir walks root recursively and returns the units found under it,
// paired per PairFiles. Paths in the result are slash separated and
// relative to root. An unreadable root or subtree surfaces as an error;
// there is no partial result.
func (f *Finder) FromDir(root string) ([]Pair, error) {
	var sources, headers []string

	walkErr := filepath.WalkDir(root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if p != root && slices.Contains(f.ExcludeDirs, entry.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}

		rel = filepath.ToSlash(rel)

		switch {
		case HasExtension(rel, f.SourceExtensions):
			sources = append(sources, rel)
		case HasExtension(rel, f.HeaderExtensions):
			headers = append(headers, rel)
		}

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("discover units in %s: %w", root, walkErr)
	}

	return pairFiles(sources, headers, f.HeaderExtensions), nil
}

// FromDir discovers units under root using the default Finder.
func FromDir(root string) ([]Pair, error) {
	return NewFinder().FromDir(root)
}
