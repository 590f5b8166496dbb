package deck

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// deckPattern selects deck files when a directory is given.
const deckPattern = "**/*.{yaml,yml}"

// Discover expands patterns into a sorted list of deck files without
// duplicates. A pattern may be a file, a directory (searched recursively for
// .yaml and .yml files) or a doublestar glob such as "decks/**/*.yaml".
func Discover(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		found, err := expand(pattern)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}

	slices.Sort(paths)
	paths = slices.Compact(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoDecks, patterns)
	}
	return paths, nil
}

func expand(pattern string) ([]string, error) {
	info, err := os.Stat(pattern)
	switch {
	case err == nil && info.IsDir():
		return walkDir(pattern)
	case err == nil:
		return []string{filepath.Clean(pattern)}, nil
	}

	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid deck pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %q: %w", pattern, err)
	}
	for i, m := range matches {
		matches[i] = filepath.Clean(m)
	}
	return matches, nil
}

func walkDir(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if ok, _ := doublestar.Match(deckPattern, filepath.ToSlash(rel)); ok {
			paths = append(paths, filepath.Clean(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return paths, nil
}
