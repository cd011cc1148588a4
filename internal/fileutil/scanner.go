package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotDirectory is returned when the scan root is missing or is not a directory.
	ErrNotDirectory = errors.New("not a proper directory")
	// ErrNotProjectRoot is returned when the scan root lacks its marker file.
	ErrNotProjectRoot = errors.New("not a proper project root")
)

// WalkOptions configures which entries WalkSources visits
type WalkOptions struct {
	// IgnoreDirs is a list of entry names to skip entirely (e.g., "thirdparty")
	IgnoreDirs []string
	// Extensions is a list of file suffixes to include (e.g., ".cpp", ".h")
	Extensions []string
	// ExcludeSuffixes drops files even when their extension matches (e.g., ".gen.h")
	ExcludeSuffixes []string
}

// DefaultWalkOptions returns the options used for a Godot source tree
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		IgnoreDirs:      []string{"thirdparty", "misc", "__pycache__"},
		Extensions:      []string{".cpp", ".h"},
		ExcludeSuffixes: []string{".gen.h"},
	}
}

// ValidateRoot checks that root is an existing directory containing marker at its top level.
func ValidateRoot(root, marker string) error {
	if root == "" {
		return fmt.Errorf("no path given: %w", ErrNotDirectory)
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is %w", root, ErrNotDirectory)
	}

	if marker == "" {
		return nil
	}

	if _, err := os.Stat(filepath.Join(root, marker)); err != nil {
		return fmt.Errorf("%s is %w (missing %s)", root, ErrNotProjectRoot, marker)
	}

	return nil
}

// WalkSources walks root depth-first and calls visit for every eligible source file.
// Hidden entries and ignored names are skipped whether they are files or directories.
// Symlinks are followed; a directory reached twice through links is walked once.
// The first error from the walk or from visit stops the walk and is returned.
func WalkSources(root string, opts WalkOptions, visit func(path string) error) error {
	w := &sourceWalker{
		opts:    opts,
		ignore:  make(map[string]bool, len(opts.IgnoreDirs)),
		visited: make(map[string]bool),
		visit:   visit,
	}
	for _, name := range opts.IgnoreDirs {
		w.ignore[name] = true
	}

	if err := w.enter(root); err != nil {
		return fmt.Errorf("failed to walk directory: %w", err)
	}
	return nil
}

type sourceWalker struct {
	opts   WalkOptions
	ignore map[string]bool
	// visited holds resolved directory paths, so link cycles terminate
	visited map[string]bool
	visit   func(path string) error
}

// enter walks dir unless its resolved path was already walked.
func (w *sourceWalker) enter(dir string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", dir, err)
	}
	if w.visited[resolved] {
		return nil
	}
	w.visited[resolved] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", dir, err)
	}

	for _, entry := range entries {
		if err := w.walkEntry(dir, entry); err != nil {
			return err
		}
	}
	return nil
}

func (w *sourceWalker) walkEntry(dir string, entry fs.DirEntry) error {
	name := entry.Name()
	if strings.HasPrefix(name, ".") || w.ignore[name] {
		return nil
	}

	path := filepath.Join(dir, name)
	mode := entry.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			// a dangling link only matters when it looks like a source file
			if IsSourceFile(name, w.opts) {
				return fmt.Errorf("error accessing %s: %w", path, err)
			}
			return nil
		}
		mode = info.Mode().Type()
	}

	if mode.IsDir() {
		return w.enter(path)
	}

	if !mode.IsRegular() || !IsSourceFile(name, w.opts) {
		return nil
	}

	if err := w.visit(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// IsSourceFile reports whether name has an included extension and no excluded suffix.
func IsSourceFile(name string, opts WalkOptions) bool {
	for _, suffix := range opts.ExcludeSuffixes {
		if strings.HasSuffix(name, suffix) {
			return false
		}
	}

	for _, ext := range opts.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}
