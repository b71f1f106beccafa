// Package adapter contains infrastructure adapters for the testindex CLI.
package adapter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "testindex/internal/model"
)

// FixtureFSAdapter abstracts the filesystem operations the workflow relies
// on. It hides direct `os` access so the pipeline logic can be tested
// against temporary trees or substituted entirely.
type FixtureFSAdapter interface {
	// DiscoverFixtures recursively enumerates the files under root that
	// carry the given extension and returns their paths relative to root,
	// in deterministic lexical walk order.
	DiscoverFixtures(root m.Path, extension string) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the workflow can check
	// existence before touching anything.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalFixtureFSAdapter is the concrete implementation backed by the
// local filesystem.
type LocalFixtureFSAdapter struct{}

// NewLocalFixtureFSAdapter constructs a LocalFixtureFSAdapter ready to be
// wired into the workflow.
func NewLocalFixtureFSAdapter() *LocalFixtureFSAdapter {
	return &LocalFixtureFSAdapter{}
}

// DiscoverFixtures walks root and collects every file whose extension
// matches. The root must exist and be a directory.
func (a *LocalFixtureFSAdapter) DiscoverFixtures(root m.Path, extension string) ([]m.Path, error) {
	rootStr := string(root)

	info, err := os.Stat(rootStr)
	if err != nil {
		return nil, fmt.Errorf("sources root error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("sources root %q is not a directory", rootStr)
	}

	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}

	var fixtures []m.Path

	err = filepath.WalkDir(rootStr, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || filepath.Ext(path) != extension {
			return nil
		}

		rel, err := filepath.Rel(rootStr, path)
		if err != nil {
			return err
		}

		fixtures = append(fixtures, m.Path(rel))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning sources root: %w", err)
	}

	return fixtures, nil
}

// ReadFile loads file contents from disk.
func (a *LocalFixtureFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalFixtureFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFixtureFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalFixtureFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalFixtureFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
