// Package project locates the content collections of a project directory.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/quill/internal/storage"
)

// ErrInvalidProject is returned when the project root cannot be used.
var ErrInvalidProject = errors.New("project: invalid project")

// Dir is an optional collection directory, relative to the project root.
// The zero value is absent.
type Dir struct {
	path string
	ok   bool
}

// Some returns a present Dir.
func Some(path string) Dir { return Dir{path: path, ok: true} }

// None returns an absent Dir.
func None() Dir { return Dir{} }

// Get returns the directory and whether it is defined.
func (d Dir) Get() (string, bool) { return d.path, d.ok }

func (d Dir) String() string {
	if !d.ok {
		return "<undefined>"
	}
	return d.path
}

// Layout describes where collections live. Empty directories are undefined.
type Layout struct {
	Root        string
	AuthorsDir  string
	ArticlesDir string
}

// Paths holds the resolved project locations.
type Paths struct {
	// Root is the absolute project directory.
	Root     string
	Authors  Dir
	Articles Dir
}

// Resolve validates the project rooted at layout.Root (relative to cwd, or
// cwd itself when empty) and returns its collection directories.
func Resolve(cwd string, layout Layout) (Paths, error) {
	root := cwd
	if layout.Root != "" {
		root = layout.Root
		if !filepath.IsAbs(root) {
			root = filepath.Join(cwd, root)
		}
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return Paths{}, fmt.Errorf("%w: resolve root: %v", ErrInvalidProject, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return Paths{}, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	if !info.IsDir() {
		return Paths{}, fmt.Errorf("%w: %s is not a directory", ErrInvalidProject, root)
	}

	authors, err := collection(root, layout.AuthorsDir)
	if err != nil {
		return Paths{}, err
	}
	articles, err := collection(root, layout.ArticlesDir)
	if err != nil {
		return Paths{}, err
	}
	return Paths{Root: root, Authors: authors, Articles: articles}, nil
}

// collection turns a configured directory into a root-relative Dir.
func collection(root, dir string) (Dir, error) {
	if strings.TrimSpace(dir) == "" {
		return None(), nil
	}
	abs := dir
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, dir)
	}
	rel, err := filepath.Rel(root, filepath.Clean(abs))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return None(), fmt.Errorf("%w: %s is outside the project root", ErrInvalidProject, dir)
	}
	return Some(rel), nil
}

// Workspace opens a project relative to a working directory.
type Workspace struct {
	Cwd    string
	Layout Layout
}

// Open resolves the project paths and returns storage rooted at the project.
func (w Workspace) Open() (Paths, storage.Provider, error) {
	paths, err := Resolve(w.Cwd, w.Layout)
	if err != nil {
		return Paths{}, nil, err
	}
	store, err := storage.NewFS(paths.Root)
	if err != nil {
		return Paths{}, nil, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}
	return paths, store, nil
}
