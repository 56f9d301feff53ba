// Package authors implements author deletion guarded by article reference checks.
package authors

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/starford/quill/internal/apperr"
	"github.com/starford/quill/internal/models"
	"github.com/starford/quill/internal/project"
	"github.com/starford/quill/internal/storage"
)

// ErrAuthorsUndefined is returned when the project has no authors collection.
var ErrAuthorsUndefined = fmt.Errorf("authors directory path is not defined: %w", apperr.ErrConfig)

// Catalog answers read-only questions about the authors and articles of a project.
type Catalog struct {
	paths  project.Paths
	store  storage.Provider
	ext    string
	match  Matcher
	logger *slog.Logger
}

// NewCatalog creates a catalog over the given project paths and storage.
func NewCatalog(paths project.Paths, store storage.Provider, ext string, match Matcher, logger *slog.Logger) *Catalog {
	if match == nil {
		match = SubstringMatcher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{paths: paths, store: store, ext: ext, match: match, logger: logger}
}

// Authors lists the author ids in the authors collection, in enumeration order.
func (c *Catalog) Authors() ([]models.AuthorID, error) {
	dir, ok := c.paths.Authors.Get()
	if !ok {
		return nil, ErrAuthorsUndefined
	}
	names, err := c.store.Entries(dir)
	if err != nil {
		return nil, err
	}
	var ids []models.AuthorID
	for _, name := range names {
		if id, ok := models.AuthorIDFromFile(name, c.ext); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// AuthorPath returns the storage path of the author entity id.
func (c *Catalog) AuthorPath(id models.AuthorID) (string, error) {
	dir, ok := c.paths.Authors.Get()
	if !ok {
		return "", ErrAuthorsUndefined
	}
	return filepath.Join(dir, id.FileName(c.ext)), nil
}

// Exists reports whether the author entity id is present, along with its path.
func (c *Catalog) Exists(id models.AuthorID) (string, bool, error) {
	path, err := c.AuthorPath(id)
	if err != nil {
		return "", false, err
	}
	ok, err := c.store.Exists(path)
	if err != nil {
		return "", false, err
	}
	return path, ok, nil
}

// References returns the articles whose content references id. The second
// result is false when no articles collection exists, in which case the set
// is always empty. Articles are read one at a time; the first unreadable
// article aborts the scan.
func (c *Catalog) References(id models.AuthorID) (models.ReferenceSet, bool, error) {
	dir, ok := c.paths.Articles.Get()
	if !ok {
		return nil, false, nil
	}
	names, err := c.store.Entries(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	refs := models.ReferenceSet{}
	for _, name := range names {
		if _, ok := models.AuthorIDFromFile(name, c.ext); !ok {
			continue
		}
		data, err := c.store.Read(filepath.Join(dir, name))
		if err != nil {
			return nil, true, err
		}
		matched, err := c.match.Match(data, id)
		if err != nil {
			return nil, true, fmt.Errorf("article %s: %w", name, err)
		}
		if matched {
			c.logger.Debug("scan: article references author",
				slog.String("article", name),
				slog.String("author", id.String()))
			refs = append(refs, name)
		}
	}
	return refs, true, nil
}
