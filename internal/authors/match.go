package authors

import (
	"bytes"
	"fmt"

	"github.com/starford/quill/internal/models"
	"github.com/starford/quill/internal/parser"
)

// Match strategies.
const (
	MatchSubstring   = "substring"
	MatchFrontmatter = "frontmatter"
)

// Matcher decides whether article content references an author.
type Matcher interface {
	Match(content []byte, id models.AuthorID) (bool, error)
}

// NewMatcher returns the Matcher for a strategy name.
func NewMatcher(strategy string) (Matcher, error) {
	switch strategy {
	case "", MatchSubstring:
		return SubstringMatcher{}, nil
	case MatchFrontmatter:
		return FrontmatterMatcher{}, nil
	default:
		return nil, fmt.Errorf("authors: unknown match strategy %q", strategy)
	}
}

// SubstringMatcher looks for `author: <id>`, with the id optionally single or
// double quoted, anywhere in the raw content. It is not anchored to line
// boundaries or the front-matter block, so "author: jane" also matches an
// article by "janet".
type SubstringMatcher struct{}

// Match implements Matcher.
func (SubstringMatcher) Match(content []byte, id models.AuthorID) (bool, error) {
	for _, marker := range []string{
		"author: " + string(id),
		`author: "` + string(id) + `"`,
		"author: '" + string(id) + "'",
	} {
		if bytes.Contains(content, []byte(marker)) {
			return true, nil
		}
	}
	return false, nil
}

// FrontmatterMatcher compares the parsed front-matter "author" field exactly.
type FrontmatterMatcher struct{}

// Match implements Matcher. Malformed front matter is an error.
func (FrontmatterMatcher) Match(content []byte, id models.AuthorID) (bool, error) {
	res, err := parser.Parse(content)
	if err != nil {
		return false, err
	}
	return res.Author == string(id), nil
}
