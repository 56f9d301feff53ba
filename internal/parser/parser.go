// Package parser extracts YAML front-matter fields from Markdown content.
package parser

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Result holds the output of parsing a Markdown file.
type Result struct {
	// Author is the front-matter "author" value, empty when absent.
	Author string
}

// Parse extracts the author reference from raw Markdown bytes. Content
// without front matter yields an empty Result.
func Parse(data []byte) (*Result, error) {
	fm, err := frontmatter(data)
	if err != nil {
		return nil, err
	}
	return &Result{Author: stringField(fm, "author")}, nil
}

// frontmatter decodes the YAML block between leading --- delimiters. It
// returns nil when the content has no such block.
func frontmatter(data []byte) (map[string]any, error) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, nil
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		// No closing delimiter: everything is body.
		return nil, nil
	}

	var fm map[string]any
	if err := yaml.Unmarshal(rest[:idx], &fm); err != nil {
		return nil, fmt.Errorf("parser: frontmatter: %w", err)
	}
	return fm, nil
}

// stringField returns fm[key] rendered as a string. Scalars such as numbers
// are formatted so that `author: 42` still names author "42".
func stringField(fm map[string]any, key string) string {
	raw, ok := fm[key]
	if !ok || raw == nil {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case int, int64, float64, bool:
		return fmt.Sprint(v)
	default:
		return ""
	}
}
