package parser

import (
	"testing"
)

func TestParse_Author(t *testing.T) {
	r, err := Parse([]byte("---\ntitle: Hello\nauthor: jane\n---\n# Hello\nBody text.\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Author != "jane" {
		t.Errorf("author = %q, want %q", r.Author, "jane")
	}
}

func TestParse_QuotedAuthor(t *testing.T) {
	for _, in := range []string{
		"---\nauthor: \"jane\"\n---\n",
		"---\nauthor: 'jane'\n---\n",
	} {
		r, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if r.Author != "jane" {
			t.Errorf("Parse(%q).Author = %q", in, r.Author)
		}
	}
}

func TestParse_NumericAuthor(t *testing.T) {
	r, err := Parse([]byte("---\nauthor: 42\n---\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Author != "42" {
		t.Errorf("author = %q, want 42", r.Author)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	r, err := Parse([]byte("# Just a heading\nauthor: jane\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Author != "" {
		t.Errorf("author outside frontmatter must be ignored, got %q", r.Author)
	}
}

func TestParse_UnclosedFrontmatter(t *testing.T) {
	r, err := Parse([]byte("---\nauthor: jane\nno closing fence\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Author != "" {
		t.Errorf("author = %q, want empty", r.Author)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("---\n: invalid: yaml: {{{\n---\nBody\n"))
	if err == nil {
		t.Fatal("expected error for malformed frontmatter")
	}
}
