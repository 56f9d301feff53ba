package authors

import (
	"errors"
	"reflect"
	"testing"

	"github.com/starford/quill/internal/apperr"
	"github.com/starford/quill/internal/models"
	"github.com/starford/quill/internal/project"
	"github.com/starford/quill/internal/testutil"
)

func openCatalog(t *testing.T, root string, layout project.Layout, match Matcher) *Catalog {
	t.Helper()
	paths, store, err := project.Workspace{Cwd: root, Layout: layout}.Open()
	if err != nil {
		t.Fatalf("open workspace: %v", err)
	}
	return NewCatalog(paths, store, ".md", match, nil)
}

func TestCatalog_Authors(t *testing.T) {
	root, layout := testutil.TestProject(t, map[string]string{
		"authors/jane.md":   "jane",
		"authors/bob.md":    "bob",
		"authors/notes.txt": "ignored",
		"authors/.gitkeep":  "",
	})
	ids, err := openCatalog(t, root, layout, nil).Authors()
	if err != nil {
		t.Fatalf("Authors: %v", err)
	}
	want := []models.AuthorID{"bob", "jane"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestCatalog_AuthorsUndefined(t *testing.T) {
	root, _ := testutil.TestProject(t, nil)
	_, err := openCatalog(t, root, project.Layout{}, nil).Authors()
	if !errors.Is(err, apperr.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestCatalog_Exists(t *testing.T) {
	root, layout := testutil.TestProject(t, map[string]string{"authors/jane.md": "jane"})
	c := openCatalog(t, root, layout, nil)

	path, ok, err := c.Exists("jane")
	if err != nil || !ok {
		t.Fatalf("Exists(jane) = %v, %v", ok, err)
	}
	if path != "authors/jane.md" {
		t.Errorf("path = %q", path)
	}
	if _, ok, _ := c.Exists("ghost"); ok {
		t.Error("ghost should not exist")
	}
}

func TestCatalog_References(t *testing.T) {
	root, layout := testutil.TestProject(t, map[string]string{
		"authors/jane.md": "jane",
		"articles/a.md":   "---\nauthor: jane\n---\n",
		"articles/b.md":   "---\nauthor: bob\n---\n",
		"articles/c.md":   "---\nauthor: 'jane'\n---\n",
		"articles/d.txt":  "author: jane",
	})
	c := openCatalog(t, root, layout, nil)

	refs, scanned, err := c.References("jane")
	if err != nil {
		t.Fatalf("References: %v", err)
	}
	if !scanned {
		t.Error("articles collection should have been scanned")
	}
	want := models.ReferenceSet{"a.md", "c.md"}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("refs = %v, want %v", refs, want)
	}

	again, _, err := c.References("jane")
	if err != nil {
		t.Fatalf("References (second run): %v", err)
	}
	if !reflect.DeepEqual(refs, again) {
		t.Errorf("scan not idempotent: %v vs %v", refs, again)
	}
}

func TestCatalog_ReferencesNoArticles(t *testing.T) {
	root, layout := testutil.TestProject(t, map[string]string{"authors/jane.md": "jane"})

	refs, scanned, err := openCatalog(t, root, layout, nil).References("jane")
	if err != nil {
		t.Fatalf("missing dir: %v", err)
	}
	if scanned || !refs.Empty() {
		t.Errorf("missing articles dir: scanned=%v refs=%v", scanned, refs)
	}

	layout.ArticlesDir = ""
	refs, scanned, err = openCatalog(t, root, layout, nil).References("jane")
	if err != nil {
		t.Fatalf("undefined dir: %v", err)
	}
	if scanned || !refs.Empty() {
		t.Errorf("undefined articles dir: scanned=%v refs=%v", scanned, refs)
	}
}

func TestCatalog_ReferencesUnreadableArticle(t *testing.T) {
	root, layout := testutil.TestProject(t, map[string]string{"authors/jane.md": "jane"})
	// A directory with the content extension cannot be read as a file.
	testutil.MkdirAll(t, root, "articles/broken.md")

	if _, _, err := openCatalog(t, root, layout, nil).References("jane"); err == nil {
		t.Fatal("expected error for unreadable article")
	}
}

func TestCatalog_ReferencesFrontmatter(t *testing.T) {
	root, layout := testutil.TestProject(t, map[string]string{
		"articles/a.md": "---\nauthor: jane\n---\n",
		"articles/b.md": "---\nauthor: janet\n---\n",
		"articles/c.md": "Quote: author: jane said hi\n",
	})
	refs, _, err := openCatalog(t, root, layout, FrontmatterMatcher{}).References("jane")
	if err != nil {
		t.Fatalf("References: %v", err)
	}
	if !reflect.DeepEqual(refs, models.ReferenceSet{"a.md"}) {
		t.Errorf("refs = %v, want [a.md]", refs)
	}
}
