package authors

import "testing"

func TestSubstringMatcher(t *testing.T) {
	m := SubstringMatcher{}
	cases := []struct {
		content string
		want    bool
	}{
		{"---\nauthor: jane\n---\n", true},
		{"---\nauthor: \"jane\"\n---\n", true},
		{"---\nauthor: 'jane'\n---\n", true},
		{"no front matter, but author: jane in prose", true},
		{"---\nauthor: janet\n---\n", true}, // substring of a longer id
		{"---\nauthor:jane\n---\n", false},
		{"---\nauthor: bob\n---\n", false},
		{"", false},
	}
	for _, tc := range cases {
		got, err := m.Match([]byte(tc.content), "jane")
		if err != nil {
			t.Fatalf("Match(%q): %v", tc.content, err)
		}
		if got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.content, got, tc.want)
		}
	}
}

func TestFrontmatterMatcher(t *testing.T) {
	m := FrontmatterMatcher{}
	cases := []struct {
		content string
		want    bool
	}{
		{"---\nauthor: jane\n---\nbody", true},
		{"---\nauthor: \"jane\"\n---\nbody", true},
		{"---\nauthor: janet\n---\nbody", false},
		{"no front matter, but author: jane in prose", false},
	}
	for _, tc := range cases {
		got, err := m.Match([]byte(tc.content), "jane")
		if err != nil {
			t.Fatalf("Match(%q): %v", tc.content, err)
		}
		if got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.content, got, tc.want)
		}
	}
}

func TestFrontmatterMatcher_Malformed(t *testing.T) {
	if _, err := (FrontmatterMatcher{}).Match([]byte("---\n: bad: {{{\n---\n"), "jane"); err == nil {
		t.Fatal("expected error for malformed front matter")
	}
}

func TestNewMatcher(t *testing.T) {
	if m, err := NewMatcher(""); err != nil {
		t.Fatalf("default: %v", err)
	} else if _, ok := m.(SubstringMatcher); !ok {
		t.Errorf("default matcher = %T, want SubstringMatcher", m)
	}
	if m, err := NewMatcher(MatchFrontmatter); err != nil {
		t.Fatalf("frontmatter: %v", err)
	} else if _, ok := m.(FrontmatterMatcher); !ok {
		t.Errorf("matcher = %T, want FrontmatterMatcher", m)
	}
	if _, err := NewMatcher("regex"); err == nil {
		t.Error("expected error for unknown strategy")
	}
}
