package prompt

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSelectModel_EnterPicksHighlighted(t *testing.T) {
	var m tea.Model = newSelectModel("Select an author to delete:", []string{"bob", "jane"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	sm := m.(selectModel)
	if sm.choice != "jane" {
		t.Errorf("choice = %q, want jane", sm.choice)
	}
	if !isQuit(t, cmd) {
		t.Error("enter should quit the program")
	}
	if !strings.Contains(sm.View(), "jane") {
		t.Errorf("final view should echo the answer: %q", sm.View())
	}
}

func TestSelectModel_EscCancels(t *testing.T) {
	var m tea.Model = newSelectModel("Select an author to delete:", []string{"bob"})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if got := m.(selectModel).choice; got != "" {
		t.Errorf("choice = %q, want empty", got)
	}
	if !isQuit(t, cmd) {
		t.Error("esc should quit the program")
	}
}

func TestSelectModel_ViewListsChoices(t *testing.T) {
	m := newSelectModel("Select an author to delete:", []string{"bob", "jane"})
	view := m.View()
	for _, want := range []string{"Select an author to delete:", "bob", "jane"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestListHeight(t *testing.T) {
	if got := listHeight(2, 20); got != 6 {
		t.Errorf("listHeight(2, 20) = %d, want 6", got)
	}
	if got := listHeight(50, 20); got != 20 {
		t.Errorf("listHeight(50, 20) = %d, want 20", got)
	}
}

func TestConfirmModel_Keys(t *testing.T) {
	cases := []struct {
		name      string
		initial   bool
		keys      []tea.KeyMsg
		want      bool
		cancelled bool
	}{
		{"yes", false, []tea.KeyMsg{keyRunes("y")}, true, false},
		{"no", true, []tea.KeyMsg{keyRunes("n")}, false, false},
		{"enter keeps default", false, []tea.KeyMsg{{Type: tea.KeyEnter}}, false, false},
		{"toggle then enter", false, []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}}, true, false},
		{"esc cancels", true, []tea.KeyMsg{{Type: tea.KeyEsc}}, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m tea.Model = newConfirmModel("Are you sure?", nil, tc.initial)
			var cmd tea.Cmd
			for _, k := range tc.keys {
				m, cmd = m.Update(k)
			}
			cm := m.(confirmModel)
			if !cm.done {
				t.Fatal("model should be done")
			}
			if cm.value != tc.want {
				t.Errorf("value = %v, want %v", cm.value, tc.want)
			}
			if cm.cancelled != tc.cancelled {
				t.Errorf("cancelled = %v, want %v", cm.cancelled, tc.cancelled)
			}
			if !isQuit(t, cmd) {
				t.Error("final key should quit the program")
			}
		})
	}
}

func TestConfirmModel_ViewShowsDetails(t *testing.T) {
	m := newConfirmModel("Are you sure you want to delete this author?",
		[]string{"Author 'jane' is referenced in 1 article(s):", "  - post1.md"}, false)
	view := m.View()
	for _, want := range []string{"referenced in 1 article(s)", "  - post1.md", "Are you sure", "(y/N)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTerminal_SelectNoChoices(t *testing.T) {
	got, err := New(strings.NewReader(""), &strings.Builder{}).Select(context.Background(), "Pick", nil)
	if err != nil || got != "" {
		t.Errorf("Select(nil) = %q, %v; want empty, nil", got, err)
	}
}
