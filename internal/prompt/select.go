package prompt

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const maxListHeight = 20

// choiceItem wraps a choice for the list display.
type choiceItem string

func (i choiceItem) Title() string       { return string(i) }
func (i choiceItem) Description() string { return "" }
func (i choiceItem) FilterValue() string { return string(i) }

type selectModel struct {
	message string
	list    list.Model
	choice  string
	done    bool
}

func newSelectModel(message string, choices []string) selectModel {
	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem(c)
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 48, listHeight(len(choices), maxListHeight))
	l.Title = message
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return selectModel{message: message, list: l}
}

func listHeight(n, limit int) int {
	h := n + 4
	if h > limit {
		return limit
	}
	return h
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, listHeight(len(m.list.Items()), msg.Height))
		return m, nil

	case tea.KeyMsg:
		filtering := m.list.FilterState() == list.Filtering
		switch msg.String() {
		case "ctrl+c":
			m.done = true
			m.choice = ""
			return m, tea.Quit
		case "esc":
			if !filtering {
				m.done = true
				m.choice = ""
				return m, tea.Quit
			}
		case "enter":
			if !filtering {
				if item, ok := m.list.SelectedItem().(choiceItem); ok {
					m.choice = string(item)
				}
				m.done = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.done {
		if m.choice == "" {
			return ""
		}
		return questionStyle.Render(m.message) + " " + answerStyle.Render(m.choice) + "\n"
	}
	return m.list.View()
}
