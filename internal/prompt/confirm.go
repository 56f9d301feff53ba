package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmKeyMap struct {
	Yes    key.Binding
	No     key.Binding
	Toggle key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var confirmKeys = confirmKeyMap{
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
	Toggle: key.NewBinding(key.WithKeys("left", "right", "tab", "h", "l"), key.WithHelp("←/→", "toggle")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

type confirmModel struct {
	message   string
	details   []string
	value     bool
	done      bool
	cancelled bool
}

func newConfirmModel(message string, details []string, initial bool) confirmModel {
	return confirmModel{message: message, details: details, value: initial}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, confirmKeys.Yes):
		m.value, m.done = true, true
		return m, tea.Quit
	case key.Matches(k, confirmKeys.No):
		m.value, m.done = false, true
		return m, tea.Quit
	case key.Matches(k, confirmKeys.Toggle):
		m.value = !m.value
	case key.Matches(k, confirmKeys.Submit):
		m.done = true
		return m, tea.Quit
	case key.Matches(k, confirmKeys.Cancel):
		m.value, m.done, m.cancelled = false, true, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	var b strings.Builder
	for i, line := range m.details {
		if i == 0 {
			b.WriteString(noticeStyle.Render("⚠ " + line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString(questionStyle.Render("? " + m.message))
	b.WriteString(" ")
	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		b.WriteString(answerStyle.Render(answer))
		b.WriteString("\n")
		return b.String()
	}
	if m.value {
		b.WriteString(hintStyle.Render("(Y/n) "))
		b.WriteString("Yes")
	} else {
		b.WriteString(hintStyle.Render("(y/N) "))
		b.WriteString("No")
	}
	return b.String()
}
