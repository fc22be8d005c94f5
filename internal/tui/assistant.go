package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/productive/internal/insight"
	"github.com/sadopc/productive/internal/state"
)

type chatMessage struct {
	fromUser bool
	text     string
}

type assistantModel struct {
	state    *state.Container
	provider insight.Provider
	width    int
	height   int

	messages []chatMessage
	input    textinput.Model
	waiting  bool
}

func newAssistantModel(c *state.Container, p insight.Provider) assistantModel {
	ti := textinput.New()
	ti.Placeholder = "Ask your coach..."
	ti.CharLimit = 500
	ti.Prompt = "› "

	return assistantModel{
		state:    c,
		provider: p,
		messages: []chatMessage{{text: insight.Greeting}},
		input:    ti,
	}
}

func (a *assistantModel) setSize(w, h int) {
	a.width = w
	a.height = h
	a.input.Width = w - 12
}

// typing reports whether the input owns the keyboard.
func (a assistantModel) typing() bool {
	return a.input.Focused()
}

func (a *assistantModel) focus() tea.Cmd {
	return a.input.Focus()
}

func (a assistantModel) update(msg tea.Msg) (assistantModel, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		a.messages = append(a.messages, chatMessage{text: msg.text})
		a.waiting = false
		return a, nil

	case tea.KeyMsg:
		if !a.typing() {
			if key.Matches(msg, keys.Enter) {
				return a, a.focus()
			}
			return a, nil
		}

		switch {
		case key.Matches(msg, keys.Back):
			a.input.Blur()
			return a, nil
		case key.Matches(msg, keys.Enter):
			return a.send()
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// send posts the typed message. Only one request is in flight at a time.
func (a assistantModel) send() (assistantModel, tea.Cmd) {
	text := strings.TrimSpace(a.input.Value())
	if text == "" || a.waiting {
		return a, nil
	}

	a.messages = append(a.messages, chatMessage{fromUser: true, text: text})
	a.input.SetValue("")
	a.waiting = true

	tasks := a.state.Tasks()
	p := a.provider
	return a, func() tea.Msg {
		return chatReplyMsg{text: insight.Chat(context.Background(), p, text, tasks)}
	}
}

func (a assistantModel) view() string {
	w := a.width - 4
	bubbleWidth := w * 2 / 3

	var rendered []string
	for _, m := range a.messages {
		if m.fromUser {
			bubble := highlightStyle.Width(bubbleWidth).Align(lipgloss.Right).Render(m.text)
			rendered = append(rendered, lipgloss.PlaceHorizontal(w-6, lipgloss.Right, bubble))
		} else {
			rendered = append(rendered, normalItemStyle.Width(bubbleWidth).Render(accentStyle.Render("◆ ")+m.text))
		}
		rendered = append(rendered, "")
	}
	if a.waiting {
		rendered = append(rendered, mutedStyle.Render("Coach is thinking..."))
	}

	// Keep the newest messages when the log outgrows the panel.
	log := strings.Join(rendered, "\n")
	if budget := a.height - 8; budget > 0 {
		lines := strings.Split(log, "\n")
		if len(lines) > budget {
			log = strings.Join(lines[len(lines)-budget:], "\n")
		}
	}

	hint := mutedStyle.Render("  enter: send  esc: stop typing")
	if !a.typing() {
		hint = mutedStyle.Render("  enter: start typing")
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Neural Productivity Coach"),
		"",
		log,
		"",
		a.input.View(),
		hint,
	))
}
