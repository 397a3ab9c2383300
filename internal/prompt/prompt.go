/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package prompt asks for CLI values the user did not pass as flags.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// ErrAborted is returned when the user cancels a prompt.
	ErrAborted = errors.New("prompt aborted")

	// ErrNoAnswer is returned when a question without a default is asked
	// and nobody can answer it.
	ErrNoAnswer = errors.New("no value given")
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	hintStyle    = lipgloss.NewStyle().Italic(true)
	exampleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Question describes a single prompt.
type Question struct {
	// Heading is printed in bold above the prompt.
	Heading string
	// Hint is an optional explanation printed under the heading.
	Hint string
	// Example is an optional highlighted example appended to the hint.
	Example string
	// Label precedes the input field.
	Label string
	// Default is used when the answer is empty.
	Default string
}

// Prompter asks questions.
type Prompter interface {
	Input(q Question) (string, error)
	Confirm(q Question, def bool) (bool, error)
}

// New returns a terminal prompter when in is a terminal, and a prompter
// that answers with defaults otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return &Terminal{in: in, out: out}
	}
	return Defaults{}
}

// Defaults answers every question with its default.
type Defaults struct{}

// Input implements Prompter.
func (Defaults) Input(q Question) (string, error) {
	if q.Default == "" {
		return "", fmt.Errorf("%w: %s", ErrNoAnswer, strings.TrimSuffix(q.Label, ":"))
	}
	return q.Default, nil
}

// Confirm implements Prompter.
func (Defaults) Confirm(_ Question, def bool) (bool, error) {
	return def, nil
}

// Terminal asks questions interactively.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// NewTerminal creates an interactive prompter over explicit streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Input implements Prompter.
func (t *Terminal) Input(q Question) (string, error) {
	final, err := t.run(newInputModel(q))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	value := m.Value()
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrNoAnswer, strings.TrimSuffix(q.Label, ":"))
	}
	return value, nil
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(q Question, def bool) (bool, error) {
	final, err := t.run(newConfirmModel(q, def))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.value, nil
}

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

func header(q Question) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(headingStyle.Render(q.Heading))
	if q.Hint != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(q.Hint))
		if q.Example != "" {
			b.WriteString(exampleStyle.Render(q.Example))
		}
	}
	b.WriteString("\n")
	return b.String()
}

type inputModel struct {
	question Question
	input    textinput.Model
	done     bool
	aborted  bool
}

func newInputModel(q Question) inputModel {
	ti := textinput.New()
	ti.Prompt = q.Label + " "
	ti.Placeholder = q.Default
	ti.CharLimit = 256
	ti.Focus()
	return inputModel{question: q, input: ti}
}

// Value returns the trimmed answer, or the default when empty.
func (m inputModel) Value() string {
	if v := strings.TrimSpace(m.input.Value()); v != "" {
		return v
	}
	return m.question.Default
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return header(m.question) + m.question.Label + " " + answerStyle.Render(m.Value()) + "\n"
	}
	if m.aborted {
		return ""
	}
	return header(m.question) + m.input.View()
}

type confirmModel struct {
	question Question
	value    bool
	done     bool
	aborted  bool
}

func newConfirmModel(q Question, def bool) confirmModel {
	return confirmModel{question: q, value: def}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	}
	switch strings.ToLower(key.String()) {
	case "y":
		m.value, m.done = true, true
		return m, tea.Quit
	case "n":
		m.value, m.done = false, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return header(m.question) + m.question.Label + " " + answerStyle.Render(answer) + "\n"
	}
	choices := "(y/N)"
	if m.value {
		choices = "(Y/n)"
	}
	return header(m.question) + m.question.Label + " " + choices + " "
}
