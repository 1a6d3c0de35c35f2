package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasi-stub/stub"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	importStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateEditTarget modelState = iota
	stateShowResult
)

type stubTUI struct {
	err      error
	result   *stub.Result
	filename string
	written  string
	input    textinput.Model
	state    modelState
}

func newStubTUI(filename, target string) *stubTUI {
	input := textinput.New()
	input.Placeholder = stub.DefaultTargetModule
	input.SetValue(target)
	input.Focus()
	input.CharLimit = 128
	input.Width = 48

	return &stubTUI{
		filename: filename,
		input:    input,
		state:    stateEditTarget,
	}
}

type transformedMsg struct {
	err    error
	result *stub.Result
}

type writtenMsg struct {
	err  error
	path string
}

func (m *stubTUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m *stubTUI) transform() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return transformedMsg{err: err}
	}

	result, err := stub.Transform(context.Background(), data, stub.Config{
		TargetModule: strings.TrimSpace(m.input.Value()),
	})
	if err != nil {
		return transformedMsg{err: err}
	}
	return transformedMsg{result: result}
}

func (m *stubTUI) write() tea.Msg {
	path := deriveOutputPath(m.filename)
	if err := writeOutput(m.filename, path, m.result.Output); err != nil {
		return writtenMsg{err: err}
	}
	return writtenMsg{path: path}
}

func (m *stubTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateShowResult {
				return m, tea.Quit
			}

		case "enter":
			if m.state == stateEditTarget {
				return m, m.transform
			}

		case "w":
			if m.state == stateShowResult && m.result != nil && m.written == "" && m.err == nil {
				return m, m.write
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateEditTarget
				m.result = nil
				m.written = ""
				m.err = nil
				m.input.Focus()
				return m, textinput.Blink
			}
		}

	case transformedMsg:
		m.err = msg.err
		m.result = msg.result
		m.state = stateShowResult
		m.input.Blur()
		return m, nil

	case writtenMsg:
		m.err = msg.err
		m.written = msg.path
		return m, nil
	}

	if m.state == stateEditTarget {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *stubTUI) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wasi-stub: " + m.filename))
	b.WriteString("\n\n")

	switch m.state {
	case stateEditTarget:
		b.WriteString("Import namespace to stub:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: stub • ctrl+c: quit"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("esc: back • ctrl+c: quit"))
			break
		}

		if len(m.result.Stubbed) == 0 {
			b.WriteString("No matching imports found.\n")
		}
		for _, c := range m.result.Stubbed {
			b.WriteString("  ")
			b.WriteString(importStyle.Render(c.Module + "::" + c.Name))
			b.WriteString(typeStyle.Render(signatureString(c)))
			b.WriteByte('\n')
		}
		b.WriteString(fmt.Sprintf("\n%d import(s) stubbed, output is %d bytes\n\n",
			len(m.result.Stubbed), len(m.result.Output)))

		if m.written != "" {
			b.WriteString(resultStyle.Render("wrote " + m.written))
			b.WriteString("\n\n")
			b.WriteString(helpStyle.Render("q: quit"))
		} else {
			b.WriteString(helpStyle.Render("w: write output • esc: back • q: quit"))
		}
	}

	b.WriteString("\n")
	return b.String()
}

func signatureString(c stub.Candidate) string {
	params := make([]string, len(c.Type.Params))
	for i, p := range c.Type.Params {
		params[i] = p.String()
	}
	sig := " (" + strings.Join(params, ", ") + ")"
	if len(c.Type.Results) > 0 {
		results := make([]string, len(c.Type.Results))
		for i, r := range c.Type.Results {
			results[i] = r.String()
		}
		sig += " -> " + strings.Join(results, ", ")
	}
	return sig
}

func runInteractive(filename, target string) error {
	p := tea.NewProgram(newStubTUI(filename, target))
	_, err := p.Run()
	return err
}
