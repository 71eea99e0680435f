package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/aistackctl/internal/aistackctl"
)

// DefaultRepoURL is the stack cloned when the operator leaves the
// repository field blank.
const DefaultRepoURL = "https://github.com/n8n-io/self-hosted-ai-starter-kit"

type repoInputModel struct {
	state  *wizardState
	input  textinput.Model
	errMsg string
}

func newRepoInputModel(state *wizardState) *repoInputModel {
	ti := textinput.New()
	ti.Placeholder = DefaultRepoURL
	ti.CharLimit = 512
	ti.Width = 60

	return &repoInputModel{
		state: state,
		input: ti,
	}
}

func (m *repoInputModel) Init() tea.Cmd {
	if m.state.repo != "" {
		m.input.SetValue(m.state.repo)
	}
	m.errMsg = ""
	m.input.Focus()
	return textinput.Blink
}

func (m *repoInputModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenEmailInput} }
		}
		if isEnter(msg) {
			val := strings.TrimSpace(m.input.Value())
			if val == "" {
				val = DefaultRepoURL
			}
			if err := aistackctl.ValidateRepoURL(val); err != nil {
				m.errMsg = "Repository URL must start with http:// or https://"
				return m, nil
			}
			m.errMsg = ""
			m.state.repo = val
			return m, func() tea.Msg { return navigateMsg{to: screenHardwareSelect} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *repoInputModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Stack Repository"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Repository containing the compose stack. Empty uses the upstream starter kit."))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n")

	if val := strings.TrimSpace(m.input.Value()); val != "" && aistackctl.ValidateRepoURL(val) == nil {
		target := aistackctl.DeriveTarget(val)
		b.WriteString("\n  " + mutedStyle.Render(fmt.Sprintf("deploys to %s as %s", target.Dir, target.Service)))
	}

	if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg))
	}

	b.WriteString(helpStyle.Render("\n  enter: confirm  esc: back"))
	return b.String()
}
