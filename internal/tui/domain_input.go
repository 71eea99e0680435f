package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/aistackctl/internal/aistackctl"
)

type domainInputModel struct {
	state   *wizardState
	input   textinput.Model
	errMsg  string
	warnMsg string
	// warned marks that the bare-domain warning was shown; a second enter
	// overrides it.
	warned bool
}

func newDomainInputModel(state *wizardState) *domainInputModel {
	ti := textinput.New()
	ti.Placeholder = "n8n.example.com"
	ti.CharLimit = 253
	ti.Width = 40

	return &domainInputModel{
		state: state,
		input: ti,
	}
}

func (m *domainInputModel) Init() tea.Cmd {
	if m.state.domain != "" {
		m.input.SetValue(m.state.domain)
	}
	m.errMsg = ""
	m.warnMsg = ""
	m.warned = false
	m.input.Focus()
	return textinput.Blink
}

func (m *domainInputModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenWelcome} }
		}
		if isEnter(msg) {
			val := strings.TrimSpace(m.input.Value())
			if err := aistackctl.ValidateDomain(val); err != nil {
				m.errMsg = "Invalid domain format"
				m.warnMsg = ""
				m.warned = false
				return m, nil
			}
			m.errMsg = ""
			if aistackctl.IsBareDomain(val) && !m.warned {
				m.warnMsg = "Looks like a root domain, not a subdomain. Press enter again to use it anyway."
				m.warned = true
				return m, nil
			}
			m.state.domain = val
			return m, func() tea.Msg { return navigateMsg{to: screenEmailInput} }
		}
	}

	// Any edit clears a pending warning override.
	m.warned = false
	m.warnMsg = ""

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *domainInputModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Domain"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Enter the domain the stack will be served on."))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n  " + errorStyle.Render(m.errMsg))
	}
	if m.warnMsg != "" {
		b.WriteString("\n  " + warningStyle.Render(m.warnMsg))
	}

	b.WriteString(helpStyle.Render("\n  enter: confirm  esc: back"))
	return b.String()
}
