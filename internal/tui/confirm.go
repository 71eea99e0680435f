package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/aistackctl/internal/aistackctl"
)

type confirmModel struct {
	state  *wizardState
	cursor int
}

func newConfirmModel(state *wizardState) *confirmModel {
	return &confirmModel{state: state}
}

func (m *confirmModel) Init() tea.Cmd {
	m.cursor = 0
	return nil
}

func (m *confirmModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenHardwareSelect} }
		}
		if (isLeft(msg) || isUp(msg)) && m.cursor > 0 {
			m.cursor--
		}
		if (isRight(msg) || isDown(msg)) && m.cursor < 2 {
			m.cursor++
		}
		if isEnter(msg) {
			switch m.cursor {
			case 0:
				return m, func() tea.Msg { return navigateMsg{to: screenPreflight} }
			case 1:
				return m, func() tea.Msg { return navigateMsg{to: screenHardwareSelect} }
			case 2:
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *confirmModel) View() string {
	var b strings.Builder

	target := aistackctl.DeriveTarget(m.state.repo)

	b.WriteString(titleStyle.Render("Confirm Deployment"))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("  Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Domain:      %s\n", selectedStyle.Render(m.state.domain)))
	b.WriteString(fmt.Sprintf("  Email:       %s\n", selectedStyle.Render(m.state.email)))
	b.WriteString(fmt.Sprintf("  Repository:  %s\n", selectedStyle.Render(m.state.repo)))
	b.WriteString(fmt.Sprintf("  Hardware:    %s\n", selectedStyle.Render(string(m.state.hardware))))
	b.WriteString(fmt.Sprintf("  Directory:   %s\n", normalStyle.Render(target.Dir)))
	b.WriteString(fmt.Sprintf("  Service:     %s\n", normalStyle.Render(target.Service)))

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  Equivalent CLI Command"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  $ aistackctl install --domain %s --email %s --repo %s --hardware %s",
		m.state.domain, m.state.email, m.state.repo, m.state.hardware)))
	b.WriteString("\n\n")

	buttons := []string{"Deploy", "Back", "Cancel"}
	for i, btn := range buttons {
		if i == m.cursor {
			b.WriteString("  " + borderStyle.Render(selectedStyle.Render(btn)))
		} else {
			b.WriteString("  " + normalStyle.Render("["+btn+"]"))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("\n  left/right: navigate  enter: select  esc: back"))
	return b.String()
}
