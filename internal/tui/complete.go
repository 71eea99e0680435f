package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/aistackctl/internal/aistackctl"
)

type completeModel struct {
	state  *wizardState
	cursor int // 0=Deploy Another, 1=Exit
}

func newCompleteModel(state *wizardState) *completeModel {
	return &completeModel{state: state}
}

func (m *completeModel) Init() tea.Cmd {
	m.cursor = 1
	return nil
}

func (m *completeModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isLeft(msg) && m.cursor > 0 {
			m.cursor--
		}
		if isRight(msg) && m.cursor < 1 {
			m.cursor++
		}
		if isEnter(msg) {
			if m.cursor == 0 {
				return m, func() tea.Msg { return resetMsg{} }
			}
			return m, tea.Quit
		}
		if msg.String() == "q" || isEsc(msg) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *completeModel) View() string {
	var b strings.Builder

	target := aistackctl.DeriveTarget(m.state.repo)

	b.WriteString(successStyle.Render("  Deployment Complete!"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Domain:     %s\n", selectedStyle.Render(m.state.domain)))
	b.WriteString(fmt.Sprintf("  Directory:  %s\n", normalStyle.Render(target.Dir)))
	b.WriteString(fmt.Sprintf("  Service:    %s\n", normalStyle.Render(target.Service)))
	b.WriteString(fmt.Sprintf("  Hardware:   %s\n", normalStyle.Render(string(m.state.hardware))))

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("  Next Steps"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ aistackctl status    # container status"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("  $ aistackctl verify    # re-run the health probe"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  $ systemctl status %s", target.Service)))
	b.WriteString("\n\n")

	buttons := []string{"Deploy Another", "Exit"}
	for i, btn := range buttons {
		if i == m.cursor {
			b.WriteString("  " + borderStyle.Render(selectedStyle.Render(btn)))
		} else {
			b.WriteString("  " + normalStyle.Render("["+btn+"]"))
		}
		b.WriteString("  ")
	}

	b.WriteString(helpStyle.Render("\n\n  left/right: navigate  enter: select  q: quit"))
	return b.String()
}
