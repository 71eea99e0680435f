package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/aistackctl/internal/aistackctl"
)

type hardwareOption struct {
	value aistackctl.HardwareProfile
	label string
	desc  string
}

type hardwareSelectModel struct {
	state   *wizardState
	cursor  int
	options []hardwareOption
}

func newHardwareSelectModel(state *wizardState) *hardwareSelectModel {
	return &hardwareSelectModel{
		state: state,
		options: []hardwareOption{
			{value: aistackctl.HardwareCPU, label: "CPU only", desc: "No accelerator; model inference runs on the CPU"},
			{value: aistackctl.HardwareGPUNvidia, label: "NVIDIA GPU", desc: "Requires the NVIDIA container toolkit"},
			{value: aistackctl.HardwareGPUAMD, label: "AMD GPU", desc: "Requires ROCm-capable hardware"},
		},
	}
}

func (m *hardwareSelectModel) Init() tea.Cmd {
	for i, opt := range m.options {
		if opt.value == m.state.hardware {
			m.cursor = i
			break
		}
	}
	return nil
}

func (m *hardwareSelectModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isEsc(msg) {
			return m, func() tea.Msg { return navigateMsg{to: screenRepoInput} }
		}
		if isUp(msg) && m.cursor > 0 {
			m.cursor--
		}
		if isDown(msg) && m.cursor < len(m.options)-1 {
			m.cursor++
		}
		if isEnter(msg) {
			m.state.hardware = m.options[m.cursor].value
			return m, func() tea.Msg { return navigateMsg{to: screenConfirm} }
		}
	}
	return m, nil
}

func (m *hardwareSelectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hardware Profile"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Selects which accelerator variant of the stack is activated."))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		radio := radioOff
		label := normalStyle.Render(opt.label)
		if i == m.cursor {
			radio = radioOn
			label = selectedStyle.Render(opt.label)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", radio, label))
		b.WriteString(fmt.Sprintf("      %s\n", mutedStyle.Render(opt.desc)))
	}

	b.WriteString(helpStyle.Render("\n  up/down: navigate  enter: select  esc: back"))
	return b.String()
}
