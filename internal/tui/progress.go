package tui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/example/aistackctl/internal/aistackctl"
)

type stepStatus int

const (
	stepPending stepStatus = iota
	stepRunning
	stepDone
	stepSkipped
	stepFailed
)

type progressRow struct {
	label  string
	status stepStatus
	err    error
	// tail holds the last lines of the step's captured output when it
	// failed, so the underlying tool's message is visible.
	tail []string
}

type stepDoneMsg struct {
	index  int
	output string
	err    error
}

type progressModel struct {
	state   *wizardState
	dep     *aistackctl.Deployment
	steps   []aistackctl.Step
	rows    []progressRow
	spinner spinner.Model
	current int
	done    bool
	errMsg  string

	// tlsPrompt is raised when certificate issuance fails; the operator may
	// explicitly continue without TLS.
	tlsPrompt bool
	cursor    int // 0=Continue without TLS, 1=Abort
}

func newProgressModel(state *wizardState) *progressModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &progressModel{
		state:   state,
		spinner: sp,
	}
}

func (m *progressModel) Init() tea.Cmd {
	m.current = 0
	m.done = false
	m.errMsg = ""
	m.tlsPrompt = false
	m.cursor = 0

	dep, err := aistackctl.NewDeployment(m.state.domain, m.state.email, m.state.repo, m.state.hardware)
	if err != nil {
		m.errMsg = err.Error()
		m.done = true
		return nil
	}
	m.dep = dep
	m.steps = aistackctl.BuildInstallSteps(zap.NewNop())
	m.rows = make([]progressRow, len(m.steps))
	for i, s := range m.steps {
		m.rows[i] = progressRow{label: s.Name, status: stepPending}
	}
	m.rows[0].status = stepRunning

	return tea.Batch(m.spinner.Tick, m.runStep(0))
}

func (m *progressModel) runStep(index int) tea.Cmd {
	return func() tea.Msg {
		out, err := captureOutput(func() error {
			return m.steps[index].Run(m.dep)
		})
		return stepDoneMsg{index: index, output: out, err: err}
	}
}

// captureOutput keeps subprocess stdout/stderr off the alt screen. The pipe
// is drained while fn runs: package installs and image pulls emit far more
// than the kernel pipe buffer holds, and a full pipe would block the
// subprocess forever.
func captureOutput(fn func() error) (string, error) {
	oldOut, oldErr := os.Stdout, os.Stderr
	r, w, pipeErr := os.Pipe()
	if pipeErr != nil {
		return "", fn()
	}
	os.Stdout, os.Stderr = w, w
	defer func() {
		os.Stdout, os.Stderr = oldOut, oldErr
	}()

	var buf bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		io.Copy(&buf, r)
		r.Close()
	}()

	err := fn()
	w.Close()
	<-done
	return buf.String(), err
}

// outputTail returns the last n non-blank lines of captured output.
func outputTail(s string, n int) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}

func (m *progressModel) advance(from int) (screenModel, tea.Cmd) {
	next := from + 1
	if next >= len(m.steps) {
		m.done = true
		return m, func() tea.Msg { return navigateMsg{to: screenComplete} }
	}
	m.current = next
	m.rows[next].status = stepRunning
	return m, m.runStep(next)
}

func (m *progressModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case stepDoneMsg:
		if msg.err != nil {
			m.rows[msg.index].status = stepFailed
			m.rows[msg.index].err = msg.err
			m.rows[msg.index].tail = outputTail(msg.output, 6)
			if errors.Is(msg.err, aistackctl.ErrTLSUnavailable) {
				m.tlsPrompt = true
				m.current = msg.index
				return m, nil
			}
			m.errMsg = msg.err.Error()
			m.done = true
			return m, nil
		}
		m.rows[msg.index].status = stepDone
		return m.advance(msg.index)

	case tea.KeyMsg:
		if m.tlsPrompt {
			if isLeft(msg) && m.cursor > 0 {
				m.cursor--
			}
			if isRight(msg) && m.cursor < 1 {
				m.cursor++
			}
			if isEnter(msg) {
				if m.cursor == 0 {
					m.dep.SkipTLS = true
					m.rows[m.current].status = stepSkipped
					m.tlsPrompt = false
					return m.advance(m.current)
				}
				return m, tea.Quit
			}
			return m, nil
		}
		if m.done && m.errMsg != "" {
			if isEnter(msg) || isEsc(msg) {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Deploying"))
	b.WriteString("\n\n")

	if m.rows == nil {
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render("  Error: " + m.errMsg))
			b.WriteString(helpStyle.Render("\n  press enter or esc to exit"))
		}
		return b.String()
	}

	for _, row := range m.rows {
		var icon string
		switch row.status {
		case stepPending:
			icon = mutedStyle.Render("  ")
		case stepRunning:
			icon = m.spinner.View()
		case stepDone:
			icon = successStyle.Render("OK")
		case stepSkipped:
			icon = warningStyle.Render("--")
		case stepFailed:
			icon = errorStyle.Render("XX")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", icon, normalStyle.Render(row.label)))
		if row.status == stepFailed {
			for _, line := range row.tail {
				b.WriteString(fmt.Sprintf("       %s\n", mutedStyle.Render(line)))
			}
		}
	}

	if m.tlsPrompt {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("  Certificate issuance failed. Continue without TLS?"))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("  The stack will be reachable over plain HTTP until certbot succeeds."))
		b.WriteString("\n\n")

		buttons := []string{"Continue without TLS", "Abort"}
		for i, btn := range buttons {
			if i == m.cursor {
				b.WriteString("  " + borderStyle.Render(selectedStyle.Render(btn)))
			} else {
				b.WriteString("  " + normalStyle.Render("["+btn+"]"))
			}
			b.WriteString("  ")
		}
		b.WriteString(helpStyle.Render("\n\n  left/right: navigate  enter: select"))
		return b.String()
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  Error: " + m.errMsg))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("\n  press enter or esc to exit"))
	}

	return b.String()
}
