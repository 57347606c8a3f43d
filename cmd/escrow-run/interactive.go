package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xrpl-wasm/xrpl-wasm-go/hostsim"
	"github.com/xrpl-wasm/xrpl-wasm-go/runner"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateLoading modelState = iota
	stateReady
	stateShowResult
)

// interactiveModel runs one contract against one fixture, letting the
// user override ledger header values between runs.
type interactiveModel struct {
	err         error
	wasmFile    string
	fixtureFile string
	wasmBytes   []byte
	fixRaw      []byte
	fix         *hostsim.Fixture
	inputs      []textinput.Model
	focusIdx    int
	state       modelState

	verdict int32
	runErr  error
	traces  []hostsim.TraceEntry
	updated []byte
}

func newInteractiveModel(wasmFile, fixtureFile string) *interactiveModel {
	return &interactiveModel{
		wasmFile:    wasmFile,
		fixtureFile: fixtureFile,
		state:       stateLoading,
	}
}

type loadedMsg struct {
	err  error
	wasm []byte
	raw  []byte
	fix  *hostsim.Fixture
}

type runDoneMsg struct {
	err     error
	verdict int32
	traces  []hostsim.TraceEntry
	updated []byte
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	wasm, err := os.ReadFile(m.wasmFile)
	if err != nil {
		return loadedMsg{err: err}
	}
	raw, err := os.ReadFile(m.fixtureFile)
	if err != nil {
		return loadedMsg{err: err}
	}
	fix, err := hostsim.Parse(raw)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{wasm: wasm, raw: raw, fix: fix}
}

func (m *interactiveModel) prepareInputs() {
	seq := textinput.New()
	seq.Prompt = "ledger sequence: "
	seq.SetValue(strconv.FormatUint(uint64(m.fix.Ledger.Sequence), 10))
	seq.Width = 20
	seq.Focus()

	closeTime := textinput.New()
	closeTime.Prompt = "parent close time: "
	closeTime.SetValue(strconv.FormatUint(uint64(m.fix.Ledger.ParentCloseTime), 10))
	closeTime.Width = 20

	m.inputs = []textinput.Model{seq, closeTime}
	m.focusIdx = 0
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateReady {
				return m, tea.Quit
			}

		case "tab":
			if m.state == stateReady && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "enter":
			switch m.state {
			case stateReady:
				return m, m.runContract
			case stateShowResult:
				m.state = stateReady
				m.runErr = nil
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateReady
				m.runErr = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.wasmBytes = msg.wasm
		m.fixRaw = msg.raw
		m.fix = msg.fix
		m.prepareInputs()
		m.state = stateReady

	case runDoneMsg:
		m.runErr = msg.err
		m.verdict = msg.verdict
		m.traces = msg.traces
		m.updated = msg.updated
		m.state = stateShowResult
	}

	if m.state == stateReady {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// runContract executes the contract against a fresh fixture so data
// writes from a previous run do not leak into the next one.
func (m *interactiveModel) runContract() tea.Msg {
	ctx := context.Background()

	fix, err := hostsim.Parse(m.fixRaw)
	if err != nil {
		return runDoneMsg{err: err}
	}
	if v, err := strconv.ParseUint(m.inputs[0].Value(), 10, 32); err == nil {
		fix.Ledger.Sequence = uint32(v)
	}
	if v, err := strconv.ParseUint(m.inputs[1].Value(), 10, 32); err == nil {
		fix.Ledger.ParentCloseTime = uint32(v)
	}

	env := hostsim.New(fix)
	r, err := runner.New(ctx, env)
	if err != nil {
		return runDoneMsg{err: err}
	}
	defer r.Close(ctx)

	verdict, err := r.Execute(ctx, m.wasmBytes)
	if err != nil {
		return runDoneMsg{err: err}
	}
	return runDoneMsg{
		verdict: verdict,
		traces:  env.Traces(),
		updated: env.UpdatedData(),
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Escrow Runner"))
	b.WriteString(" ")
	b.WriteString(m.wasmFile)
	b.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		b.WriteString("Loading contract and fixture...")

	case stateReady:
		b.WriteString(m.fixtureSummary())
		b.WriteString("\n")
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • ctrl+c quit"))

	case stateShowResult:
		if m.runErr != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.runErr)))
		} else {
			b.WriteString(m.resultSummary())
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run again • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) fixtureSummary() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("fixture"))
	b.WriteString(" " + m.fixtureFile + "\n")
	if acct, ok := m.fix.Tx["Account"].(string); ok {
		b.WriteString("  finisher    " + valueStyle.Render(acct) + "\n")
	}
	if dest, ok := m.fix.Escrow["Destination"].(string); ok {
		b.WriteString("  destination " + valueStyle.Render(dest) + "\n")
	}
	if len(m.fix.Entries) > 0 {
		b.WriteString(fmt.Sprintf("  entries     %d\n", len(m.fix.Entries)))
	}
	return b.String()
}

func (m *interactiveModel) resultSummary() string {
	var b strings.Builder
	if m.verdict == 1 {
		b.WriteString(approvedStyle.Render("APPROVED") + " (1)")
	} else {
		b.WriteString(rejectedStyle.Render("REJECTED"))
		b.WriteString(fmt.Sprintf(" (%d)", m.verdict))
	}
	b.WriteString("\n")
	if len(m.updated) > 0 {
		b.WriteString("\ndata: " + valueStyle.Render(hex.EncodeToString(m.updated)) + "\n")
	}
	if len(m.traces) > 0 {
		b.WriteString("\n" + helpStyle.Render("--- trace ---") + "\n")
		for _, t := range m.traces {
			b.WriteString(formatTrace(t) + "\n")
		}
	}
	return b.String()
}

func runInteractive(wasmFile, fixtureFile string) error {
	p := tea.NewProgram(newInteractiveModel(wasmFile, fixtureFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
