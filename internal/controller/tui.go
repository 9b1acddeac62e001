package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "resub.dev/pkg/resub/internal/model"
)

// TUI is the interactive rename form built on Bubble Tea.
type TUI struct {
	session Session
	input   io.Reader
	output  io.Writer
}

// NewTUI creates a new TUI that drives session.
func NewTUI(session Session, input io.Reader, output io.Writer) *TUI {
	return &TUI{session: session, input: input, output: output}
}

// Run shows the form until the user quits. defaults pre-fills the fields.
func (t *TUI) Run(ctx context.Context, defaults m.RenameRequest) error {
	program := tea.NewProgram(
		newFormModel(t.session, defaults),
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run interactive form: %w", err)
	}

	return nil
}

type focusField int

const (
	focusFolder focusField = iota
	focusSearch
	focusReplace
	focusSubfolders
	focusCount
)

type formState int

const (
	stateEditing formState = iota
	stateConfirming
	stateError
)

// formHeight is the number of lines used above and below the log.
const formHeight = 12

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	logStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false).BorderForeground(lipgloss.Color("240"))
	confirmStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("11")).Padding(0, 1)
	errorBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1)
)

type formKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Toggle  key.Binding
	Preview key.Binding
	Rename  key.Binding
	Scroll  key.Binding
	Quit    key.Binding
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Preview, k.Rename, k.Quit}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Toggle},
		{k.Preview, k.Rename, k.Scroll, k.Quit},
	}
}

func defaultFormKeys() formKeyMap {
	return formKeyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle subfolders")),
		Preview: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "preview")),
		Rename:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "rename")),
		Scroll:  key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll output")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

type previewDoneMsg struct {
	req  m.RenameRequest
	plan []m.RenamePlanEntry
	err  error
}

type commitDoneMsg struct {
	req       m.RenameRequest
	plan      []m.RenamePlanEntry
	remaining []m.RenamePlanEntry
	err       error
}

// formModel is the Bubble Tea model behind the interactive form.
type formModel struct {
	session    Session
	inputs     []textinput.Model
	subfolders bool
	focus      focusField
	state      formState
	busy       bool
	errMsg     string
	pending    m.RenameRequest
	output     []string
	viewport   viewport.Model
	help       help.Model
	keys       formKeyMap
	width      int
	height     int
	quitting   bool
}

func newFormModel(session Session, defaults m.RenameRequest) formModel {
	labels := []string{"Folder:       ", "Search for:   ", "Replace with: "}
	values := []string{string(defaults.Folder), defaults.SearchText, defaults.ReplaceText}
	inputs := make([]textinput.Model, len(labels))

	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = labels[i]
		ti.SetValue(values[i])
		ti.Width = 60
		inputs[i] = ti
	}

	inputs[focusFolder].Placeholder = "path/to/folder"
	inputs[focusFolder].Focus()

	return formModel{
		session:    session,
		inputs:     inputs,
		subfolders: defaults.IncludeSubfolders,
		focus:      focusFolder,
		viewport:   viewport.New(80, 10),
		help:       help.New(),
		keys:       defaultFormKeys(),
	}
}

func (fm formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (fm formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fm.width = msg.Width
		fm.height = msg.Height
		fm.viewport.Width = msg.Width
		fm.viewport.Height = max(msg.Height-formHeight, 3)
		fm.help.Width = msg.Width

		return fm, nil

	case previewDoneMsg:
		return fm.handlePreviewDone(msg), nil

	case commitDoneMsg:
		return fm.handleCommitDone(msg), nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		fm.viewport, cmd = fm.viewport.Update(msg)

		return fm, cmd

	case tea.KeyMsg:
		return fm.handleKeyPress(msg)
	}

	return fm.updateFocusedInput(msg)
}

func (fm formModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		fm.quitting = true
		return fm, tea.Quit
	}

	switch fm.state {
	case stateError:
		// Any key dismisses the error box.
		fm.state = stateEditing
		fm.errMsg = ""

		return fm, nil

	case stateConfirming:
		return fm.handleConfirmKey(msg)

	case stateEditing:
	}

	switch {
	case key.Matches(msg, fm.keys.Quit):
		fm.quitting = true
		return fm, tea.Quit

	case key.Matches(msg, fm.keys.Scroll):
		var cmd tea.Cmd
		fm.viewport, cmd = fm.viewport.Update(msg)

		return fm, cmd

	case key.Matches(msg, fm.keys.Next):
		return fm.setFocus((fm.focus + 1) % focusCount), nil

	case key.Matches(msg, fm.keys.Prev):
		return fm.setFocus((fm.focus + focusCount - 1) % focusCount), nil

	case fm.focus == focusSubfolders && key.Matches(msg, fm.keys.Toggle):
		fm.subfolders = !fm.subfolders
		return fm, nil

	case key.Matches(msg, fm.keys.Preview):
		return fm.startPreview()

	case key.Matches(msg, fm.keys.Rename):
		return fm.startRename()
	}

	return fm.updateFocusedInput(msg)
}

func (fm formModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		fm.state = stateEditing
		fm.busy = true

		return fm, commitCmd(fm.session, fm.pending)

	case "n", "esc":
		fm.state = stateEditing
		fm.setOutput([]string{"Rename cancelled."})

		return fm, nil
	}

	return fm, nil
}

func (fm formModel) setFocus(focus focusField) formModel {
	fm.focus = focus

	for i := range fm.inputs {
		if focusField(i) == focus {
			fm.inputs[i].Focus()
			continue
		}

		fm.inputs[i].Blur()
	}

	return fm
}

func (fm formModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if fm.focus >= focusField(len(fm.inputs)) {
		return fm, nil
	}

	var cmd tea.Cmd
	fm.inputs[fm.focus], cmd = fm.inputs[fm.focus].Update(msg)

	return fm, cmd
}

// request builds an immutable request from the current field values.
func (fm formModel) request() m.RenameRequest {
	return m.RenameRequest{
		Folder:            m.Path(strings.TrimSpace(fm.inputs[focusFolder].Value())),
		SearchText:        fm.inputs[focusSearch].Value(),
		ReplaceText:       fm.inputs[focusReplace].Value(),
		IncludeSubfolders: fm.subfolders,
	}
}

func (fm formModel) startPreview() (tea.Model, tea.Cmd) {
	if fm.busy {
		return fm, nil
	}

	req := fm.request()
	if err := req.Validate(); err != nil {
		return fm.showError(err), nil
	}

	fm.busy = true

	return fm, previewCmd(fm.session, req)
}

func (fm formModel) startRename() (tea.Model, tea.Cmd) {
	if fm.busy {
		return fm, nil
	}

	req := fm.request()
	if err := req.Validate(); err != nil {
		return fm.showError(err), nil
	}

	fm.pending = req
	fm.state = stateConfirming

	return fm, nil
}

func (fm formModel) showError(err error) formModel {
	fm.state = stateError
	fm.errMsg = err.Error()

	return fm
}

func (fm formModel) handlePreviewDone(msg previewDoneMsg) formModel {
	fm.busy = false

	if msg.err != nil {
		return fm.showError(msg.err)
	}

	lines := make([]string, 0, len(msg.plan)+2)
	for _, entry := range msg.plan {
		lines = append(lines, planLine(msg.req.Folder, entry))
	}

	lines = append(lines, "", planCountLine(len(msg.plan)))
	fm.setOutput(lines)

	return fm
}

func (fm formModel) handleCommitDone(msg commitDoneMsg) formModel {
	fm.busy = false

	if msg.err != nil {
		return fm.showError(msg.err)
	}

	var lines []string

	for _, entry := range msg.plan {
		if line, ok := commitLine(msg.req.Folder, entry); ok {
			lines = append(lines, line)
		}
	}

	summary := m.Summarize(msg.plan)
	lines = append(lines,
		fmt.Sprintf("Renamed: %d  Skipped: %d  Failed: %d", summary.Renamed, summary.Skipped, summary.Failed),
		renamedCountLine(summary.Renamed),
		"",
	)

	for _, entry := range msg.remaining {
		lines = append(lines, planLine(msg.req.Folder, entry))
	}

	lines = append(lines, remainingLine(len(msg.remaining)))
	fm.setOutput(lines)

	return fm
}

// setOutput replaces the log content and scrolls back to the top.
func (fm *formModel) setOutput(lines []string) {
	fm.output = lines
	fm.viewport.SetContent(strings.Join(lines, "\n"))
	fm.viewport.GotoTop()
}

func previewCmd(session Session, req m.RenameRequest) tea.Cmd {
	return func() tea.Msg {
		plan, err := session.PlanRequest(req)
		return previewDoneMsg{req: req, plan: plan, err: err}
	}
}

func commitCmd(session Session, req m.RenameRequest) tea.Cmd {
	return func() tea.Msg {
		plan, err := session.PlanRequest(req)
		if err != nil {
			return commitDoneMsg{req: req, err: err}
		}

		committed := session.CommitPlan(plan)

		remaining, err := session.PlanRequest(req)
		if err != nil {
			return commitDoneMsg{req: req, plan: committed, err: err}
		}

		return commitDoneMsg{req: req, plan: committed, remaining: remaining}
	}
}

func (fm formModel) View() string {
	if fm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("resub - rename files by search and replace"))
	b.WriteString("\n\n")

	for i := range fm.inputs {
		b.WriteString(fm.inputs[i].View())
		b.WriteString("\n")
	}

	check := "[ ]"
	if fm.subfolders {
		check = "[x]"
	}

	checkbox := check + " Include subfolders"
	if fm.focus == focusSubfolders {
		b.WriteString(focusedStyle.Render(checkbox))
	} else {
		b.WriteString(blurredStyle.Render(checkbox))
	}

	b.WriteString("\n\n")

	switch {
	case fm.state == stateError:
		b.WriteString(errorBoxStyle.Render("Error: " + fm.errMsg + "\n\nPress any key to continue."))
	case fm.state == stateConfirming:
		b.WriteString(confirmStyle.Render("Really rename files? [y/n]"))
	case fm.busy:
		b.WriteString(blurredStyle.Render("Working..."))
	default:
		b.WriteString(logStyle.Render(fm.viewport.View()))
	}

	b.WriteString("\n")
	b.WriteString(fm.help.View(fm.keys))
	b.WriteString("\n")

	return b.String()
}
