package ui

import (
	"fmt"
	"rowstore/pkg/database"
	"rowstore/pkg/repl"
	"rowstore/pkg/ui/base"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxColumnWidth = 40

// Model is the full-screen front end. It feeds each entered line through
// the same Dispatcher as the line REPL and keeps a scrollable transcript.
type Model struct {
	database    *database.Database
	dispatcher  *repl.Dispatcher
	input       textinput.Model
	transcript  viewport.Model
	resultTable table.Model
	help        help.Model
	highlighter *CommandHighlighter
	keys        keyMap

	width      int
	height     int
	showHelp   bool
	lines      []string
	lastResult *database.QueryResult
	history    []string
	historyPos int
	fatal      error
}

func NewModel(db *database.Database) Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(repl.Prompt)
	ti.Placeholder = "insert 1 user1 person1@example.com"
	ti.CharLimit = 1024
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(textMuted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(textPrimary)
	ti.Focus()

	vp := viewport.New(80, 12)
	vp.Style = transcriptStyle

	t := table.New(
		table.WithColumns(columnsFor(database.Columns, nil)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	s.Selected = s.Selected.
		Foreground(bgDark).
		Background(secondaryColor).
		Bold(false)
	t.SetStyles(s)

	return Model{
		database:    db,
		dispatcher:  repl.NewDispatcher(db),
		input:       ti,
		transcript:  vp,
		resultTable: t,
		help:        help.New(),
		highlighter: NewCommandHighlighter(),
		keys:        keys,
	}
}

// Fatal returns the internal error that stopped the program, if any.
func (m Model) Fatal() error {
	return m.fatal
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Execute):
			line := m.input.Value()
			m.input.SetValue("")
			if m.runLine(line) {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.lines = nil
			m.lastResult = nil
			m.refreshTranscript()
			return m, nil

		case key.Matches(msg, m.keys.ShowStats):
			m.appendStats()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.HistoryUp):
			m.recall(-1)
			return m, nil

		case key.Matches(msg, m.keys.HistoryDn):
			m.recall(1)
			return m, nil

		case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
			var cmd tea.Cmd
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// runLine dispatches line and records its output. It reports whether the
// program should quit.
func (m *Model) runLine(line string) bool {
	m.lines = append(m.lines, promptStyle.Render(repl.Prompt)+m.highlighter.Highlight(line))
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.historyPos = len(m.history)

	resp, err := m.dispatcher.Dispatch(line)
	if err != nil {
		m.fatal = err
		return true
	}
	if resp.Exit {
		return true
	}

	style := okLineStyle
	if resp.Err != nil || (resp.Result != nil && !resp.Result.Success) {
		style = errorLineStyle
	}
	for _, l := range resp.Lines {
		m.lines = append(m.lines, style.Render(l))
	}

	if resp.Result != nil && resp.Result.Columns != nil {
		m.lastResult = resp.Result
		m.resultTable.SetColumns(columnsFor(resp.Result.Columns, resp.Result.Rows))
		rows := make([]table.Row, len(resp.Result.Rows))
		for i, r := range resp.Result.Rows {
			cells := make(table.Row, len(r))
			for j, cell := range r {
				cells[j] = base.TruncateString(cell, maxColumnWidth)
			}
			rows[i] = cells
		}
		m.resultTable.SetRows(rows)
	}

	m.refreshTranscript()
	return false
}

func (m *Model) appendStats() {
	info := m.database.GetStatistics()
	m.lines = append(m.lines,
		okLineStyle.Render(fmt.Sprintf("Database: %s", info.Name)),
		okLineStyle.Render(fmt.Sprintf("Rows: %d / %d", info.RowCount, info.MaxRows)),
		okLineStyle.Render(fmt.Sprintf("Statements executed: %d", info.QueriesExecuted)),
		okLineStyle.Render(fmt.Sprintf("Errors: %d", info.ErrorCount)),
	)
	m.refreshTranscript()
}

func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.historyPos = base.Clamp(m.historyPos+delta, 0, len(m.history))
	if m.historyPos == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.historyPos])
	m.input.CursorEnd()
}

func (m *Model) refreshTranscript() {
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
}

func (m Model) View() string {
	sections := []string{m.renderHeader(), m.transcript.View()}

	if m.lastResult != nil && len(m.lastResult.Rows) > 0 {
		sections = append(sections, m.resultTable.View())
	}

	sections = append(sections, inputStyle.Render(m.input.View()), m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, helpStyle.Render(m.help.FullHelpView(m.keys.FullHelp())))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	info := m.database.GetStatistics()

	title := titleStyle.Render("rowstore")
	badge := dbBadgeStyle.Render(info.Name)
	rows := lipgloss.NewStyle().
		Foreground(textSecondary).
		Render(fmt.Sprintf("Rows: %d/%d | Statements: %d", info.RowCount, info.MaxRows, info.QueriesExecuted))

	return lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", badge, "  ", rows)
}

func (m Model) renderStatusBar() string {
	content := lipgloss.NewStyle().Foreground(accentColor).Render("● ready") +
		lipgloss.NewStyle().Foreground(textMuted).Render(" | "+m.help.ShortHelpView(m.keys.ShortHelp()))

	return statusBarStyle.Width(max(m.width-4, 0)).Render(content)
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	const chrome = 14
	available := max(m.height-chrome, 4)

	m.input.Width = max(m.width-10, 10)
	m.transcript.Width = max(m.width-4, 20)
	m.transcript.Height = available * 2 / 3
	m.resultTable.SetHeight(max(available-m.transcript.Height, 3))
	m.refreshTranscript()
}

func columnsFor(names []string, rows [][]string) []table.Column {
	columns := make([]table.Column, len(names))
	for i, name := range names {
		width := len(name) + 2
		for _, r := range rows {
			if i < len(r) {
				width = max(width, len(r[i])+2)
			}
		}
		columns[i] = table.Column{Title: name, Width: base.Clamp(width, 6, maxColumnWidth)}
	}
	return columns
}
