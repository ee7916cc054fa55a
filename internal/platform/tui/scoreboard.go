package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Run board layout constants
const (
	boardMaxRuns    = 50 // Max runs to load
	boardChrome     = 9  // Rows used by title, stats, borders and help
	boardMinRows    = 3
	dateColumnWidth = 14
)

// BoardKeyMap defines the key bindings for the run board.
type BoardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Back}}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
	}
}

// BoardModel lists the runs finished during this process.
// It is embedded in Model and shown on top of the game.
type BoardModel struct {
	gameID   string
	title    string
	tickRate int
	ledger   *storage.Ledger
	runs     []storage.Run
	stats    *storage.Stats
	table    table.Model
	help     help.Model
	keys     BoardKeyMap
	width    int
	height   int
	closed   bool
}

// NewBoardModel creates a board for one game and loads its runs.
// tickRate converts recorded ticks to play time.
func NewBoardModel(ledger *storage.Ledger, gameID, title string, tickRate, width, height int) BoardModel {
	m := BoardModel{
		gameID:   gameID,
		title:    title,
		tickRate: tickRate,
		ledger:   ledger,
		help:     help.New(),
		keys:     DefaultBoardKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a table sized for the current terminal.
func (m *BoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Shots", Width: 7},
		{Title: "Date", Width: dateColumnWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChrome, boardMinRows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches runs and stats from the ledger.
func (m *BoardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.ledger != nil {
		if runs, err := m.ledger.TopRuns(m.gameID, boardMaxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.ledger.GameStats(m.gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows refreshes the table from the loaded runs.
func (m *BoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			formatTicks(r.Ticks, m.tickRate),
			fmt.Sprintf("%d", r.ShotsFired),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatTicks renders a tick count as m:ss play time.
func formatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := ticks / tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Update handles messages for the board.
func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			m.closed = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Closed reports whether the user left the board.
func (m BoardModel) Closed() bool {
	return m.closed
}

// Runs returns the runs currently listed.
func (m BoardModel) Runs() []storage.Run {
	return m.runs
}

// View renders the board.
func (m BoardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("RUNS - %s", m.title), m.width)))
	b.WriteString("\n\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.stats != nil && m.stats.Runs > 0 {
		line := fmt.Sprintf("%d runs   best %d   avg %.1f", m.stats.Runs, m.stats.BestScore, m.stats.AvgScore)
		b.WriteString(dim.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m BoardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No runs finished yet.")
	}
	return m.table.View()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
