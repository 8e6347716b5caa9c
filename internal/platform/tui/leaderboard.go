package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// Leaderboard layout constants
const (
	tableMinWidth   = 50 // Below this the player column shrinks
	tableChrome     = 8  // Rows used by title, stats, help and borders
	defaultRowLimit = storage.DefaultTopLimit
)

// Leaderboard shows the best attempts recorded in the ledger.
// It is embedded in Model and shown instead of the game on demand.
type Leaderboard struct {
	store    *storage.Store
	limit    int
	session  string
	attempts []storage.Attempt
	stats    storage.Stats
	err      error
	table    table.Model
	renderer *lipgloss.Renderer
	width    int
	height   int
}

// NewLeaderboard creates a leaderboard over store. Rows belonging to
// session are marked.
func NewLeaderboard(store *storage.Store, r *lipgloss.Renderer, limit int, session string, width, height int) Leaderboard {
	if limit <= 0 {
		limit = defaultRowLimit
	}
	l := Leaderboard{
		store:    store,
		limit:    limit,
		session:  session,
		renderer: r,
		width:    width,
		height:   height,
	}
	l.table = l.createTable()
	return l
}

// createTable creates a new table with columns sized to the current width.
func (l *Leaderboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Flaps", Width: 7},
		{Title: "Time", Width: 8},
	}

	tableWidth := l.width - 4 // Margins
	if tableWidth < tableMinWidth {
		columns[1].Width = max(tableWidth-34, 6)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(l.height-tableChrome, 3)),
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

// Refresh reloads rows and stats from the ledger.
func (l *Leaderboard) Refresh() error {
	if l.store == nil {
		l.attempts = nil
		l.updateTableRows()
		return nil
	}

	attempts, err := l.store.TopAttempts(l.limit)
	if err != nil {
		l.err = err
		return err
	}
	stats, err := l.store.Stats()
	if err != nil {
		l.err = err
		return err
	}

	l.err = nil
	l.attempts = attempts
	l.stats = stats
	l.updateTableRows()
	return nil
}

// updateTableRows updates the table with the loaded attempts.
func (l *Leaderboard) updateTableRows() {
	rows := make([]table.Row, len(l.attempts))
	for i, a := range l.attempts {
		player := a.Player
		if player == "" {
			player = "anonymous"
		}
		if a.SessionID == l.session {
			player += " *"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", a.Score),
			fmt.Sprintf("%d", a.Flaps),
			a.CreatedAt.Format("15:04:05"),
		}
	}
	l.table.SetRows(rows)
	l.table.GotoTop()
}

// Rows returns the rows currently shown.
func (l Leaderboard) Rows() []table.Row {
	return l.table.Rows()
}

// SetSize adapts the table to a new terminal size.
func (l *Leaderboard) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.table = l.createTable()
	l.updateTableRows()
}

// Update passes scrolling keys to the table.
func (l Leaderboard) Update(msg tea.Msg) (Leaderboard, tea.Cmd) {
	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return l, cmd
}

// View renders the leaderboard, stats line and table.
func (l Leaderboard) View() string {
	var b strings.Builder

	titleStyle := l.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("LEADERBOARD", l.width)))
	b.WriteString("\n")

	mutedStyle := l.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(mutedStyle.Render(centerText(l.statsLine(), l.width)))
	b.WriteString("\n\n")

	tableStyle := l.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case l.err != nil:
		content = l.renderer.NewStyle().Foreground(lipgloss.Color("167")).Render("Leaderboard unavailable: " + l.err.Error())
	case len(l.attempts) == 0:
		content = mutedStyle.Italic(true).Padding(2, 4).Render("No attempts recorded yet.\nPlay a round to get on the board!")
	default:
		content = l.table.View()
	}
	b.WriteString(centerText(tableStyle.Render(content), l.width))

	return b.String()
}

func (l Leaderboard) statsLine() string {
	if l.stats.Attempts == 0 {
		return "No games played yet"
	}
	return fmt.Sprintf("%d attempts by %d players, best %d, average %.1f",
		l.stats.Attempts, l.stats.Sessions, l.stats.BestScore, l.stats.AvgScore)
}

// centerText pads every line of text so it sits in the middle of width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	blockWidth := lipgloss.Width(text)
	pad := (width - blockWidth) / 2
	if pad <= 0 {
		return text
	}
	prefix := strings.Repeat(" ", pad)
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
