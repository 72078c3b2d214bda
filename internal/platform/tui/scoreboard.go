package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores        = 100 // Max scores to load
	scoreboardChrome = 8   // Rows used by title, stats, borders and help
)

// Scoreboard is the session high-score panel shown over the game.
// It is a sub-model: the game Model forwards messages while it is open.
type Scoreboard struct {
	store  *storage.Store
	scores []storage.ScoreEntry
	stats  *storage.SessionStats
	err    error
	table  table.Model
	width  int
	height int
}

// NewScoreboard creates a scoreboard backed by store, which may be nil.
func NewScoreboard(store *storage.Store, width, height int) Scoreboard {
	sb := Scoreboard{
		store:  store,
		width:  width,
		height: height,
	}
	sb.table = sb.createTable()
	return sb
}

// createTable creates a new table with appropriate columns.
func (sb *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Lines", Width: 7},
		{Title: "Level", Width: 7},
		{Title: "Seed", Width: 20},
	}

	height := sb.height - scoreboardChrome
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// Refresh reloads scores and statistics from the store.
func (sb *Scoreboard) Refresh() error {
	sb.scores, sb.stats, sb.err = nil, nil, nil
	if sb.store == nil {
		sb.updateTableRows()
		return nil
	}

	scores, err := sb.store.TopScores(maxScores)
	if err != nil {
		sb.err = err
		sb.updateTableRows()
		return err
	}
	stats, err := sb.store.Stats()
	if err != nil {
		sb.err = err
		sb.updateTableRows()
		return err
	}

	sb.scores = scores
	sb.stats = stats
	sb.updateTableRows()
	return nil
}

// updateTableRows updates the table with current scores.
func (sb *Scoreboard) updateTableRows() {
	rows := make([]table.Row, len(sb.scores))
	for i, s := range sb.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Lines),
			fmt.Sprintf("%d", s.Level),
			fmt.Sprintf("%d", s.Seed),
		}
	}
	sb.table.SetRows(rows)
	sb.table.GotoTop()
}

// Resize adapts the table to a new window size.
func (sb *Scoreboard) Resize(width, height int) {
	sb.width = width
	sb.height = height
	sb.table = sb.createTable()
	sb.updateTableRows()
}

// Update passes scrolling keys to the table.
func (sb Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	sb.table, cmd = sb.table.Update(msg)
	return sb, cmd
}

// View renders the scoreboard.
func (sb Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("SESSION HIGH SCORES"), sb.width))
	b.WriteString("\n\n")

	if sb.stats != nil && sb.stats.Games > 0 {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		line := fmt.Sprintf("games %d   best %d   avg %.0f   lines %d",
			sb.stats.Games, sb.stats.HighScore, sb.stats.AvgScore, sb.stats.TotalLines)
		b.WriteString(centerText(statsStyle.Render(line), sb.width))
		b.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	for _, line := range strings.Split(tableStyle.Render(sb.renderTableContent()), "\n") {
		b.WriteString(centerText(line, sb.width))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (sb Scoreboard) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case sb.err != nil:
		return emptyStyle.Render("Scoreboard unavailable.")
	case len(sb.scores) == 0:
		return emptyStyle.Render("No games finished yet.\nTop out to set a score!")
	}
	return sb.table.View()
}
