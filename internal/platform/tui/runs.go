package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/notch-dino/internal/games/dino"
	"github.com/vovakirdan/notch-dino/internal/storage"
)

const maxRuns = 50

// runsTable shows the best runs recorded in the ledger this process.
type runsTable struct {
	store   *storage.Store
	session string
	table   table.Model
	runs    []storage.Run
	mine    []storage.Run // This session's latest runs, most recent first
	logger  *log.Logger
}

func newRunsTable(store *storage.Store, session string, height int, logger *log.Logger) *runsTable {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 7},
		{Title: "When", Width: 12},
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

	return &runsTable{store: store, session: session, table: t, logger: logger}
}

// reload reads the ledger again. Rows recorded by this session show as "you".
func (r *runsTable) reload() {
	r.runs, r.mine = nil, nil
	if r.store != nil {
		runs, err := r.store.TopRuns(maxRuns)
		if err != nil {
			r.logger.Warn("Cannot load runs", "error", err)
		} else {
			r.runs = runs
		}

		mine, err := r.store.SessionRuns(r.session, 1)
		if err != nil {
			r.logger.Warn("Cannot load session runs", "error", err)
		} else {
			r.mine = mine
		}
	}

	rows := make([]table.Row, len(r.runs))
	for i, run := range r.runs {
		player := run.Session
		if run.Session == r.session {
			player = "you"
		}
		if len(player) > 14 {
			player = player[:13] + "."
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			player,
			fmt.Sprintf("%d", run.Score),
			run.CreatedAt.Format("15:04:05"),
		}
	}
	r.table.SetRows(rows)
	r.table.GotoTop()
}

// summary describes this session's latest run.
func (r *runsTable) summary() string {
	if len(r.mine) == 0 {
		return "you: no runs yet"
	}
	return "you: last run " + dino.FormatScore(r.mine[0].Score)
}

// update passes scrolling keys to the table.
func (r *runsTable) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.table, cmd = r.table.Update(msg)
	return cmd
}

func (r *runsTable) view() string {
	if len(r.runs) == 0 {
		return dimStyle.Italic(true).Padding(1, 2).Render("No runs finished yet.")
	}
	return r.table.View() + "\n" + dimStyle.Render(r.summary())
}
