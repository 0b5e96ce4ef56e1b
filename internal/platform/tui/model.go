package tui

import (
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/notch-dino/internal/config"
	"github.com/vovakirdan/notch-dino/internal/core"
	"github.com/vovakirdan/notch-dino/internal/frame"
	"github.com/vovakirdan/notch-dino/internal/games/dino"
	"github.com/vovakirdan/notch-dino/internal/storage"
	"github.com/vovakirdan/notch-dino/internal/widget"
)

// runsHeight is the number of table rows shown under the canvas.
const runsHeight = 6

// Options configures a widget host.
type Options struct {
	Game    config.Config
	Runtime core.RuntimeConfig
	Session string          // Name runs are recorded under
	Store   *storage.Store  // Run ledger; nil disables the runs table
	Scores  dino.HighScores // Overrides the ledger-backed keeper
	Logger  *log.Logger     // Defaults to discarding
}

// Model is the Bubble Tea model hosting one notch widget.
type Model struct {
	island   *widget.Island
	canvas   *core.Canvas
	queue    *frame.Queue
	hud      *hud
	runs     *runsTable
	keys     KeyMap
	help     help.Model
	runtime  core.RuntimeConfig
	logger   *log.Logger
	showRuns bool
	quitting bool
}

// NewModel builds the widget: canvas, frame queue, controller and island.
// The widget starts compact with one still frame drawn.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Scores == nil && opts.Store != nil {
		opts.Scores = storage.NewBoard(opts.Store, opts.Session, opts.Logger)
	}

	cfg := opts.Game
	canvas := core.NewCanvas(cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.CellWidth, cfg.Surface.CellHeight)
	queue := frame.NewQueue()
	h := newHUD(opts.Logger)

	game := dino.NewController(cfg, dino.Options{
		Surface:    canvas,
		Scheduler:  queue,
		Display:    h,
		HighScores: opts.Scores,
		Rand:       rand.New(rand.NewSource(opts.Runtime.Seed)),
	})

	hp := help.New()
	hp.Width = opts.Runtime.ScreenW

	return Model{
		island:  widget.NewIsland(game, cfg.Input.JumpKey, h),
		canvas:  canvas,
		queue:   queue,
		hud:     h,
		runs:    newRunsTable(opts.Store, opts.Session, runsHeight, opts.Logger),
		keys:    DefaultKeyMap(cfg.Input.JumpKey),
		help:    hp,
		runtime: opts.Runtime,
		logger:  opts.Logger,
	}
}

// Island returns the hosted widget.
func (m Model) Island() *widget.Island {
	return m.island
}

// Init starts the frame pump.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.step(func() { m.queue.Flush() })
		return m, tickCmd(m.runtime.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input. The island sees every key first;
// keys it does not consume fall through to the host bindings.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	ev := m.keys.MapKey(msg)
	var consumed bool
	m.step(func() { consumed = m.island.Handle(ev) })
	if consumed {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Runs):
		m.showRuns = !m.showRuns
		if m.showRuns {
			m.runs.reload()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case m.showRuns && (key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down)):
		return m, m.runs.update(msg)
	}
	return m, nil
}

// handleMouse hit-tests a mouse press against the island.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y, w, h := m.islandBounds()
	bounds := core.NewRect(float64(x), float64(y), float64(w), float64(h))
	inside := bounds.Contains(float64(msg.X), float64(msg.Y))

	ev, ok := MapMouse(msg, inside, m.island.View() == widget.ViewExpanded)
	if ok {
		m.step(func() { m.island.Handle(ev) })
	}
	return m, nil
}

// step runs fn and refreshes the runs table if a game ended during it.
func (m Model) step(fn func()) {
	before := m.island.Game().Phase()
	fn()
	after := m.island.Game().Phase()

	if after == dino.PhaseGameOver && before != dino.PhaseGameOver {
		s := m.island.Game().Session()
		m.logger.Info("Game over", "score", s.Score, "best", s.HighScore, "speed", s.Speed)
		if m.showRuns {
			m.runs.reload()
		}
	}
}

// islandBox renders the island for the current view mode.
func (m Model) islandBox() string {
	style := islandStyle(m.hud.view)

	switch m.hud.view {
	case widget.ViewMinimal:
		parts := []string{scoreStyle.Render(m.hud.score)}
		if m.hud.high != "" {
			parts = append(parts, hiStyle.Render(m.hud.high))
		}
		if status := phaseStatus(m.island.Game().Phase()); status != "" {
			parts = append(parts, dimStyle.Render(status))
		}
		return style.Render(strings.Join(parts, "  "))

	case widget.ViewExpanded:
		screen := m.canvas.Screen()
		if m.hud.visible {
			screen = overlayMessage(screen, m.hud.message)
		}

		sections := []string{m.header(screen.Width()), RenderScreen(screen)}
		if m.showRuns {
			sections = append(sections, m.runs.view())
		}
		return style.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	default:
		return style.Render(dimStyle.Render("DINO"))
	}
}

// header lays out the high score on the left and the score on the right.
func (m Model) header(width int) string {
	left := hiStyle.Render(m.hud.high)
	right := scoreStyle.Render(m.hud.score)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// phaseStatus is the word shown next to the score on the minimal island.
func phaseStatus(p dino.Phase) string {
	switch p {
	case dino.PhasePaused:
		return "paused"
	case dino.PhaseGameOver:
		return "game over"
	default:
		return ""
	}
}

// islandLeft returns the column the island starts at, centering it like a notch.
func (m Model) islandLeft(boxWidth int) int {
	left := (m.runtime.ScreenW - boxWidth) / 2
	if left < 0 {
		left = 0
	}
	return left
}

// islandBounds returns the island rectangle in terminal cells.
func (m Model) islandBounds() (x, y, w, h int) {
	box := m.islandBox()
	w = lipgloss.Width(box)
	h = lipgloss.Height(box)
	return m.islandLeft(w), 0, w, h
}

// View renders the island at the top center with the help line below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	box := m.islandBox()
	left := m.islandLeft(lipgloss.Width(box))
	island := lipgloss.NewStyle().MarginLeft(left).Render(box)

	helpLine := helpStyle.Render(m.help.View(m.keys))
	helpLine = lipgloss.NewStyle().MarginLeft(m.islandLeft(lipgloss.Width(helpLine))).Render(helpLine)

	return island + "\n\n" + helpLine
}

// Run starts a local Bubble Tea program hosting one widget.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
