package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/timing"
)

// restartHint is shown below the field while the game waits for input.
const restartHint = "press a direction key"

// Options configures a game model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Loader  game.TextureLoader
	Clock   timing.Clock // Defaults to a system clock
	Logger  *log.Logger  // Defaults to a discarding logger
	Player  string       // Included in log lines, e.g. the SSH user
}

// Model is the Bubble Tea model for one game of snake.
type Model struct {
	game        *game.Game
	gate        *timing.TimerGate
	canvas      *TerminalCanvas
	palette     Palette
	keys        KeyMap
	help        help.Model
	inputFrame  core.InputFrame
	logger      *log.Logger
	config      core.RuntimeConfig
	windowTitle string
	shotDir     string
	status      string
	quitting    bool
}

// NewModel creates a model and the game it drives.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = timing.FrameRate
	}

	g, err := game.New(opts.Loader, game.Options{
		Title:      opts.Config.Title,
		FoodSprite: opts.Config.Sprites.Food,
		Seed:       cfg.Seed,
	})
	if err != nil {
		return Model{}, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = timing.NewSystemClock()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Player != "" {
		logger = logger.With("player", opts.Player)
	}

	spriteColor := core.ColorDefault
	if tex := g.Food().Texture(); tex != nil {
		spriteColor = tex.Color
	}
	palette := NewPalette(opts.Config.Theme, spriteColor)

	h := help.New()
	h.ShowAll = false
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(palette.Muted())
	h.Styles.FullKey = h.Styles.FullKey.Foreground(palette.Muted())

	return Model{
		game:        g,
		gate:        timing.NewTimerGate(clock),
		canvas:      NewTerminalCanvas(),
		palette:     palette,
		keys:        NewKeyMap(opts.Config.Keys),
		help:        h,
		inputFrame:  core.NewInputFrame(),
		logger:      logger,
		config:      cfg,
		windowTitle: opts.Config.WindowTitle,
		shotDir:     opts.Config.Screenshots.Dir,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "seed", m.config.Seed, "fps", m.config.TickRate)
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.windowTitle != "" {
		cmds = append(cmds, tea.SetWindowTitle(m.windowTitle))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers direction keys until the next frame and handles the
// keys that act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.game.Score())
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick runs one frame: a logic tick when the interval has passed,
// then the buffered input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gate.IsIntervalElapsed(timing.LogicInterval) {
		m.logResult(m.game.Update())
	}

	wasRunning := m.game.Running()
	if m.game.HandleInput(m.inputFrame) && !wasRunning {
		m.logger.Debug("game resumed", "direction", m.game.Snake().Direction())
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logResult(res game.Result) {
	if res.Ate {
		m.logger.Debug("food eaten", "score", res.Score, "length", m.game.Snake().Len())
	}
	if res.GameOver {
		m.logger.Info("game over", "cause", res.Cause, "score", res.Score)
	}
}

// saveScreenshot saves the current frame to the screenshot directory.
func (m *Model) saveScreenshot() {
	path, err := SaveScreenshot(m.game, m.palette, m.shotDir, time.Now())
	if err != nil {
		m.logger.Error("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw(m.canvas)
	if !m.game.Running() {
		_, y := m.canvas.Geometry().ScorePos()
		m.canvas.Screen().DrawTextCentered(y, restartHint, core.ColorInk)
	}
	board := RenderScreen(m.canvas.Screen(), m.palette)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, footer, m.status)
	}
	view := lipgloss.JoinVertical(lipgloss.Left, board, footer)

	w, h := m.config.ScreenW, m.config.ScreenH
	if w <= 0 || h <= 0 {
		return view
	}
	needW := m.canvas.Screen().Width()
	needH := m.canvas.Screen().Height() + lipgloss.Height(footer)
	if w < needW || h < needH {
		return m.tooSmallView(needW, needH)
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, view)
}

func (m Model) tooSmallView(needW, needH int) string {
	msg := fmt.Sprintf("Window too small\n\nneed %dx%d, have %dx%d", needW, needH, m.config.ScreenW, m.config.ScreenH)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, msg)
}

// Game returns the game driven by the model.
func (m Model) Game() *game.Game {
	return m.game
}

// Close releases the game's resources.
func (m Model) Close() error {
	return m.game.Close()
}

// Run starts the Bubble Tea program with a new model and releases the
// game when the program exits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.Close() //nolint:errcheck // Close only fails on a second release

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
