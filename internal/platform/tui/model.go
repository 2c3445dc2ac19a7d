package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
)

// Model is the Bubble Tea model driving the snake game.
//
// Key messages are mapped and applied as they arrive; tick messages commit at
// most one game step per elapsed tick period and re-arm the tick.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	logger   *log.Logger
	period   time.Duration
	lastTick time.Time

	err         error // invariant violation that stopped the loop
	warnedSmall bool
	quitting    bool
}

// NewModel creates a Bubble Tea model and resets the game for a new run.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = core.DefaultTickPeriod
	}
	game.Reset(cfg)

	return Model{
		game:     game,
		screen:   core.NewScreen(snake.FrameWidth, snake.FrameHeight),
		keys:     DefaultKeyMap(),
		logger:   logger,
		period:   cfg.TickPeriod,
		lastTick: time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.period)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey applies one key press. Escape ends the game immediately, without
// waiting for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	m.game.HandleAction(action)
	if m.game.State().GameOver {
		return m.quit()
	}
	return m, nil
}

// handleResize warns once if the terminal cannot show the whole frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if !FitsFrame(msg.Width, msg.Height) && !m.warnedSmall {
		m.logger.Warn("terminal smaller than the playfield",
			"width", msg.Width, "height", msg.Height,
			"need_width", snake.FrameWidth, "need_height", snake.FrameHeight)
		m.warnedSmall = true
	}
	return m, nil
}

// handleTick runs one simulation step if a full period has elapsed since the last one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.game.State().GameOver {
		return m.quit()
	}

	if now.Sub(m.lastTick) >= m.period {
		result := m.game.Step()
		m.lastTick = now

		if result.Ate {
			m.logger.Debug("food eaten", "score", result.State.Score, "length", m.game.Len())
		}
		if err := m.game.Validate(); err != nil {
			m.err = err
			m.logger.Error("game state corrupted", "err", err)
			return m.quit()
		}
		if result.State.GameOver {
			return m.quit()
		}
	}

	return m, tickCmd(m.period)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.logger.Debug("game over", "reason", m.game.EndReason(), "score", m.game.State().Score)
	return m, tea.Quit
}

// Err returns the invariant violation that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the game ends.
// The terminal is restored on every exit path, including panics, before Run
// returns. Extra options are appended after the alt-screen default.
func Run(game *snake.Game, cfg core.RuntimeConfig, logger *log.Logger, opts ...tea.ProgramOption) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...,
	)

	final, err := p.Run()
	if err != nil {
		return game.State(), errors.Wrap(err, "tui: run program")
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return game.State(), m.Err()
	}
	return game.State(), nil
}
