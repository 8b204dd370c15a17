package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/EngEryx/tubesort/internal/engine"
	"github.com/EngEryx/tubesort/internal/levels"
	"github.com/EngEryx/tubesort/internal/solver"
	"github.com/EngEryx/tubesort/internal/storage"
)

// hintMsg carries a finished hint search back into the update loop.
// The search runs as a command so large searches never block rendering.
type hintMsg struct {
	hint solver.Hint
}

// PlayModel is the Bubble Tea model for playing a single puzzle.
type PlayModel struct {
	level      levels.Level
	state      engine.PuzzleState
	solverOpts solver.Options
	store      *storage.Store // May be nil; play still works without it

	keys   KeyMap
	help   help.Model
	cursor int
	picked int // Index of the picked source tube, -1 when none

	hint        *solver.Hint
	hintPending bool
	hintsUsed   int
	status      string

	width    int
	height   int
	quitting bool
	recorded bool // Result row written for this game
}

// NewPlayModel creates a player for the given level.
func NewPlayModel(lvl levels.Level, opts solver.Options, store *storage.Store) (PlayModel, error) {
	state, err := lvl.NewState()
	if err != nil {
		return PlayModel{}, err
	}

	h := help.New()
	h.ShowAll = false

	return PlayModel{
		level:      lvl,
		state:      state,
		solverOpts: opts,
		store:      store,
		keys:       DefaultKeyMap(),
		help:       h,
		picked:     -1,
		width:      80,
		height:     24,
	}, nil
}

// Init initializes the model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case hintMsg:
		m.hintPending = false
		hint := msg.hint
		m.hint = &hint
		if hint.Found {
			m.hintsUsed++
			m.status = fmt.Sprintf("hint: %s (%d to go, %d states searched)",
				hint.Move, hint.MovesRemaining, hint.StatesExplored)
		} else {
			m.status = "no hint: " + hint.Outcome.String()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordResult()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleH):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.state.Containers())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.picked = -1
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		next, err := m.state.Undo()
		if err != nil {
			if errors.Is(err, engine.ErrNoHistory) {
				m.status = "nothing to undo"
			} else {
				m.status = err.Error()
			}
			return m, nil
		}
		m.state = next
		m.picked = -1
		m.hint = nil
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		next, err := m.state.Reset()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.state = next
		m.picked = -1
		m.hint = nil
		m.recorded = false
		m.status = "reset"
		return m, nil

	case key.Matches(msg, m.keys.Hint):
		if m.hintPending || m.gameOver() {
			return m, nil
		}
		m.hintPending = true
		m.status = "searching..."
		state, opts := m.state, m.solverOpts
		return m, func() tea.Msg {
			return hintMsg{hint: solver.NextHint(state, opts)}
		}

	case key.Matches(msg, m.keys.Select):
		return m.handleSelect()
	}

	return m, nil
}

// handleSelect implements the two-step pick-source-then-pour interaction.
func (m PlayModel) handleSelect() (tea.Model, tea.Cmd) {
	if m.gameOver() {
		return m, nil
	}

	containers := m.state.Containers()
	if m.picked < 0 {
		if containers[m.cursor].IsEmpty() {
			m.status = "tube is empty"
			return m, nil
		}
		m.picked = m.cursor
		m.status = ""
		return m, nil
	}

	if m.picked == m.cursor {
		m.picked = -1
		return m, nil
	}

	next, err := m.state.Apply(containers[m.picked].ID, containers[m.cursor].ID)
	if err != nil {
		var invalid *engine.InvalidMoveError
		if errors.As(err, &invalid) {
			m.status = invalid.Reason.String()
		} else {
			m.status = err.Error()
		}
		return m, nil
	}

	m.state = next
	m.picked = -1
	m.hint = nil
	m.status = ""

	if m.gameOver() {
		m.recordResult()
	}
	return m, nil
}

// gameOver returns true once the puzzle is won or the move limit is spent.
func (m *PlayModel) gameOver() bool {
	return m.state.IsWon() || m.state.IsLost()
}

// recordResult writes the finished game to storage, once per game.
func (m *PlayModel) recordResult() {
	if m.recorded || m.store == nil || m.state.MoveCount() == 0 {
		return
	}
	def := m.state.Definition()
	stars := 0
	if m.state.IsWon() {
		stars = def.Stars(m.state.MoveCount())
	}
	_, err := m.store.SaveResult(storage.ResultRecord{
		PuzzleID: m.level.ID,
		Moves:    m.state.MoveCount(),
		Stars:    stars,
		Hints:    m.hintsUsed,
		Won:      m.state.IsWon(),
	})
	if err == nil {
		m.recorded = true
	}
}

// View renders the puzzle.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	return renderPlay(&m)
}

// Run plays a level in the local terminal.
func Run(lvl levels.Level, opts solver.Options, store *storage.Store) error {
	model, err := NewPlayModel(lvl, opts, store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
