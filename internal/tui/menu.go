package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/EngEryx/tubesort/internal/levels"
	"github.com/EngEryx/tubesort/internal/solver"
	"github.com/EngEryx/tubesort/internal/storage"
)

// MenuModel is the Bubble Tea model for the level picker used by SSH
// sessions. Selecting a level swaps to a PlayModel; quitting the game
// returns to the menu.
type MenuModel struct {
	items      []levels.Level
	cursor     int
	solverOpts solver.Options
	store      *storage.Store
	keys       menuKeyMap

	playing *PlayModel

	width    int
	height   int
	quitting bool
}

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewMenuModel creates a level picker over the given levels.
func NewMenuModel(items []levels.Level, opts solver.Options, store *storage.Store) MenuModel {
	return MenuModel{
		items:      items,
		solverOpts: opts,
		store:      store,
		keys:       defaultMenuKeyMap(),
		width:      80,
		height:     24,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages, delegating to the active game when one is running.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	if m.playing != nil {
		updated, cmd := m.playing.Update(msg)
		if play, ok := updated.(PlayModel); ok {
			if play.quitting {
				// Back to the menu instead of closing the session.
				m.playing = nil
				return m, nil
			}
			m.playing = &play
		}
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(keyMsg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(keyMsg, m.keys.Select):
			if len(m.items) == 0 {
				return m, nil
			}
			play, err := NewPlayModel(m.items[m.cursor], m.solverOpts, m.store)
			if err != nil {
				return m, nil
			}
			play.width = m.width
			play.height = m.height
			m.playing = &play
			return m, play.Init()
		}
	}

	return m, nil
}

// View renders the level list, or the active game.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.playing != nil {
		return m.playing.View()
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("tubesort - pick a puzzle"))
	sb.WriteString("\n\n")

	if len(m.items) == 0 {
		sb.WriteString(statusStyle.Render("no puzzles available"))
		sb.WriteString("\n")
		return sb.String()
	}

	for i, lvl := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		line := lvl.ID
		if lvl.Difficulty != "" {
			line += fmt.Sprintf("  (%s)", lvl.Difficulty)
		}
		if lvl.Optimal > 0 {
			line += fmt.Sprintf("  optimal %d", lvl.Optimal)
		}
		sb.WriteString(marker + line + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render("up/down: move  enter: play  q: quit"))
	return sb.String()
}
