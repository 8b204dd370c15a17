package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/EngEryx/tubesort/internal/engine"
)

// colorStyles maps engine colors to lipgloss styles.
var colorStyles = map[engine.Color]lipgloss.Style{
	engine.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	engine.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	engine.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	engine.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	engine.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	engine.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	engine.ColorCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	engine.ColorPink:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pickedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	wonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// renderPlay draws the whole play screen: header, tubes, status, help.
func renderPlay(m *PlayModel) string {
	var sb strings.Builder

	name := m.level.Name
	if name == "" {
		name = m.level.ID
	}
	sb.WriteString(titleStyle.Render("tubesort - " + name))
	sb.WriteString("\n")

	def := m.state.Definition()
	header := fmt.Sprintf("moves: %d", m.state.MoveCount())
	if def.MoveLimit > 0 {
		header += fmt.Sprintf("/%d", def.MoveLimit)
	}
	if m.level.Optimal > 0 {
		header += fmt.Sprintf("  optimal: %d", m.level.Optimal)
	}
	sb.WriteString(frameStyle.Render(header))
	sb.WriteString("\n\n")

	sb.WriteString(renderTubes(m))
	sb.WriteString("\n")

	switch {
	case m.state.IsWon():
		stars := def.Stars(m.state.MoveCount())
		sb.WriteString(wonStyle.Render(fmt.Sprintf("Solved in %d moves  %s",
			m.state.MoveCount(), strings.Repeat("*", stars))))
	case m.state.IsLost():
		sb.WriteString(lostStyle.Render("Out of moves - press r to retry"))
	case m.state.IsStuck():
		sb.WriteString(lostStyle.Render("No legal moves left - undo or reset"))
	case m.status != "":
		if m.hint != nil && m.hint.Found {
			sb.WriteString(hintStyle.Render(m.status))
		} else {
			sb.WriteString(statusStyle.Render(m.status))
		}
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// renderTubes draws the containers side by side as vertical tubes.
func renderTubes(m *PlayModel) string {
	containers := m.state.Containers()
	if len(containers) == 0 {
		return ""
	}

	capacity := 0
	for _, c := range containers {
		if c.Capacity > capacity {
			capacity = c.Capacity
		}
	}

	columns := make([]string, 0, len(containers))
	for i, c := range containers {
		columns = append(columns, renderTube(m, i, c, capacity))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// renderTube draws a single container column, top cell first.
func renderTube(m *PlayModel, idx int, c engine.Container, capacity int) string {
	var sb strings.Builder

	// Cells, top to bottom. Empty slots render as blanks.
	for row := capacity - 1; row >= 0; row-- {
		sb.WriteString(frameStyle.Render("│"))
		if color, ok := c.ColorAt(row); ok {
			style, found := colorStyles[color]
			if !found {
				style = frameStyle
			}
			sb.WriteString(style.Render("██"))
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(frameStyle.Render("│"))
		sb.WriteString(" \n")
	}
	sb.WriteString(frameStyle.Render("└──┘"))
	sb.WriteString(" \n")

	// Label row: id, with selection and cursor markers.
	label := " " + c.ID + "  "
	switch {
	case idx == m.picked:
		label = pickedStyle.Render("[" + c.ID + "] ")
	case idx == m.cursor:
		label = cursorStyle.Render(" " + c.ID + "^ ")
	}
	sb.WriteString(label)
	sb.WriteString("\n")

	// Hint markers under the involved tubes.
	if m.hint != nil && m.hint.Found {
		switch c.ID {
		case m.hint.Move.From:
			sb.WriteString(hintStyle.Render("from "))
		case m.hint.Move.To:
			sb.WriteString(hintStyle.Render(" to  "))
		default:
			sb.WriteString("     ")
		}
	}

	return sb.String()
}
