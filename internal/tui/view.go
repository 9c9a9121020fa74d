package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"findbackend/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	unselectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
)

func (m AppModel) View() string {
	if m.Loading {
		return fmt.Sprintf("\n  Scanning %s... please wait.\n", m.root)
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	// Subtracting 6 for borders and padding of both panels
	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 3
	rightWidth := netWidth - leftWidth

	boxHeight := height - 4
	if boxHeight < 6 {
		boxHeight = 6
	}

	// LEFT PANEL: sections
	var left strings.Builder
	left.WriteString(headingStyle.Render("Findings"))
	left.WriteString("\n\n")
	for i, s := range m.Sections {
		label := fmt.Sprintf("%s %s (%d)", s.Icon, s.Title, len(s.Lines))
		if i == m.SelectedIdx {
			left.WriteString(selectedItemStyle.Render(model.IconCursor + " " + label))
		} else {
			left.WriteString(unselectedItemStyle.Render("  " + label))
		}
		left.WriteString("\n")
	}

	// RIGHT PANEL: files of the selected section
	var right strings.Builder
	heading := "Details"
	if m.SelectedIdx < len(m.Sections) {
		heading = m.Sections[m.SelectedIdx].Title
	}
	if m.Filter != "" {
		heading += dimStyle.Render(fmt.Sprintf("  filter: %q", m.Filter))
	}
	right.WriteString(headingStyle.Render(heading))
	right.WriteString("\n\n")
	right.WriteString(m.DetailsViewport.View())

	leftBox := panelStyle.Width(leftWidth).Height(boxHeight - 2).Render(left.String())
	rightBox := panelStyle.Width(rightWidth).Height(boxHeight - 2).Render(right.String())

	var footer string
	if m.InputMode {
		footer = "Filter: " + m.InputBuffer.View()
	} else {
		footer = dimStyle.Render("↑/↓ select • / filter • esc clear • pgup/pgdn scroll • q quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("findbackend "+m.root),
		lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox),
		footer,
	)
}
