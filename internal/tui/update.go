package tui

import (
	"strings"

	"findbackend/internal/model"
	"findbackend/internal/scan"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgScanReady indicates that the scan has completed.
type MsgScanReady model.ScanResult

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 6 // minus title, footer, borders
		m.refreshDetails()
		return m, nil

	case MsgScanReady:
		m.Loading = false
		m.Result = model.ScanResult(msg)
		m.Sections = BuildSections(m.Result)
		m.SelectedIdx = 0
		m.refreshDetails()
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.Filter = strings.TrimSpace(m.InputBuffer.Value())
				m.refreshDetails()
				return m, nil
			case tea.KeyEsc:
				m.clearFilter()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.Filter != "" {
				m.clearFilter()
			}
			return m, nil
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.refreshDetails()
			}
			return m, nil
		case "down", "j":
			if m.SelectedIdx < len(m.Sections)-1 {
				m.SelectedIdx++
				m.refreshDetails()
			}
			return m, nil
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue(m.Filter)
			return m, textinput.Blink
		}

		// Remaining keys (pgup, pgdown, ...) scroll the details.
		m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
	}

	return m, cmd
}

func (m *AppModel) clearFilter() {
	m.InputMode = false
	m.InputBuffer.Blur()
	m.InputBuffer.SetValue("")
	m.Filter = ""
	m.refreshDetails()
}

// refreshDetails loads the selected section into the viewport.
func (m *AppModel) refreshDetails() {
	lines := m.visibleLines()
	if len(lines) == 0 {
		m.DetailsViewport.SetContent(dimStyle.Render("Nothing found."))
	} else {
		rendered := make([]string, len(lines))
		for i, line := range lines {
			rendered[i] = model.IconFile + " " + line
		}
		m.DetailsViewport.SetContent(strings.Join(rendered, "\n"))
	}
	m.DetailsViewport.GotoTop()
}

// InitScanCmd runs both scan passes in the background.
func InitScanCmd(scanner *scan.Scanner, root string) tea.Cmd {
	return func() tea.Msg {
		return MsgScanReady(scanner.Run(root))
	}
}
