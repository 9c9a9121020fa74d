package tui

import (
	"fmt"
	"strings"

	"findbackend/internal/model"
	"findbackend/internal/scan"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Section is one selectable group in the left panel.
type Section struct {
	Title string
	Icon  string
	Lines []string // Full, untruncated detail lines
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Result   model.ScanResult
	Sections []Section
	Loading  bool

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Filter State
	InputMode   bool
	InputBuffer textinput.Model
	Filter      string

	// Components
	DetailsViewport viewport.Model

	scanner *scan.Scanner
	root    string
}

// InitialModel returns the initial state.
func InitialModel(scanner *scan.Scanner, root string) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Path fragment..."
	ti.CharLimit = 80
	ti.Width = 30

	return AppModel{
		Loading:         true,
		InputBuffer:     ti,
		DetailsViewport: viewport.New(0, 0),
		scanner:         scanner,
		root:            root,
	}
}

// Init starts the scan.
func (m AppModel) Init() tea.Cmd {
	return InitScanCmd(m.scanner, m.root)
}

// BuildSections turns a scan result into panel sections: one per
// technology in discovery order, then the port definitions.
func BuildSections(result model.ScanResult) []Section {
	var sections []Section
	if result.Backends != nil {
		for _, found := range result.Backends.Found() {
			sections = append(sections, Section{
				Title: strings.ToUpper(string(found.Technology)),
				Icon:  model.IconTechnology,
				Lines: found.Files,
			})
		}
	}

	ports := Section{Title: "PORTS", Icon: model.IconPorts}
	for _, pm := range result.Ports {
		ports.Lines = append(ports.Lines, fmt.Sprintf("%s: %s", pm.Path, strings.Join(pm.Ports, ", ")))
	}
	if len(ports.Lines) == 0 {
		ports.Icon = model.IconEmpty
	}
	return append(sections, ports)
}

// filterLines keeps lines containing term, ignoring case.
func filterLines(lines []string, term string) []string {
	if term == "" {
		return lines
	}
	term = strings.ToLower(term)
	var kept []string
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), term) {
			kept = append(kept, line)
		}
	}
	return kept
}

// visibleLines returns the filtered lines of the selected section.
func (m AppModel) visibleLines() []string {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.Sections) {
		return nil
	}
	return filterLines(m.Sections[m.SelectedIdx].Lines, m.Filter)
}
