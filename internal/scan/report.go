package scan

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"

	"findbackend/internal/model"
)

// MaxFilesShown caps the files listed per technology in the text report.
const MaxFilesShown = 5

const instructionsTitle = "INSTRUCTIONS:"

var instructionSteps = heredoc.Doc(`
	1. Look for server.js, app.js, app.py, or similar files above
	2. Check the port number used (likely 3000, 5000, or 8000)
	3. Update your ApiConfig URL in mobile/lib/config/api_config.dart with this port
	4. Make sure the backend server is running before testing the mobile app
`)

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")) // Pinkish

	technologyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

// GenerateReport renders both result sets and the follow-up instructions as
// console text. With color false the output is plain text.
func GenerateReport(result model.ScanResult, color bool) string {
	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	var sb strings.Builder

	sb.WriteString("Scanning for backend files...\n")
	sb.WriteString("\n" + style(sectionStyle, "Potential backend technologies found:") + "\n")
	if result.Backends != nil {
		for _, found := range result.Backends.Found() {
			header := strings.ToUpper(string(found.Technology)) + " files found:"
			sb.WriteString("\n" + style(technologyStyle, header) + "\n")

			shown := found.Files
			if len(shown) > MaxFilesShown {
				shown = shown[:MaxFilesShown]
			}
			for _, path := range shown {
				sb.WriteString(fmt.Sprintf("  - %s\n", path))
			}
			if rest := len(found.Files) - MaxFilesShown; rest > 0 {
				sb.WriteString(fmt.Sprintf("  - ...and %d more\n", rest))
			}
		}
	}

	sb.WriteString("\nScanning for API port definitions...\n")
	sb.WriteString("\n" + style(sectionStyle, "Potential API port definitions:") + "\n")
	for _, pm := range result.Ports {
		sb.WriteString(fmt.Sprintf("  - %s: Ports %s\n", pm.Path, strings.Join(pm.Ports, ", ")))
	}

	sb.WriteString("\n" + style(adviceStyle, instructionsTitle) + "\n")
	sb.WriteString(instructionSteps)

	return sb.String()
}
