package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconTechnology = "◆" // Diamond for a technology section
	IconPorts      = "⇄" // Port definitions section
	IconFile       = "·" // Single matched file
	IconCursor     = "›" // Selected row
	IconEmpty      = "✗" // Section with nothing found
)
