package scan

import (
	"iter"
	"log/slog"
	"regexp"
	"strings"

	"findbackend/internal/model"
)

// PortParser extracts port assignments from text files.
type PortParser struct {
	re         *regexp.Regexp
	extensions []string
	log        *slog.Logger
}

// NewPortParser creates a PortParser. A nil logger discards diagnostics.
func NewPortParser(logger *slog.Logger) *PortParser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	// Pattern: (port|PORT) = 8080, PORT: 3000, port=80
	// Only the two literal casings are accepted; "Port" alone does not match.
	return &PortParser{
		re:         regexp.MustCompile(`(?:port|PORT)\s*[=:]\s*(\d+)`),
		extensions: model.PortFileExtensions,
		log:        logger,
	}
}

// Qualifies reports whether a file with this name is searched for ports.
// The suffix match is case-sensitive.
func (p *PortParser) Qualifies(name string) bool {
	for _, ext := range p.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// FindPorts returns the digit strings of all non-overlapping matches in
// order of appearance. Values are not range-checked or converted.
func (p *PortParser) FindPorts(content string) []string {
	var ports []string
	for _, m := range p.re.FindAllStringSubmatch(content, -1) {
		ports = append(ports, m[1])
	}
	return ports
}

// Parse reads every qualifying file and records those with at least one
// port assignment. Unreadable files are skipped.
func (p *PortParser) Parse(files iter.Seq[model.FileEntry]) []model.PortMatch {
	results := []model.PortMatch{}
	for entry := range files {
		if !p.Qualifies(entry.Name) {
			continue
		}

		read := model.ReadText(entry.Path())
		if read.Skipped() {
			p.log.Debug("skipping unreadable file", "path", read.Path, "err", read.Err)
			continue
		}

		if ports := p.FindPorts(read.Content); len(ports) > 0 {
			results = append(results, model.PortMatch{Path: read.Path, Ports: ports})
		}
	}
	return results
}
