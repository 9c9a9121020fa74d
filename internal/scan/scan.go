// Package scan locates backend entry points and port definitions in a
// project tree.
package scan

import (
	"log/slog"

	"findbackend/internal/model"
)

// Options configures a Scanner.
type Options struct {
	Excludes []string
	Ignore   []string
	Logger   *slog.Logger
}

// Scanner runs the two analysis passes over a directory tree.
// Each pass performs its own walk so the passes stay independent.
type Scanner struct {
	walker   *Walker
	analyzer *Analyzer
	parser   *PortParser
}

func New(opts Options) *Scanner {
	return &Scanner{
		walker: NewWalker(WalkOptions{
			Excludes: opts.Excludes,
			Ignore:   opts.Ignore,
			Logger:   opts.Logger,
		}),
		analyzer: NewAnalyzer(),
		parser:   NewPortParser(opts.Logger),
	}
}

// ScanBackends walks root and classifies every file by name.
func (s *Scanner) ScanBackends(root string) *model.BackendMatches {
	return s.analyzer.Analyze(s.walker.Walk(root))
}

// FindPorts walks root and extracts port assignments from text files.
func (s *Scanner) FindPorts(root string) []model.PortMatch {
	return s.parser.Parse(s.walker.Walk(root))
}

// Run performs both passes. It never fails: inaccessible paths simply
// contribute nothing.
func (s *Scanner) Run(root string) model.ScanResult {
	return model.ScanResult{
		Root:     root,
		Backends: s.ScanBackends(root),
		Ports:    s.FindPorts(root),
	}
}
