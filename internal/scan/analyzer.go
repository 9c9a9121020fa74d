package scan

import (
	"iter"
	"strings"

	"findbackend/internal/model"
)

// Analyzer classifies files into backend technologies by their names.
type Analyzer struct {
	table []model.IndicatorSet
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{table: model.IndicatorTable()}
}

// Match returns every technology whose indicators occur in the file name or
// its full path, in table order. Each technology appears at most once.
func (a *Analyzer) Match(entry model.FileEntry) []model.Technology {
	path := entry.Path()
	var techs []model.Technology
	for _, set := range a.table {
		for _, indicator := range set.Indicators {
			if strings.Contains(entry.Name, indicator) || strings.Contains(path, indicator) {
				techs = append(techs, set.Technology)
				break
			}
		}
	}
	return techs
}

// Analyze consumes files and builds the technology -> paths mapping.
// Only path strings are inspected; file contents are never opened.
func (a *Analyzer) Analyze(files iter.Seq[model.FileEntry]) *model.BackendMatches {
	matches := model.NewBackendMatches()
	for entry := range files {
		path := entry.Path()
		for _, tech := range a.Match(entry) {
			matches.Add(tech, path)
		}
	}
	return matches
}
