package scan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbackend/internal/model"
)

func TestAnalyzerMatch(t *testing.T) {
	a := NewAnalyzer()
	sep := string(filepath.Separator)

	tests := []struct {
		name  string
		entry model.FileEntry
		want  []model.Technology
	}{
		{"python entry point", model.FileEntry{Dir: sep + "proj", Name: "app.py"}, []model.Technology{model.Python}},
		{"two technologies", model.FileEntry{Dir: sep + "proj", Name: "app.py.routes"}, []model.Technology{model.Python, model.API}},
		{"package manifest", model.FileEntry{Dir: sep + "proj", Name: "package.json"}, []model.Technology{model.NodeJS}},
		{"csproj extension", model.FileEntry{Dir: sep + "proj", Name: "Shop.csproj"}, []model.Technology{model.CSharp}},
		{"case-sensitive indicator", model.FileEntry{Dir: sep + "proj", Name: "program.cs"}, nil},
		{"indicator in directory", model.FileEntry{Dir: sep + "proj" + sep + "migrations", Name: "0001_init.sql"}, []model.Technology{model.Database}},
		{"php under controllers", model.FileEntry{Dir: sep + "proj" + sep + "controllers", Name: "index.php"}, []model.Technology{model.PHP, model.API}},
		{"no indicator", model.FileEntry{Dir: sep + "proj", Name: "README.md"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Match(tt.entry))
		})
	}
}

func TestAnalyzerMatch_OneEntryPerTechnology(t *testing.T) {
	// "server.js" and "index.js" both hit node.js; the file is listed once.
	entry := model.FileEntry{Dir: string(filepath.Separator) + "server.js", Name: "index.js"}
	assert.Equal(t, []model.Technology{model.NodeJS}, NewAnalyzer().Match(entry))
}

func TestAnalyze_SingleFileUnderPythonOnly(t *testing.T) {
	root := t.TempDir()
	write(t, root, "app.py", "print('hi')")

	matches := NewAnalyzer().Analyze(NewWalker(WalkOptions{}).Walk(root))

	require.Equal(t, 1, matches.Len())
	assert.Equal(t, []string{"app.py"}, relMatches(root, matches.Files(model.Python)))
	for _, tech := range model.Technologies {
		if tech != model.Python {
			assert.Empty(t, matches.Files(tech), tech)
		}
	}
}

func TestAnalyze_MultiTechnologyMembership(t *testing.T) {
	root := t.TempDir()
	write(t, root, "app.py.routes", "")

	matches := NewAnalyzer().Analyze(NewWalker(WalkOptions{}).Walk(root))

	assert.Equal(t, []string{"app.py.routes"}, relMatches(root, matches.Files(model.Python)))
	assert.Equal(t, []string{"app.py.routes"}, relMatches(root, matches.Files(model.API)))
}

func TestAnalyze_DiscoveryOrder(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a/schema.sql", "")
	write(t, root, "b/server.js", "")
	write(t, root, "c/index.js", "")

	matches := NewAnalyzer().Analyze(NewWalker(WalkOptions{}).Walk(root))

	found := matches.Found()
	require.Len(t, found, 2)
	assert.Equal(t, model.Database, found[0].Technology)
	assert.Equal(t, model.NodeJS, found[1].Technology)
	assert.Equal(t, []string{"b/server.js", "c/index.js"}, relMatches(root, found[1].Files))
}

func TestAnalyze_SkipsExcludedTrees(t *testing.T) {
	root := t.TempDir()
	write(t, root, "backend/main.py", "")
	write(t, root, "mobile/lib/main.py", "")
	write(t, root, "website/server.js", "")

	matches := NewAnalyzer().Analyze(NewWalker(WalkOptions{}).Walk(root))

	assert.Equal(t, []string{"backend/main.py"}, relMatches(root, matches.Files(model.Python)))
	assert.Empty(t, matches.Files(model.NodeJS))
}
