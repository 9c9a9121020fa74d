package model

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackendMatches_AllKeysPresent(t *testing.T) {
	b := NewBackendMatches()

	for _, tech := range Technologies {
		files := b.Files(tech)
		assert.NotNil(t, files, tech)
		assert.Empty(t, files, tech)
	}
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Found())
}

func TestBackendMatches_FirstMatchOrder(t *testing.T) {
	b := NewBackendMatches()
	b.Add(API, "/p/routes/a.js")
	b.Add(NodeJS, "/p/routes/a.js")
	b.Add(API, "/p/routes/b.js")

	found := b.Found()
	require.Len(t, found, 2)
	assert.Equal(t, API, found[0].Technology)
	assert.Equal(t, []string{"/p/routes/a.js", "/p/routes/b.js"}, found[0].Files)
	assert.Equal(t, NodeJS, found[1].Technology)
}

func TestIndicatorTable_DeclarationOrder(t *testing.T) {
	table := IndicatorTable()
	require.Len(t, table, len(Technologies))
	for i, set := range table {
		assert.Equal(t, Technologies[i], set.Technology)
		assert.NotEmpty(t, set.Indicators)
	}

	table[0].Indicators[0] = "changed"
	assert.Equal(t, "server.js", IndicatorTable()[0].Indicators[0])
}

func TestScanResult_MarshalJSON(t *testing.T) {
	b := NewBackendMatches()
	b.Add(Python, "/p/app.py")

	out, err := json.Marshal(ScanResult{Root: "/p", Backends: b})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"root": "/p",
		"technologies": [{"technology": "python", "files": ["/p/app.py"]}],
		"ports": []
	}`, string(out))
}

func TestJoinPath(t *testing.T) {
	sep := string(filepath.Separator)
	assert.Equal(t, "a"+sep+"b.js", JoinPath("a", "b.js"))
	assert.Equal(t, "a/b.js", JoinPath("a/", "b.js"))
	assert.Equal(t, "b.js", JoinPath("", "b.js"))
	assert.Equal(t, "."+sep+"x"+sep+".."+sep+"b.js", JoinPath("."+sep+"x"+sep+"..", "b.js"))
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.env")
	require.NoError(t, os.WriteFile(p, []byte("PORT=80\xff80\n"), 0o644))

	res := ReadText(p)
	require.False(t, res.Skipped())
	assert.Equal(t, "PORT=8080\n", res.Content)
	assert.Equal(t, p, res.Path)
}

func TestReadText_KeepsLiteralReplacementChar(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.env")
	require.NoError(t, os.WriteFile(p, []byte("port\uFFFD=80\xe2\x82\n\xf0\x9f\x9a\x80"), 0o644))

	res := ReadText(p)
	require.False(t, res.Skipped())
	assert.Equal(t, "port\uFFFD=80\n\U0001F680", res.Content)
}

func TestReadText_Missing(t *testing.T) {
	res := ReadText(filepath.Join(t.TempDir(), "gone.js"))

	assert.True(t, res.Skipped())
	assert.ErrorIs(t, res.Err, os.ErrNotExist)
	assert.Empty(t, res.Content)
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, "src"), ExpandTilde("~/src"))
	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, "/abs/~/x", ExpandTilde("/abs/~/x"))
}
