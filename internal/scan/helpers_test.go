package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"findbackend/internal/model"
)

// write creates root/rel with content, making parent directories.
func write(t *testing.T, root, rel, content string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// relPaths collects walked files relative to root, slash separated.
func relPaths(t *testing.T, root string, w *Walker) []string {
	t.Helper()
	var got []string
	for entry := range w.Walk(root) {
		got = append(got, rel(root, entry.Path()))
	}
	return got
}

func rel(root, path string) string {
	return strings.TrimPrefix(filepath.ToSlash(strings.TrimPrefix(path, root)), "/")
}

func relMatches(root string, files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = rel(root, f)
	}
	return out
}

func relPorts(root string, ports []model.PortMatch) map[string][]string {
	out := make(map[string][]string, len(ports))
	for _, pm := range ports {
		out[rel(root, pm.Path)] = pm.Ports
	}
	return out
}
