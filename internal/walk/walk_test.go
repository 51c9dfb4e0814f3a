package walk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalkDiscoversFilesSkippingExcluded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "vendor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor", "c.go"), []byte("package c"), 0o644))

	w := New()
	results, err := w.Walk(context.Background(), Scope{
		Path:    dir,
		Exclude: []string{"**/vendor/**"},
	})
	require.NoError(t, err)

	var found []string
	for r := range results {
		require.NoError(t, r.Error)
		found = append(found, r.Path)
	}
	require.Len(t, found, 2)
}
