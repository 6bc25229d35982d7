package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hyago/internal/fsutil"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0644))
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.hcl"))
	writeFile(t, filepath.Join(root, "nested", "b.hcl"))
	writeFile(t, filepath.Join(root, "nested", "c.txt"))

	files, err := fsutil.FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "b.hcl"),
	}, files)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	require.Panics(t, func() {
		_, _ = fsutil.FindFilesByExtension(t.TempDir(), "")
	})
}

func TestCollectFiles(t *testing.T) {
	// --- Arrange ---
	root := t.TempDir()
	single := filepath.Join(root, "single.hcl")
	writeFile(t, single)
	writeFile(t, filepath.Join(root, "dir", "x.hcl"))
	writeFile(t, filepath.Join(root, "other.txt"))

	// --- Act ---
	files, err := fsutil.CollectFiles(".hcl",
		single,
		filepath.Join(root, "dir"),
		single, // duplicate
		filepath.Join(root, "other.txt"),
		filepath.Join(root, "does-not-exist"),
	)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{single, filepath.Join(root, "dir", "x.hcl")}, files)
}
