package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/hyago/internal/watcher"
)

func startWatcher(t *testing.T, paths ...string) <-chan struct{} {
	t.Helper()
	w, err := watcher.New(watcher.Config{Paths: paths, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })
	return w.Start()
}

func requireSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected notification but got timeout")
	}
}

func requireQuiet(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("unexpected notification")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte("a = 1"), 0644))
	onChange := startWatcher(t, dir)

	// --- Act ---
	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("a = %d", i)), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	// --- Assert ---
	requireSignal(t, onChange)
	requireQuiet(t, onChange)
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("initial"), 0644))
	onChange := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(other, []byte("changed"), 0644))

	requireQuiet(t, onChange)
}

func TestWatcher_SingleFile(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.hcl")
	sibling := filepath.Join(dir, "sibling.hcl")
	require.NoError(t, os.WriteFile(watched, []byte("a = 1"), 0644))
	require.NoError(t, os.WriteFile(sibling, []byte("b = 1"), 0644))
	onChange := startWatcher(t, watched)

	require.NoError(t, os.WriteFile(sibling, []byte("b = 2"), 0644))
	requireQuiet(t, onChange)

	require.NoError(t, os.WriteFile(watched, []byte("a = 2"), 0644))
	requireSignal(t, onChange)
}

func TestWatcher_NestedDirectoryCreatedLater(t *testing.T) {
	dir := t.TempDir()
	onChange := startWatcher(t, dir)

	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(nested, 0755))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(nested, "extra.hcl"), []byte("c = 1"), 0644))

	requireSignal(t, onChange)
}

func TestNew_SkipsMissingPaths(t *testing.T) {
	w, err := watcher.New(watcher.Config{Paths: []string{filepath.Join(t.TempDir(), "missing")}})
	require.NoError(t, err)
	require.NoError(t, w.Stop())
}
