package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hyago/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

func newTestApp(t *testing.T, src string, modules ...registry.Module) (*App, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.hcl"), []byte(src), 0644))

	cfg, err := NewConfig(Config{ConfigPaths: []string{dir}, LogLevel: "debug"})
	require.NoError(t, err)

	var buf bytes.Buffer
	a, err := NewApp(&buf, cfg, modules...)
	require.NoError(t, err)
	return a, &buf
}

func TestNewApp_PublishesCoreModules(t *testing.T) {
	// --- Arrange & Act ---
	a, _ := newTestApp(t, `x = 1`)

	// --- Assert ---
	for _, key := range []string{"hya.add", "hya.sha256", "hya.to_path", "hya.len", "hya.braceexpand", "hya.yaml_decode", "hya.uuid5", "hya.env"} {
		require.True(t, a.Registry().HasResolver(key), key)
		require.True(t, a.Engine().HasResolver(key), key)
	}
	require.Contains(t, a.Engine().Functions(), "upper")
}

func TestApp_Load(t *testing.T) {
	a, logs := newTestApp(t, `answer = hya::add(40, 2)`)

	doc, err := a.Load(context.Background())
	require.NoError(t, err)

	v, ok := doc.Get("answer")
	require.True(t, ok)
	require.True(t, v.RawEquals(cty.NumberIntVal(42)), "got %#v", v)
	require.Contains(t, logs.String(), "Configuration loaded.")
}

func TestApp_PublishPicksUpLateRegistrations(t *testing.T) {
	// --- Arrange ---
	a, _ := newTestApp(t, `greeting = hya::greet("bob")`)
	_, err := a.Load(context.Background())
	require.Error(t, err, "greet is not registered yet")

	// --- Act ---
	require.NoError(t, a.Registry().Register("hya.greet", func(name string) string { return "hi " + name }))
	require.NoError(t, a.Publish(context.Background()))
	doc, err := a.Load(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	var greeting string
	require.NoError(t, doc.DecodeAttr("greeting", &greeting))
	require.Equal(t, "hi bob", greeting)
}

func TestCoreModules_UseNamespace(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.RegisterModules(CoreModules("acme")...))

	require.True(t, reg.HasResolver("acme.add"))
	require.False(t, reg.HasResolver("hya.add"))
}
