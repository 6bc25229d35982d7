package paths_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hyago/internal/engine"
	"github.com/vk/hyago/internal/publisher"
	"github.com/vk/hyago/internal/registry"
	"github.com/vk/hyago/modules/paths"
)

func TestToPath(t *testing.T) {
	dir := t.TempDir()
	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "absolute", in: dir, want: dir},
		{name: "cleaned", in: dir + "/a/../b", want: filepath.Join(dir, "b")},
		{name: "file url", in: "file://" + dir + "/my%20file", want: filepath.Join(dir, "my file")},
		{name: "escaped plain path", in: dir + "/my%20file", want: filepath.Join(dir, "my file")},
		{name: "home", in: "~/configs", want: filepath.Join(home, "configs")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := paths.ToPath(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestToPath_RelativeIsMadeAbsolute(t *testing.T) {
	got, err := paths.ToPath("some/relative/path")

	require.NoError(t, err)
	require.True(t, filepath.IsAbs(got))
	require.Equal(t, "path", filepath.Base(got))
}

func TestToPath_Empty(t *testing.T) {
	_, err := paths.ToPath("")
	require.Error(t, err)
}

func TestModule_Evaluate(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.RegisterModules(&paths.Module{}))
	eng := engine.New()
	require.NoError(t, publisher.Publish(context.Background(), reg, eng))

	viaPath, err := eng.EvaluateExpression(`hya::path("/tmp/../tmp/x")`)
	require.NoError(t, err)
	viaToPath, err := eng.EvaluateExpression(`hya::to_path("/tmp/../tmp/x")`)
	require.NoError(t, err)

	require.Equal(t, viaToPath, viaPath)
	require.True(t, filepath.IsAbs(viaPath.AsString()))
}
