package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stitch-dev/stitch/pkg/commands"
	"github.com/stitch-dev/stitch/pkg/errors"
	"github.com/stitch-dev/stitch/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".stitch"), 0755))
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := commands.FindProjectRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)

	found, err = commands.FindProjectRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFindProjectRootNotFound(t *testing.T) {
	_, err := commands.FindProjectRoot(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProjectNotFound))
}

func TestOpenEnvRequiresProject(t *testing.T) {
	t.Setenv("STITCH_CONFIG_DIR", t.TempDir())

	_, err := commands.OpenEnv(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrProjectNotFound))
}

func TestOpenEnvRestoresTrackedFiles(t *testing.T) {
	t.Setenv("STITCH_CONFIG_DIR", t.TempDir())
	t.Setenv("STITCH_SERVERS_ROOT", t.TempDir())

	projectRoot := t.TempDir()
	_, err := state.Init(projectRoot)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(projectRoot, "tracked.txt"), []byte("X\nrest\n"), 0644))

	project, err := state.Load(projectRoot)
	require.NoError(t, err)
	project.Files["tracked.txt"] = []state.SeriesRecord{
		{Server: "srv", Symbol: "x", Line: 0, Count: 1, Symbols: []string{"x"}},
	}
	require.NoError(t, project.Save(projectRoot))

	env, err := commands.OpenEnv(projectRoot)
	require.NoError(t, err)

	src, ok := env.Repo.Lookup("tracked.txt")
	require.True(t, ok)
	require.Len(t, src.Series(), 1)
	assert.Equal(t, "x", src.Series()[0].Directive.Symbol)
}
