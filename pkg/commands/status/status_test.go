package status_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stitch-dev/stitch/pkg/commands/compile"
	"github.com/stitch-dev/stitch/pkg/commands/status"
	"github.com/stitch-dev/stitch/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) (projectRoot string) {
	t.Helper()

	serversRoot := t.TempDir()
	t.Setenv("STITCH_CONFIG_DIR", t.TempDir())
	t.Setenv("STITCH_SERVERS_ROOT", serversRoot)
	for _, key := range []string{"STITCH_MARKER", "STITCH_EXTENSION", "STITCH_COLOR"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	serverDir := filepath.Join(serversRoot, "acme")
	require.NoError(t, os.MkdirAll(serverDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(serverDir, "stitch.toml"), []byte(`
[[symbols]]
name = "a"
dependencies = ["b"]
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(serverDir, "a"), []byte("A\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(serverDir, "b"), []byte("B\n"), 0644))

	projectRoot = t.TempDir()
	_, err := state.Init(projectRoot)
	require.NoError(t, err)
	return projectRoot
}

func TestStatusEmptyProject(t *testing.T) {
	projectRoot := setupEnv(t)

	report, err := status.Status(status.Options{ProjectRoot: projectRoot})
	require.NoError(t, err)
	assert.Equal(t, projectRoot, report.ProjectRoot)
	assert.Empty(t, report.Files)
}

func TestStatusReportsTrackedFiles(t *testing.T) {
	projectRoot := setupEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(projectRoot, "notes.txt"), []byte("... acme a\n"), 0644))

	_, err := compile.Compile(compile.Options{ProjectRoot: projectRoot, Files: []string{"notes.txt"}})
	require.NoError(t, err)

	report, err := status.Status(status.Options{ProjectRoot: projectRoot})
	require.NoError(t, err)
	require.Len(t, report.Files, 1)

	file := report.Files[0]
	assert.Equal(t, "notes.txt", file.Path)
	assert.Equal(t, 1, file.Directives)
	assert.Equal(t, 3, file.LinesOwned)
	assert.Equal(t, []string{"b", "a"}, file.Symbols)
	assert.Contains(t, file.Digest, "sha256:")
}
