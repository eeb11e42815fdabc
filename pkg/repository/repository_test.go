package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stitch-dev/stitch/pkg/errors"
	"github.com/stitch-dev/stitch/pkg/repository"
	"github.com/stitch-dev/stitch/pkg/source"
	"github.com/stitch-dev/stitch/pkg/state"
	"github.com/stitch-dev/stitch/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRegisterLoadsFromDisk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "notes/todo.txt", "line one\nline two\n")

	repo := repository.New(root)
	src, err := repo.Register("notes/todo.txt")
	require.NoError(t, err)

	assert.Equal(t, "notes/todo.txt", src.Path())
	assert.Equal(t, []string{"line one", "line two"}, src.Lines())
	assert.True(t, src.Registered())
}

func TestRegisterMissingFile(t *testing.T) {
	repo := repository.New(t.TempDir())
	_, err := repo.Register("ghost.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathNotFound))
}

func TestRegisterDeduplicatesTextualPaths(t *testing.T) {
	root := t.TempDir()
	abs := writeFile(t, root, "a/file.txt", "content\n")

	repo := repository.New(root)
	first, err := repo.Register("a/file.txt")
	require.NoError(t, err)
	second, err := repo.Register("./a/../a/file.txt")
	require.NoError(t, err)
	third, err := repo.Register(abs)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first, third)
	assert.Len(t, repo.Sources(), 1)
}

func TestRegisterKeepsInMemoryState(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "on disk\n")

	repo := repository.New(root)
	src, err := repo.Register("file.txt")
	require.NoError(t, err)

	// Mutate in memory, unregister, then re-register: the pending edit
	// must survive instead of being reloaded from disk.
	src.Lines()[0] = "edited in memory"
	require.NoError(t, repo.Unregister("file.txt"))
	assert.False(t, src.Registered())

	again, err := repo.Register("file.txt")
	require.NoError(t, err)
	assert.Same(t, src, again)
	assert.True(t, again.Registered())
	assert.Equal(t, "edited in memory", again.Lines()[0])
}

func TestSaveDigestGating(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "original\n")

	repo := repository.New(root)
	src, err := repo.Register("file.txt")
	require.NoError(t, err)

	// Nothing changed: no writes
	written, err := repo.Save(false)
	require.NoError(t, err)
	assert.Equal(t, 0, written)

	// Mutate and save: exactly one write
	src.Lines()[0] = "changed"
	written, err = repo.Save(false)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	data, err := os.ReadFile(filepath.Join(root, "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "changed\n", string(data))

	// Saving again without further changes is a no-op
	written, err = repo.Save(false)
	require.NoError(t, err)
	assert.Equal(t, 0, written)
}

func TestSaveSkipsUnregisteredUnlessAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "original\n")

	repo := repository.New(root)
	src, err := repo.Register("file.txt")
	require.NoError(t, err)

	src.Lines()[0] = "changed"
	require.NoError(t, repo.Unregister("file.txt"))

	written, err := repo.Save(false)
	require.NoError(t, err)
	assert.Equal(t, 0, written)

	written, err = repo.Save(true)
	require.NoError(t, err)
	assert.Equal(t, 1, written)
}

func TestDumpOnlyRegisteredWithSeries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "with.txt", "A\n")
	writeFile(t, root, "without.txt", "plain\n")
	writeFile(t, root, "off.txt", "B\n")

	repo := repository.New(root)
	withSeries, err := repo.Register("with.txt")
	require.NoError(t, err)
	_, err = repo.Register("without.txt")
	require.NoError(t, err)
	off, err := repo.Register("off.txt")
	require.NoError(t, err)

	attach := func(src *source.Source) {
		src.AttachSeries([]*source.Series{{
			Directive: source.Directive{Server: "srv", Symbol: "a", Indent: "\t"},
			Line:      0,
			Count:     1,
			Symbols:   []string{"a"},
		}})
	}
	attach(withSeries)
	attach(off)
	require.NoError(t, repo.Unregister("off.txt"))

	snapshot := repo.Dump()
	require.Len(t, snapshot, 1)
	records := snapshot["with.txt"]
	require.Len(t, records, 1)
	assert.Equal(t, state.SeriesRecord{
		Server:  "srv",
		Symbol:  "a",
		Indent:  "\t",
		Line:    0,
		Count:   1,
		Digest:  utils.CalculateChecksum([]byte("A")),
		Symbols: []string{"a"},
	}, records[0])
}

func TestRestoreReattachesSeries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "client.txt", "\tA\nrest\n")

	repo := repository.New(root)
	snapshot := map[string][]state.SeriesRecord{
		"client.txt": {{
			Server:  "srv",
			Symbol:  "a",
			Indent:  "\t",
			Line:    0,
			Count:   1,
			Digest:  utils.CalculateChecksum([]byte("\tA")),
			Symbols: []string{"a"},
		}},
	}
	require.NoError(t, repo.Restore(snapshot))

	src, ok := repo.Lookup("client.txt")
	require.True(t, ok)
	require.Len(t, src.Series(), 1)
	assert.Equal(t, "a", src.Series()[0].Directive.Symbol)

	// Round trip: dump reproduces the snapshot
	assert.Equal(t, snapshot, repo.Dump())
}

func TestRestoreSkipsVanishedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "present.txt", "A\n")

	repo := repository.New(root)
	snapshot := map[string][]state.SeriesRecord{
		"present.txt": {{Server: "srv", Symbol: "a", Line: 0, Count: 1, Symbols: []string{"a"}}},
		"gone.txt":    {{Server: "srv", Symbol: "b", Line: 0, Count: 1, Symbols: []string{"b"}}},
	}
	require.NoError(t, repo.Restore(snapshot))

	_, ok := repo.Lookup("present.txt")
	assert.True(t, ok)
	_, ok = repo.Lookup("gone.txt")
	assert.False(t, ok)
}

func TestRestoreDropsStaleRanges(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "short.txt", "only line\n")

	repo := repository.New(root)
	require.NoError(t, repo.Restore(map[string][]state.SeriesRecord{
		"short.txt": {{Server: "srv", Symbol: "a", Line: 3, Count: 4, Symbols: []string{"a"}}},
	}))

	src, ok := repo.Lookup("short.txt")
	require.True(t, ok)
	assert.Empty(t, src.Series())
}

func TestRestoreRelocatesShiftedBlock(t *testing.T) {
	root := t.TempDir()
	// A line was inserted above the compiled block after the snapshot
	// was taken: the block recorded at line 1 now sits at line 2.
	writeFile(t, root, "client.txt", "inserted\nintro\n\tA\noutro\n")

	repo := repository.New(root)
	require.NoError(t, repo.Restore(map[string][]state.SeriesRecord{
		"client.txt": {{
			Server:  "srv",
			Symbol:  "a",
			Indent:  "\t",
			Line:    1,
			Count:   1,
			Digest:  utils.CalculateChecksum([]byte("\tA")),
			Symbols: []string{"a"},
		}},
	}))

	src, ok := repo.Lookup("client.txt")
	require.True(t, ok)
	require.Len(t, src.Series(), 1)
	assert.Equal(t, 2, src.Series()[0].Line)
}

func TestRestoreDropsRewrittenBlock(t *testing.T) {
	root := t.TempDir()
	// The recorded range is still in bounds but its content was replaced
	// wholesale, and the block exists nowhere else in the file.
	writeFile(t, root, "client.txt", "user wrote this\nand this\n")

	repo := repository.New(root)
	require.NoError(t, repo.Restore(map[string][]state.SeriesRecord{
		"client.txt": {{
			Server:  "srv",
			Symbol:  "a",
			Line:    0,
			Count:   1,
			Digest:  utils.CalculateChecksum([]byte("\tA")),
			Symbols: []string{"a"},
		}},
	}))

	src, ok := repo.Lookup("client.txt")
	require.True(t, ok)
	assert.Empty(t, src.Series())
}

func TestRestoreKeepsDigestlessRecordInBounds(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "client.txt", "\tA\nrest\n")

	repo := repository.New(root)
	require.NoError(t, repo.Restore(map[string][]state.SeriesRecord{
		"client.txt": {{Server: "srv", Symbol: "a", Line: 0, Count: 1, Symbols: []string{"a"}}},
	}))

	src, ok := repo.Lookup("client.txt")
	require.True(t, ok)
	require.Len(t, src.Series(), 1)
	assert.Equal(t, 0, src.Series()[0].Line)
}
