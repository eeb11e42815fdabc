package style_test

import (
	"errors"
	"testing"

	"github.com/stitch-dev/stitch/pkg/commands/status"
	"github.com/stitch-dev/stitch/pkg/style"
	"github.com/stretchr/testify/assert"
)

// Output in tests is never a terminal, so rendering stays plain even
// when color is requested.

func TestSuccessPlain(t *testing.T) {
	r := style.NewRenderer(false)
	assert.Equal(t, "compiled 3 directives", r.Success("compiled %d directives", 3))
}

func TestErrorPlain(t *testing.T) {
	r := style.NewRenderer(false)
	assert.Equal(t, "boom", r.Error(errors.New("boom")))
}

func TestReportEmpty(t *testing.T) {
	r := style.NewRenderer(false)
	out := r.Report(&status.Report{ProjectRoot: "/proj"})

	assert.Contains(t, out, "/proj")
	assert.Contains(t, out, "No tracked files")
}

func TestReportFiles(t *testing.T) {
	r := style.NewRenderer(false)
	out := r.Report(&status.Report{
		ProjectRoot: "/proj",
		Files: []status.FileStatus{
			{Path: "notes.txt", Directives: 1, LinesOwned: 7, Symbols: []string{"z", "a"}},
			{Path: "plain.txt"},
		},
	})

	assert.Contains(t, out, "notes.txt")
	assert.Contains(t, out, "1 directive(s), 7 line(s), symbols: z, a")
	assert.Contains(t, out, "plain.txt")
	assert.Contains(t, out, "no compiled directives")
}
