package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/stitch-dev/stitch/pkg/commands/status"
	"github.com/stitch-dev/stitch/pkg/config"
)

// Enabled reports whether styled output should be produced: stdout must
// be a terminal and the profile must support color. The configured color
// switch is applied on top by the caller.
func Enabled() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Renderer produces user-facing command output, styled or plain.
type Renderer struct {
	color bool
}

// Default creates a renderer honoring the configured color switch. A
// broken configuration degrades to plain output rather than failing.
func Default() *Renderer {
	cfg, err := config.Load()
	if err != nil {
		return NewRenderer(false)
	}
	return NewRenderer(cfg.Color)
}

// NewRenderer creates a renderer; color requests styled output, which is
// still suppressed when stdout is not a capable terminal.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color && Enabled()}
}

// Success renders a success line.
func (r *Renderer) Success(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if !r.color {
		return msg
	}
	return pterm.Success.Prefix.Text + " " + SuccessStyle.Render(msg)
}

// Error renders an error line.
func (r *Renderer) Error(err error) string {
	msg := err.Error()
	if !r.color {
		return msg
	}
	return pterm.Error.Prefix.Text + " " + ErrorStyle.Render(msg)
}

// Report renders a status report as text.
func (r *Renderer) Report(report *status.Report) string {
	var b strings.Builder

	title := fmt.Sprintf("Project %s", report.ProjectRoot)
	if r.color {
		title = TitleStyle.Render(title)
	}
	b.WriteString(title + "\n")

	if len(report.Files) == 0 {
		line := "No tracked files"
		if r.color {
			line = MutedStyle.Render(line)
		}
		b.WriteString(line + "\n")
		return b.String()
	}

	for _, file := range report.Files {
		path := file.Path
		if r.color {
			path = NormalStyle.Render(path)
		}
		detail := fmt.Sprintf("%d directive(s), %d line(s), symbols: %s",
			file.Directives, file.LinesOwned, strings.Join(file.Symbols, ", "))
		if file.Directives == 0 {
			detail = "no compiled directives"
		}
		if r.color {
			detail = MutedStyle.Render(detail)
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", path, detail))
	}
	return b.String()
}
