package status

import (
	"sort"

	"github.com/stitch-dev/stitch/pkg/commands"
	"github.com/stitch-dev/stitch/pkg/logging"
	"github.com/stitch-dev/stitch/pkg/utils"
)

// Options defines the options for the Status command.
type Options struct {
	// ProjectRoot is the project directory holding the state file.
	ProjectRoot string
}

// FileStatus describes one tracked client file.
type FileStatus struct {
	Path       string   `json:"path" yaml:"path"`
	Directives int      `json:"directives" yaml:"directives"`
	LinesOwned int      `json:"lines_owned" yaml:"lines_owned"`
	Symbols    []string `json:"symbols" yaml:"symbols"`
	Digest     string   `json:"digest" yaml:"digest"`
}

// Report is the full project status.
type Report struct {
	ProjectRoot string       `json:"project_root" yaml:"project_root"`
	ServersRoot string       `json:"servers_root" yaml:"servers_root"`
	Files       []FileStatus `json:"files" yaml:"files"`
}

// Status summarizes every tracked client file: how many directives are
// compiled, which symbols they expanded, and the current content digest.
func Status(opts Options) (*Report, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Status").Msg("Executing command")

	env, err := commands.OpenEnv(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ProjectRoot: env.ProjectRoot,
		ServersRoot: env.Config.ServersRoot,
	}

	for _, src := range env.Repo.Sources() {
		status := FileStatus{
			Path:   src.Path(),
			Digest: utils.CalculateChecksum(src.Content()),
		}

		seen := make(map[string]bool)
		for _, series := range src.Series() {
			status.Directives++
			status.LinesOwned += series.Count
			for _, name := range series.Symbols {
				if !seen[name] {
					seen[name] = true
					status.Symbols = append(status.Symbols, name)
				}
			}
		}
		report.Files = append(report.Files, status)
	}

	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	})
	return report, nil
}
