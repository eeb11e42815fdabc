package update

import (
	"github.com/stitch-dev/stitch/pkg/commands"
	"github.com/stitch-dev/stitch/pkg/logging"
)

// Options defines the options for the Update command.
type Options struct {
	// ProjectRoot is the project directory holding the state file.
	ProjectRoot string
}

// Result reports what Update did.
type Result struct {
	// Updated is the number of directives re-expanded.
	Updated int
	// FilesWritten is the number of client files rewritten on disk.
	FilesWritten int
}

// Update re-expands every compiled occurrence in every tracked client
// file using current server fragment content. Files whose expansion is
// unchanged are left untouched on disk by the digest gate.
func Update(opts Options) (*Result, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Update").Msg("Executing command")

	env, err := commands.OpenEnv(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	updated := 0
	for _, src := range env.Repo.Sources() {
		n, err := env.Engine.Update(src)
		updated += n
		if err != nil {
			if _, persistErr := env.Persist(); persistErr != nil {
				log.Error().Err(persistErr).Msg("Failed to persist partial update")
			}
			return nil, err
		}
	}

	written, err := env.Persist()
	if err != nil {
		return nil, err
	}

	return &Result{Updated: updated, FilesWritten: written}, nil
}
