package compile

import (
	"github.com/stitch-dev/stitch/pkg/commands"
	"github.com/stitch-dev/stitch/pkg/logging"
)

// Options defines the options for the Compile command.
type Options struct {
	// ProjectRoot is the project directory holding the state file.
	ProjectRoot string
	// Files are the client files to compile, project-relative or absolute.
	Files []string
}

// Result reports what Compile did.
type Result struct {
	// Compiled is the number of directives expanded.
	Compiled int
	// FilesWritten is the number of client files rewritten on disk.
	FilesWritten int
}

// Compile expands every uncompiled directive in the given client files
// and persists the refreshed project snapshot.
func Compile(opts Options) (*Result, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Compile").Strs("files", opts.Files).Msg("Executing command")

	env, err := commands.OpenEnv(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	compiled := 0
	for _, file := range opts.Files {
		src, err := env.Repo.Register(file)
		if err != nil {
			return nil, err
		}
		n, err := env.Engine.Compile(src)
		compiled += n
		if err != nil {
			// Occurrences are applied independently: splices that
			// succeeded before the failing directive stay applied.
			if _, persistErr := env.Persist(); persistErr != nil {
				log.Error().Err(persistErr).Msg("Failed to persist partial compile")
			}
			return nil, err
		}
	}

	written, err := env.Persist()
	if err != nil {
		return nil, err
	}

	return &Result{Compiled: compiled, FilesWritten: written}, nil
}
