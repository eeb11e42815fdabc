package decompile

import (
	"github.com/stitch-dev/stitch/pkg/commands"
	"github.com/stitch-dev/stitch/pkg/logging"
)

// Options defines the options for the Decompile command.
type Options struct {
	// ProjectRoot is the project directory holding the state file.
	ProjectRoot string
	// Files are the client files to decompile.
	Files []string
}

// Result reports what Decompile did.
type Result struct {
	// Restored is the number of directives put back in place.
	Restored int
	// FilesWritten is the number of client files rewritten on disk.
	FilesWritten int
}

// Decompile collapses every compiled occurrence in the given client
// files back to its directive line and persists the refreshed snapshot.
func Decompile(opts Options) (*Result, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Decompile").Strs("files", opts.Files).Msg("Executing command")

	env, err := commands.OpenEnv(opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	restored := 0
	for _, file := range opts.Files {
		src, err := env.Repo.Register(file)
		if err != nil {
			return nil, err
		}
		n, err := env.Engine.Decompile(src)
		restored += n
		if err != nil {
			return nil, err
		}
	}

	written, err := env.Persist()
	if err != nil {
		return nil, err
	}

	return &Result{Restored: restored, FilesWritten: written}, nil
}
