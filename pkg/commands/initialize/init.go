package initialize

import (
	"github.com/stitch-dev/stitch/pkg/logging"
	"github.com/stitch-dev/stitch/pkg/paths"
	"github.com/stitch-dev/stitch/pkg/state"
)

// Options defines the options for the Init command.
type Options struct {
	// ProjectRoot is where the project bookkeeping directory is created.
	ProjectRoot string
}

// Result reports what Init created.
type Result struct {
	StatePath string
}

// Init creates an empty project state, failing when one already exists.
func Init(opts Options) (*Result, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Init").Str("root", opts.ProjectRoot).Msg("Executing command")

	if _, err := state.Init(opts.ProjectRoot); err != nil {
		return nil, err
	}

	return &Result{StatePath: paths.StateFile(opts.ProjectRoot)}, nil
}
