// Package commands hosts the shared plumbing for stitch's command
// implementations: locating the project root and assembling the engine,
// repository and state for one invocation.
package commands

import (
	"os"
	"path/filepath"

	"github.com/stitch-dev/stitch/pkg/config"
	"github.com/stitch-dev/stitch/pkg/errors"
	"github.com/stitch-dev/stitch/pkg/paths"
	"github.com/stitch-dev/stitch/pkg/repository"
	"github.com/stitch-dev/stitch/pkg/server"
	"github.com/stitch-dev/stitch/pkg/source"
	"github.com/stitch-dev/stitch/pkg/state"
)

// Env bundles everything a command invocation operates on.
type Env struct {
	ProjectRoot string
	Config      config.Config
	Engine      *source.Engine
	Repo        *repository.Repository
	Project     *state.Project
}

// FindProjectRoot walks upward from start until it finds a directory
// containing the project bookkeeping directory.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %s", start)
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, paths.ProjectDirName)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf(errors.ErrProjectNotFound,
				"no stitch project found above %s, run init first", start)
		}
		dir = parent
	}
}

// OpenEnv loads the configuration and project state for projectRoot,
// builds the expansion engine over the configured servers root, and
// restores every tracked file's series bookkeeping into the repository.
func OpenEnv(projectRoot string) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	project, err := state.Load(projectRoot)
	if err != nil {
		return nil, err
	}

	workspace := server.NewWorkspace(cfg.ServersRoot, cfg.Extension)
	engine := source.NewEngine(cfg.Marker, workspace)

	repo := repository.New(projectRoot)
	if err := repo.Restore(project.Files); err != nil {
		return nil, err
	}

	return &Env{
		ProjectRoot: projectRoot,
		Config:      cfg,
		Engine:      engine,
		Repo:        repo,
		Project:     project,
	}, nil
}

// Persist writes the repository's changed files and the refreshed project
// snapshot, returning how many client files were rewritten.
func (e *Env) Persist() (int, error) {
	written, err := e.Repo.Save(false)
	if err != nil {
		return written, err
	}

	e.Project.Files = e.Repo.Dump()
	if err := e.Project.Save(e.ProjectRoot); err != nil {
		return written, err
	}
	return written, nil
}
