// Package state persists the per-project snapshot that ties client files
// to their compiled series, so decompile and update work across process
// restarts without re-scanning directives out of file content.
package state

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stitch-dev/stitch/pkg/errors"
	"github.com/stitch-dev/stitch/pkg/logging"
	"github.com/stitch-dev/stitch/pkg/paths"
)

// CurrentVersion is the state file format version.
const CurrentVersion = "1"

// SeriesRecord is the persisted form of one directive occurrence's
// series. The allowed field set is closed: unknown fields in a state
// file are rejected at load time.
type SeriesRecord struct {
	Server  string   `json:"server"`
	Symbol  string   `json:"symbol"`
	Indent  string   `json:"indent,omitempty"`
	Line    int      `json:"line"`
	Count   int      `json:"count"`
	Digest  string   `json:"digest,omitempty"`
	Symbols []string `json:"symbols"`
}

// Project is the full project state: a snapshot mapping client file
// paths to their series records.
type Project struct {
	Version string                    `json:"version"`
	Files   map[string][]SeriesRecord `json:"files"`
}

// NewProject creates an empty project state.
func NewProject() *Project {
	return &Project{
		Version: CurrentVersion,
		Files:   make(map[string][]SeriesRecord),
	}
}

// Exists reports whether a project state file is present under root.
func Exists(projectRoot string) bool {
	return paths.FileExists(paths.StateFile(projectRoot))
}

// Init creates an empty project state under root, failing if one exists.
func Init(projectRoot string) (*Project, error) {
	if Exists(projectRoot) {
		return nil, errors.Newf(errors.ErrProjectExists,
			"project already initialized at %s", projectRoot).
			WithDetail("path", paths.StateFile(projectRoot))
	}

	project := NewProject()
	if err := project.Save(projectRoot); err != nil {
		return nil, err
	}
	return project, nil
}

// Load reads the project state from disk. Unknown fields anywhere in the
// document are an error: the state file is machine-owned and a field this
// version does not know about means the file is not ours to rewrite.
func Load(projectRoot string) (*Project, error) {
	log := logging.GetLogger("state")

	path := paths.StateFile(projectRoot)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrProjectNotFound,
				"no project state at %s, run init first", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read state %s", path)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var project Project
	if err := decoder.Decode(&project); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStateParse,
			"failed to parse state %s", path).WithDetail("path", path)
	}
	if project.Files == nil {
		project.Files = make(map[string][]SeriesRecord)
	}

	log.Debug().Str("path", path).Int("files", len(project.Files)).Msg("Project state loaded")
	return &project, nil
}

// Save writes the project state, creating the bookkeeping directory on
// first use.
func (p *Project) Save(projectRoot string) error {
	path := paths.StateFile(projectRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(path))
	}

	if p.Version == "" {
		p.Version = CurrentVersion
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode project state")
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write state %s", path)
	}
	return nil
}
