// Package repository tracks the set of client files known to a project,
// orchestrates load and digest-gated save across them, and bridges the
// in-memory series bookkeeping to the persisted project snapshot.
package repository

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/stitch-dev/stitch/pkg/errors"
	"github.com/stitch-dev/stitch/pkg/logging"
	"github.com/stitch-dev/stitch/pkg/paths"
	"github.com/stitch-dev/stitch/pkg/source"
	"github.com/stitch-dev/stitch/pkg/state"
	"github.com/stitch-dev/stitch/pkg/utils"
)

// Repository owns the client files for one project root. Files are keyed
// by deflated (root-relative, slash-separated, cleaned) path so the same
// file never gets tracked twice under different textual paths.
type Repository struct {
	root    string
	files   map[string]*source.Source
	digests map[string]string
	order   []string
}

// New creates a repository over a project root.
func New(root string) *Repository {
	return &Repository{
		root:    root,
		files:   make(map[string]*source.Source),
		digests: make(map[string]string),
	}
}

// Root returns the project root.
func (r *Repository) Root() string {
	return r.root
}

// Deflate normalizes a path to the repository key form.
func (r *Repository) Deflate(path string) (string, error) {
	if filepath.IsAbs(path) {
		rel, err := filepath.Rel(r.root, path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput,
				"path %s is outside the project root", path)
		}
		path = rel
	}
	return filepath.ToSlash(filepath.Clean(path)), nil
}

// Register marks a file as tracked. A known file keeps its in-memory
// state (pending series and edits included) and only has its registered
// flag flipped back on; an unknown one is loaded fresh from disk.
func (r *Repository) Register(path string) (*source.Source, error) {
	key, err := r.Deflate(path)
	if err != nil {
		return nil, err
	}

	if existing, ok := r.files[key]; ok {
		existing.SetRegistered(true)
		return existing, nil
	}

	full := filepath.Join(r.root, filepath.FromSlash(key))
	if err := paths.RequireFile(full); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", full)
	}

	src := source.New(key, data)
	r.files[key] = src
	r.digests[key] = utils.CalculateChecksum(data)
	r.order = append(r.order, key)
	return src, nil
}

// Unregister flips a file's registered flag off without discarding its
// in-memory state, so its content remains addressable but save skips it.
func (r *Repository) Unregister(path string) error {
	key, err := r.Deflate(path)
	if err != nil {
		return err
	}
	if src, ok := r.files[key]; ok {
		src.SetRegistered(false)
	}
	return nil
}

// Lookup returns the tracked source for path, if any.
func (r *Repository) Lookup(path string) (*source.Source, bool) {
	key, err := r.Deflate(path)
	if err != nil {
		return nil, false
	}
	src, ok := r.files[key]
	return src, ok
}

// Sources returns every tracked source in registration order.
func (r *Repository) Sources() []*source.Source {
	out := make([]*source.Source, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.files[key])
	}
	return out
}

// Save rewrites every tracked file whose content digest changed since it
// was last read or written, and reports how many files were rewritten.
// Unregistered files are skipped unless all is true.
func (r *Repository) Save(all bool) (int, error) {
	log := logging.GetLogger("repository")

	written := 0
	for _, key := range r.order {
		src := r.files[key]
		if !all && !src.Registered() {
			continue
		}

		content := src.Content()
		digest := utils.CalculateChecksum(content)
		if digest == r.digests[key] {
			continue
		}

		full := filepath.Join(r.root, filepath.FromSlash(key))
		if err := os.WriteFile(full, content, 0644); err != nil {
			return written, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", full)
		}
		r.digests[key] = digest
		written++
		log.Debug().Str("file", key).Msg("File rewritten")
	}
	return written, nil
}

// Dump emits the declarative snapshot of every registered file that has
// at least one series. This is what gets persisted as the project state.
func (r *Repository) Dump() map[string][]state.SeriesRecord {
	snapshot := make(map[string][]state.SeriesRecord)
	for _, key := range r.order {
		src := r.files[key]
		if !src.Registered() || len(src.Series()) == 0 {
			continue
		}
		lines := src.Lines()
		records := make([]state.SeriesRecord, 0, len(src.Series()))
		for _, series := range src.Series() {
			records = append(records, state.SeriesRecord{
				Server:  series.Directive.Server,
				Symbol:  series.Directive.Symbol,
				Indent:  series.Directive.Indent,
				Line:    series.Line,
				Count:   series.Count,
				Digest:  blockDigest(lines[series.Line:series.End()]),
				Symbols: append([]string{}, series.Symbols...),
			})
		}
		snapshot[key] = records
	}
	return snapshot
}

// Restore loads every file named in a persisted snapshot and reattaches
// its series records. Files that vanished from disk are skipped with a
// warning rather than failing the whole pass.
func (r *Repository) Restore(snapshot map[string][]state.SeriesRecord) error {
	log := logging.GetLogger("repository")

	keys := make([]string, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		src, err := r.Register(key)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrPathNotFound) {
				log.Warn().Str("file", key).Msg("Tracked file missing from disk, skipping")
				continue
			}
			return err
		}

		series := make([]*source.Series, 0, len(snapshot[key]))
		for _, record := range snapshot[key] {
			line, ok := locateBlock(src.Lines(), record)
			if !ok {
				log.Warn().Str("file", key).
					Str("symbol", record.Symbol).
					Int("line", record.Line).
					Msg("Recorded block no longer matches file content, dropping series")
				continue
			}
			series = append(series, &source.Series{
				Directive: source.Directive{
					Server: record.Server,
					Symbol: record.Symbol,
					Indent: record.Indent,
				},
				Line:    line,
				Count:   record.Count,
				Symbols: append([]string{}, record.Symbols...),
			})
		}
		src.AttachSeries(series)
	}
	return nil
}

// locateBlock finds the line where a recorded series block currently
// sits. The recorded position is trusted only while the lines under it
// still hash to the recorded digest; when the file was edited between
// invocations the block is searched for at its new position, so the
// series follows its content instead of claiming whatever lines ended
// up in the old range.
func locateBlock(lines []string, record state.SeriesRecord) (int, bool) {
	if record.Line < 0 {
		return 0, false
	}
	if record.Count <= 0 {
		// A zero-length block owns no content to match against.
		if record.Line > len(lines) {
			return 0, false
		}
		return record.Line, true
	}
	if record.Digest == "" {
		// Records written before digests were tracked.
		if record.Line+record.Count > len(lines) {
			return 0, false
		}
		return record.Line, true
	}
	if record.Line+record.Count <= len(lines) &&
		blockDigest(lines[record.Line:record.Line+record.Count]) == record.Digest {
		return record.Line, true
	}
	for i := 0; i+record.Count <= len(lines); i++ {
		if blockDigest(lines[i:i+record.Count]) == record.Digest {
			return i, true
		}
	}
	return 0, false
}

// blockDigest hashes the lines a series owns for stale-range detection
// across invocations.
func blockDigest(lines []string) string {
	return utils.CalculateChecksum([]byte(strings.Join(lines, "\n")))
}
