// Package source represents one client file as an ordered line sequence
// plus the series bookkeeping that makes compile, decompile and update
// reversible and idempotent.
package source

import (
	"strings"
)

// Source is one client file's in-memory representation.
type Source struct {
	path       string
	lines      []string
	series     []*Series
	registered bool
	noFinalEOL bool
}

// New creates a Source from on-disk content. Line splitting preserves the
// original trailing-newline state so Content round-trips byte-identical.
func New(path string, content []byte) *Source {
	text := string(content)
	src := &Source{path: path, registered: true}
	if text == "" {
		return src
	}
	src.noFinalEOL = !strings.HasSuffix(text, "\n")
	src.lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return src
}

// Path returns the repository-relative path.
func (s *Source) Path() string {
	return s.path
}

// Lines returns the current line sequence.
func (s *Source) Lines() []string {
	return s.lines
}

// Content renders the current lines back to file content.
func (s *Source) Content() []byte {
	if len(s.lines) == 0 {
		return []byte{}
	}
	text := strings.Join(s.lines, "\n")
	if !s.noFinalEOL {
		text += "\n"
	}
	return []byte(text)
}

// Series returns the active series records in file order.
func (s *Source) Series() []*Series {
	return s.series
}

// Registered reports whether the file is currently tracked for save.
func (s *Source) Registered() bool {
	return s.registered
}

// SetRegistered flips the tracked flag without touching content or series.
func (s *Source) SetRegistered(registered bool) {
	s.registered = registered
}

// AttachSeries restores series bookkeeping recorded in a persisted
// snapshot. Records whose line ranges no longer fit the file are dropped:
// the content on disk is the only truth left for them.
func (s *Source) AttachSeries(series []*Series) {
	s.series = nil
	for _, record := range series {
		if record.Line < 0 || record.End() > len(s.lines) {
			continue
		}
		s.series = append(s.series, record)
	}
}

// owned reports whether a line index is inside any active series block.
func (s *Source) owned(line int) bool {
	for _, series := range s.series {
		if series.Owns(line) {
			return true
		}
	}
	return false
}

// splice replaces count lines starting at index with replacement lines
// and shifts the recorded offsets of every series past the range.
func (s *Source) splice(index, count int, replacement []string) {
	updated := make([]string, 0, len(s.lines)-count+len(replacement))
	updated = append(updated, s.lines[:index]...)
	updated = append(updated, replacement...)
	updated = append(updated, s.lines[index+count:]...)
	s.lines = updated

	delta := len(replacement) - count
	if delta == 0 {
		return
	}
	for _, series := range s.series {
		if series.Line > index {
			series.Line += delta
		}
	}
}

// addSeries records a new series for a just-spliced block.
func (s *Source) addSeries(series *Series) {
	s.series = append(s.series, series)
}

// removeSeries drops a series record.
func (s *Source) removeSeries(target *Series) {
	kept := s.series[:0]
	for _, series := range s.series {
		if series != target {
			kept = append(kept, series)
		}
	}
	s.series = kept
}
