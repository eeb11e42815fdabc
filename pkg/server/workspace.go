package server

import (
	"github.com/stitch-dev/stitch/pkg/errors"
	"github.com/stitch-dev/stitch/pkg/logging"
	"github.com/stitch-dev/stitch/pkg/paths"
	"github.com/stitch-dev/stitch/pkg/source"
)

// Workspace resolves server identifiers to opened servers under a common
// servers root, caching each server across directives. It implements
// source.Provider.
type Workspace struct {
	root      string
	extension string
	servers   map[string]*Server
}

// NewWorkspace creates a workspace over the given servers root.
func NewWorkspace(root, extension string) *Workspace {
	return &Workspace{
		root:      root,
		extension: extension,
		servers:   make(map[string]*Server),
	}
}

// Get opens the server for identifier, reusing an already opened one.
func (w *Workspace) Get(identifier string) (*Server, error) {
	if srv, ok := w.servers[identifier]; ok {
		return srv, nil
	}

	srv, err := Open(identifier, paths.ServerDir(w.root, identifier), w.extension)
	if err != nil {
		return nil, err
	}
	w.servers[identifier] = srv
	return srv, nil
}

// Materialize resolves symbol's dependency graph on the identified server
// and returns every resolved symbol's payload in expansion order.
func (w *Workspace) Materialize(identifier, symbol string) ([]source.Fragment, error) {
	log := logging.GetLogger("server")

	srv, err := w.Get(identifier)
	if err != nil {
		// A directive naming a server that does not exist is a missing
		// reference, same as an unknown symbol; the path error stays
		// wrapped underneath for diagnostics.
		if errors.IsErrorCode(err, errors.ErrPathNotFound) {
			return nil, errors.Wrapf(err, errors.ErrMissingSymbol,
				"unknown server %q referenced by symbol %q", identifier, symbol).
				WithDetail("server", identifier).
				WithDetail("symbol", symbol)
		}
		return nil, err
	}

	order, err := srv.Registry().Resolve(symbol)
	if err != nil {
		return nil, err
	}

	fragments := make([]source.Fragment, 0, len(order))
	for _, sym := range order {
		lines, err := srv.Payload(sym)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, source.Fragment{Symbol: sym.Name(), Lines: lines})
	}

	log.Debug().
		Str("server", identifier).
		Str("symbol", symbol).
		Int("fragments", len(fragments)).
		Msg("Symbol materialized")

	return fragments, nil
}
