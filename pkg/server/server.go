package server

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/stitch-dev/stitch/pkg/errors"
	"github.com/stitch-dev/stitch/pkg/paths"
	"github.com/stitch-dev/stitch/pkg/symbols"
)

// Server is one opened server directory: its root, its validated symbol
// registry, and the extension convention used to probe fragment files.
type Server struct {
	identifier string
	root       string
	extension  string
	registry   *symbols.Registry
}

// Open validates the server directory, parses its declaration and builds
// the symbol registry. A malformed declaration (including any dependency
// cycle) is rejected here, before any client file is touched.
func Open(identifier, root, extension string) (*Server, error) {
	if err := paths.RequireDir(root); err != nil {
		return nil, err
	}

	declPath := filepath.Join(root, paths.DeclarationFileName)
	if err := paths.RequireFile(declPath); err != nil {
		return nil, err
	}

	decl, err := LoadDeclaration(declPath)
	if err != nil {
		return nil, err
	}

	registry, err := symbols.Build(decl)
	if err != nil {
		return nil, err
	}

	return &Server{
		identifier: identifier,
		root:       root,
		extension:  extension,
		registry:   registry,
	}, nil
}

// Identifier returns the server identifier this server was opened as.
func (s *Server) Identifier() string {
	return s.identifier
}

// Registry exposes the validated symbol registry.
func (s *Server) Registry() *symbols.Registry {
	return s.registry
}

// Payload locates a symbol's backing file and returns its content as
// lines. Candidates are probed in order: the declared explicit path, then
// name+extension, then the bare name. A leaf symbol with no backing file
// is a malformed server (BOGUS_LEAF); an aggregator without one
// legitimately contributes no content. An existing but empty backing file
// is EMPTY_PAYLOAD.
func (s *Server) Payload(sym *symbols.Symbol) ([]string, error) {
	path, found := s.locate(sym)
	if !found {
		if sym.IsLeaf() {
			return nil, errors.Newf(errors.ErrBogusLeaf,
				"leaf symbol %q has no backing file under %s", sym.Name(), s.root).
				WithDetail("symbol", sym.Name()).
				WithDetail("server", s.identifier)
		}
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read fragment %s", path)
	}
	if len(data) == 0 {
		return nil, errors.Newf(errors.ErrEmptyPayload,
			"fragment file %s is empty", path).
			WithDetail("symbol", sym.Name()).
			WithDetail("path", path)
	}

	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), nil
}

func (s *Server) locate(sym *symbols.Symbol) (string, bool) {
	var candidates []string
	if sym.Path() != "" {
		candidates = append(candidates, filepath.Join(s.root, filepath.FromSlash(sym.Path())))
	}
	if s.extension != "" {
		candidates = append(candidates, filepath.Join(s.root, sym.Name()+s.extension))
	}
	candidates = append(candidates, filepath.Join(s.root, sym.Name()))

	for _, candidate := range candidates {
		if paths.FileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}
