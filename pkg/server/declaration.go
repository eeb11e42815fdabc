// Package server opens server directories: it parses the stitch.toml
// declaration into a validated symbol registry and loads fragment
// payloads from the files beneath the server root.
package server

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stitch-dev/stitch/pkg/errors"
	"github.com/stitch-dev/stitch/pkg/logging"
	"github.com/stitch-dev/stitch/pkg/symbols"
)

// declarationFile mirrors the on-disk stitch.toml layout.
type declarationFile struct {
	Dependencies []string         `toml:"dependencies"`
	Symbols      []symbolDeclFile `toml:"symbols"`
}

type symbolDeclFile struct {
	Name         string   `toml:"name"`
	Path         string   `toml:"path"`
	Dependencies []string `toml:"dependencies"`
}

// LoadDeclaration reads and parses a server declaration file.
func LoadDeclaration(path string) (symbols.Declaration, error) {
	log := logging.GetLogger("server")

	data, err := os.ReadFile(path)
	if err != nil {
		return symbols.Declaration{}, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read declaration %s", path)
	}

	var file declarationFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return symbols.Declaration{}, errors.Wrapf(err, errors.ErrServerParse,
			"failed to parse declaration %s", path).WithDetail("path", path)
	}

	decl := symbols.Declaration{Dependencies: file.Dependencies}
	for _, sym := range file.Symbols {
		if sym.Name == "" {
			return symbols.Declaration{}, errors.Newf(errors.ErrServerParse,
				"declaration %s contains a symbol without a name", path).
				WithDetail("path", path)
		}
		decl.Symbols = append(decl.Symbols, symbols.SymbolDecl{
			Name:         sym.Name,
			Path:         sym.Path,
			Dependencies: sym.Dependencies,
		})
	}

	log.Debug().
		Str("path", path).
		Int("symbols", len(decl.Symbols)).
		Int("globals", len(decl.Dependencies)).
		Msg("Declaration loaded")

	return decl, nil
}
