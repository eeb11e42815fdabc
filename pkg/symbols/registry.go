package symbols

import (
	"github.com/stitch-dev/stitch/pkg/errors"
	"github.com/stitch-dev/stitch/pkg/logging"
)

// Registry owns the name -> Symbol mapping for one server. After Build
// returns, every symbol has its dependency references wired and the whole
// graph has been validated acyclic.
type Registry struct {
	symbols map[string]*Symbol
	names   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		symbols: make(map[string]*Symbol),
	}
}

// Register returns the symbol for name, creating a bare one if it was
// never seen. A bare symbol has no declared dependencies and no explicit
// path, so it is a leaf that requires a matching fragment file.
func (r *Registry) Register(name string) *Symbol {
	if existing, ok := r.symbols[name]; ok {
		return existing
	}
	sym := &Symbol{name: name}
	r.symbols[name] = sym
	r.names = append(r.names, name)
	return sym
}

// Lookup returns the symbol for name, failing when it was never registered.
func (r *Registry) Lookup(name string) (*Symbol, error) {
	sym, ok := r.symbols[name]
	if !ok {
		return nil, errors.Newf(errors.ErrMissingSymbol, "symbol %q is not registered", name).
			WithDetail("symbol", name)
	}
	return sym, nil
}

// Names returns every registered symbol name in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Build constructs a registry from a parsed declaration. Global
// dependencies are prepended to every declared symbol's own dependency
// list, self-references are dropped, and the whole graph is walked from
// every symbol so cycles surface here rather than at first use.
func Build(decl Declaration) (*Registry, error) {
	log := logging.GetLogger("symbols")

	r := NewRegistry()
	for _, sd := range decl.Symbols {
		sym := r.Register(sd.Name)
		sym.path = sd.Path
		sym.depNames = mergeDependencies(sd.Name, decl.Dependencies, sd.Dependencies)
	}

	// Wiring may register bare symbols; they carry no dependencies of
	// their own, so a single pass over the declared set suffices.
	for _, name := range r.Names() {
		sym := r.symbols[name]
		sym.deps = make([]*Symbol, 0, len(sym.depNames))
		for _, depName := range sym.depNames {
			sym.deps = append(sym.deps, r.Register(depName))
		}
	}

	for _, name := range r.Names() {
		if _, err := r.Resolve(name); err != nil {
			return nil, err
		}
	}

	log.Debug().Int("symbols", len(r.symbols)).Msg("Registry built and validated")
	return r, nil
}

// mergeDependencies prepends the global dependency names to the symbol's
// explicit ones, dropping self-references and duplicates while keeping
// declaration order.
func mergeDependencies(self string, globals, explicit []string) []string {
	seen := make(map[string]bool, len(globals)+len(explicit))
	var merged []string
	for _, name := range append(append([]string{}, globals...), explicit...) {
		if name == self || seen[name] {
			continue
		}
		seen[name] = true
		merged = append(merged, name)
	}
	return merged
}
