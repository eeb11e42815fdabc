// Package symbols implements the symbol dependency graph: a registry of
// named fragments, their inter-symbol dependencies, and the resolver that
// produces a deterministic expansion order.
package symbols

// Symbol is a named, possibly-composite reusable fragment. A leaf symbol
// has no dependencies and must have backing content; an aggregator is
// composed only of its dependencies.
type Symbol struct {
	name     string
	path     string
	depNames []string
	deps     []*Symbol
}

// Name returns the symbol's identity.
func (s *Symbol) Name() string {
	return s.name
}

// Path returns the explicit relative path declared for the symbol, or ""
// when the backing file is located by name convention.
func (s *Symbol) Path() string {
	return s.path
}

// IsLeaf reports whether the symbol has no dependencies.
func (s *Symbol) IsLeaf() bool {
	return len(s.depNames) == 0
}

// Dependencies returns the resolved dependency symbols in declaration
// order. The slice is wired once at registry build time.
func (s *Symbol) Dependencies() []*Symbol {
	return s.deps
}

// Declaration is the parsed server declaration delivered to the registry:
// the root-level global dependency names plus per-symbol entries.
type Declaration struct {
	Dependencies []string
	Symbols      []SymbolDecl
}

// SymbolDecl is one declared symbol entry.
type SymbolDecl struct {
	Name         string
	Path         string
	Dependencies []string
}
