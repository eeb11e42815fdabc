package symbols

import (
	"github.com/stitch-dev/stitch/pkg/errors"
)

// Resolve walks name's dependency graph depth-first and returns the
// symbols to materialize in post-order: every symbol appears exactly once,
// after all of its transitive dependencies, with the requested symbol
// last. A dependency edge closing back to the requested symbol fails with
// CIRCULAR_REFERENCE naming both endpoints of the closing edge.
func (r *Registry) Resolve(name string) ([]*Symbol, error) {
	root, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	w := &walker{
		root: root,
		open: map[string]bool{root.name: true},
		done: make(map[string]bool),
	}
	if err := w.visit(root); err != nil {
		return nil, err
	}
	return w.out, nil
}

// walker carries the traversal state: the ordered set of currently open
// symbols and the set already emitted.
type walker struct {
	root *Symbol
	open map[string]bool
	done map[string]bool
	out  []*Symbol
}

func (w *walker) visit(sym *Symbol) error {
	for _, dep := range sym.Dependencies() {
		if dep == w.root {
			return errors.Newf(errors.ErrCircularReference,
				"circular reference: %q depends on %q", sym.name, dep.name).
				WithDetail("symbol", sym.name).
				WithDetail("dependency", dep.name)
		}
		// A symbol already open or already emitted is a diamond, not an
		// error; it must not be visited or produced twice.
		if w.open[dep.name] || w.done[dep.name] {
			continue
		}
		w.open[dep.name] = true
		err := w.visit(dep)
		delete(w.open, dep.name)
		if err != nil {
			return err
		}
	}
	w.out = append(w.out, sym)
	w.done[sym.name] = true
	return nil
}
