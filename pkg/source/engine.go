package source

import (
	"sort"
	"strings"

	"github.com/stitch-dev/stitch/pkg/logging"
)

// Fragment is one resolved symbol's payload: the symbol name and its
// backing file content as lines. An aggregator symbol with no backing
// file contributes an empty line slice.
type Fragment struct {
	Symbol string
	Lines  []string
}

// Provider materializes a server+symbol reference into the ordered
// fragment sequence produced by dependency resolution.
type Provider interface {
	Materialize(server, symbol string) ([]Fragment, error)
}

// Engine performs the compile, decompile and update transformations on a
// Source. All three are loss-less for content outside series-owned line
// ranges and idempotent across repeated runs.
type Engine struct {
	Marker   string
	Provider Provider
}

// NewEngine creates an engine with the given directive marker.
func NewEngine(marker string, provider Provider) *Engine {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Engine{Marker: marker, Provider: provider}
}

// Compile expands every uncompiled directive in src, recording a series
// per occurrence. Lines inside already-compiled blocks are never scanned,
// so re-running compile is a no-op. Returns the number of directives
// expanded. On error, splices already applied in this pass remain.
func (e *Engine) Compile(src *Source) (int, error) {
	log := logging.GetLogger("source")

	compiled := 0
	for i := 0; i < len(src.lines); {
		if src.owned(i) {
			i++
			continue
		}
		directive, ok := ParseDirective(src.lines[i], e.Marker)
		if !ok {
			i++
			continue
		}

		fragments, err := e.Provider.Materialize(directive.Server, directive.Symbol)
		if err != nil {
			return compiled, err
		}

		block := renderBlock(fragments, directive.Indent)
		src.splice(i, 1, block)
		src.addSeries(&Series{
			Directive: directive,
			Line:      i,
			Count:     len(block),
			Symbols:   fragmentNames(fragments),
		})
		log.Debug().
			Str("file", src.path).
			Str("server", directive.Server).
			Str("symbol", directive.Symbol).
			Int("lines", len(block)).
			Msg("Directive compiled")

		compiled++
		i += len(block)
	}
	return compiled, nil
}

// Decompile collapses every compiled occurrence back to its directive
// line. Whatever currently occupies the owned range is discarded: the
// server is the source of truth for expanded content, so in-block edits
// are lost here while everything outside the ranges stays untouched.
func (e *Engine) Decompile(src *Source) (int, error) {
	log := logging.GetLogger("source")

	series := make([]*Series, len(src.series))
	copy(series, src.series)
	sort.Slice(series, func(i, j int) bool { return series[i].Line < series[j].Line })

	for _, record := range series {
		src.splice(record.Line, record.Count, []string{record.Directive.Line(e.Marker)})
		src.removeSeries(record)
		log.Debug().
			Str("file", src.path).
			Str("symbol", record.Directive.Symbol).
			Msg("Directive restored")
	}
	return len(series), nil
}

// Update re-expands every compiled occurrence using current fragment
// content: decompile immediately followed by compile. Files without
// directives come out byte-identical.
func (e *Engine) Update(src *Source) (int, error) {
	if _, err := e.Decompile(src); err != nil {
		return 0, err
	}
	return e.Compile(src)
}

// renderBlock concatenates non-empty fragment payloads in resolved order
// with one blank separator line between blocks, prefixing every non-blank
// line with the directive's indentation.
func renderBlock(fragments []Fragment, indent string) []string {
	var block []string
	for _, fragment := range fragments {
		if len(fragment.Lines) == 0 {
			continue
		}
		if len(block) > 0 {
			block = append(block, "")
		}
		for _, line := range fragment.Lines {
			if strings.TrimSpace(line) == "" {
				block = append(block, line)
				continue
			}
			block = append(block, indent+line)
		}
	}
	return block
}

func fragmentNames(fragments []Fragment) []string {
	names := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		names = append(names, fragment.Symbol)
	}
	return names
}
