package source

import (
	"strings"
)

// DefaultMarker is the directive marker token unless configured otherwise.
const DefaultMarker = "..."

// Directive is a single client-file line requesting a symbol expansion:
// leading whitespace, the marker token, a server identifier and a symbol
// name. The leading whitespace is semantically significant: it is
// re-applied to every non-blank line of the expanded content.
type Directive struct {
	Server string
	Symbol string
	Indent string
}

// Line renders the directive back to its canonical client-file line.
func (d Directive) Line(marker string) string {
	return d.Indent + marker + " " + d.Server + " " + d.Symbol
}

// ParseDirective recognizes a directive line. It returns false for
// anything that is not exactly marker, server and symbol separated by
// whitespace.
func ParseDirective(line, marker string) (Directive, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	fields := strings.Fields(trimmed)
	if len(fields) != 3 || fields[0] != marker {
		return Directive{}, false
	}
	return Directive{
		Server: fields[1],
		Symbol: fields[2],
		Indent: line[:len(line)-len(trimmed)],
	}, true
}
