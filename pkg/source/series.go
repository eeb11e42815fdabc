package source

// Series ties one directive occurrence to the contiguous block of lines
// currently occupying its expansion, plus the ordered symbol names that
// were expanded. Decompile uses it to know exactly which lines to remove;
// update uses it to recompute the replacement in place.
type Series struct {
	Directive Directive
	Line      int
	Count     int
	Symbols   []string
}

// End returns the index just past the last owned line.
func (s *Series) End() int {
	return s.Line + s.Count
}

// Owns reports whether the line index falls inside the expanded block.
func (s *Series) Owns(line int) bool {
	return line >= s.Line && line < s.End()
}
