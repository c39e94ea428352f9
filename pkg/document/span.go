package document

import "fmt"

// Position is a location in a source document. Line and Column are 0-based;
// String renders them 1-based the way editors count.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line+1, p.Column+1)
}

// Span is the source range a node was read from. End is exclusive: it points
// one past the last character of the node.
type Span struct {
	File  string
	Start Position
	End   Position
}

func (s Span) String() string {
	if s.File == "" {
		return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line+1, s.Start.Column+1, s.End.Line+1, s.End.Column+1)
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", s.File, s.Start.Line+1, s.Start.Column+1, s.End.Line+1, s.End.Column+1)
}
