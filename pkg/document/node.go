package document

// Kind discriminates the three node shapes a document tree is built from.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindSequence:
		return "Sequence"
	case KindMapping:
		return "Mapping"
	default:
		return "Unknown"
	}
}

// Node is one element of a parsed document tree. Nodes are built by Parse and
// never mutated afterwards.
type Node interface {
	Kind() Kind
	Span() Span
}

// Scalar is a leaf node carrying the raw scalar text. Type interpretation is
// left to the consumer: numbers, booleans and times all arrive as text.
type Scalar struct {
	Text string
	span Span
}

// NewScalar builds a scalar node. Parse is the normal way to obtain nodes;
// the constructor exists for tests and synthetic trees.
func NewScalar(text string, span Span) *Scalar {
	return &Scalar{Text: text, span: span}
}

func (s *Scalar) Kind() Kind { return KindScalar }
func (s *Scalar) Span() Span { return s.span }

// Sequence is an ordered list of child nodes.
type Sequence struct {
	Items []Node
	span  Span
}

// NewSequence builds a sequence node over the given items.
func NewSequence(items []Node, span Span) *Sequence {
	return &Sequence{Items: items, span: span}
}

func (s *Sequence) Kind() Kind { return KindSequence }
func (s *Sequence) Span() Span { return s.span }

// Entry is one key/value pair of a mapping, in document order.
type Entry struct {
	Key   Node
	Value Node
}

// Mapping is a collection of key/value entries, kept in document order so
// diagnostics are deterministic.
type Mapping struct {
	Entries []Entry
	span    Span
}

// NewMapping builds a mapping node over the given entries.
func NewMapping(entries []Entry, span Span) *Mapping {
	return &Mapping{Entries: entries, span: span}
}

func (m *Mapping) Kind() Kind { return KindMapping }
func (m *Mapping) Span() Span { return m.span }
