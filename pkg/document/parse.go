package document

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

// FormatError reports a document that could not be parsed at all. Parse
// failures happen before any node exists, so the error carries no span.
type FormatError struct {
	Name string // source identifier, usually a file path
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("YAML parsing error in %s: %v", e.Name, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Parse reads one YAML document from data and converts it into a Node tree.
// Every node keeps the source range it was read from; name identifies the
// source in spans and error messages. Multi-document streams and empty
// inputs are format errors.
func Parse(name string, data []byte) (Node, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, &FormatError{Name: name, Err: err}
	}
	if len(file.Docs) == 0 || file.Docs[0] == nil || file.Docs[0].Body == nil {
		return nil, &FormatError{Name: name, Err: fmt.Errorf("document is empty")}
	}
	if len(file.Docs) > 1 {
		return nil, &FormatError{Name: name, Err: fmt.Errorf("expected a single document, found %d", len(file.Docs))}
	}

	conv := &converter{name: name, anchors: make(map[string]Node)}
	return conv.node(file.Docs[0].Body)
}

// converter walks a goccy AST and builds the Node tree, resolving anchors
// and aliases along the way. Anchor scope is one document, like the
// underlying YAML composer.
type converter struct {
	name    string
	anchors map[string]Node
}

func (c *converter) node(n ast.Node) (Node, error) {
	switch n := n.(type) {
	case *ast.DocumentNode:
		return c.node(n.Body)
	case *ast.StringNode:
		return NewScalar(n.Value, c.tokenSpan(n.GetToken())), nil
	case *ast.LiteralNode:
		return c.literal(n)
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode, *ast.MergeKeyNode:
		// Scalars keep their raw text; typed interpretation happens in the
		// producing layer where a failure can be reported with a span.
		tok := n.GetToken()
		return NewScalar(tok.Value, c.tokenSpan(tok)), nil
	case *ast.NullNode:
		span := c.tokenSpan(n.GetToken())
		span.End = span.Start
		return NewScalar("", span), nil
	case *ast.SequenceNode:
		return c.sequence(n)
	case *ast.MappingNode:
		return c.mapping(n.Values, n.GetToken())
	case *ast.MappingValueNode:
		// A single key/value pair parses as a bare MappingValueNode rather
		// than a MappingNode wrapping one entry.
		return c.mapping([]*ast.MappingValueNode{n}, n.GetToken())
	case *ast.MappingKeyNode:
		return c.node(n.Value)
	case *ast.TagNode:
		return c.node(n.Value)
	case *ast.AnchorNode:
		return c.anchor(n)
	case *ast.AliasNode:
		return c.alias(n)
	default:
		return nil, &FormatError{Name: c.name, Err: fmt.Errorf("unsupported node at %s: %T", c.tokenSpan(n.GetToken()), n)}
	}
}

func (c *converter) literal(n *ast.LiteralNode) (Node, error) {
	var text string
	if n.Value != nil {
		text = n.Value.Value
	}
	tok := n.GetToken()
	if n.Value != nil && n.Value.GetToken() != nil {
		// Anchor the span at the block content, not the |/> indicator.
		tok = n.Value.GetToken()
	}
	start := tokenStart(tok)
	return NewScalar(text, Span{File: c.name, Start: start, End: advance(start, text)}), nil
}

func (c *converter) sequence(n *ast.SequenceNode) (Node, error) {
	items := make([]Node, 0, len(n.Values))
	for _, v := range n.Values {
		item, err := c.node(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	span := c.tokenSpan(n.GetToken())
	if len(items) > 0 {
		span.End = items[len(items)-1].Span().End
	}
	return NewSequence(items, span), nil
}

func (c *converter) mapping(values []*ast.MappingValueNode, tok *token.Token) (Node, error) {
	entries := make([]Entry, 0, len(values))
	for _, v := range values {
		key, err := c.node(v.Key)
		if err != nil {
			return nil, err
		}
		value, err := c.node(v.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}
	span := c.tokenSpan(tok)
	if len(entries) > 0 {
		span.Start = entries[0].Key.Span().Start
		span.End = entries[len(entries)-1].Value.Span().End
	}
	return NewMapping(entries, span), nil
}

func (c *converter) anchor(n *ast.AnchorNode) (Node, error) {
	value, err := c.node(n.Value)
	if err != nil {
		return nil, err
	}
	if n.Name != nil {
		if tok := n.Name.GetToken(); tok != nil {
			c.anchors[tok.Value] = value
		}
	}
	return value, nil
}

func (c *converter) alias(n *ast.AliasNode) (Node, error) {
	var name string
	if n.Value != nil {
		if tok := n.Value.GetToken(); tok != nil {
			name = tok.Value
		}
	}
	value, ok := c.anchors[name]
	if !ok {
		return nil, &FormatError{Name: c.name, Err: fmt.Errorf("undefined alias %q at %s", name, c.tokenSpan(n.GetToken()))}
	}
	return value, nil
}

// tokenSpan converts a goccy token into a span: 0-based start taken from the
// token position, end advanced over the token text.
func (c *converter) tokenSpan(tok *token.Token) Span {
	if tok == nil {
		return Span{File: c.name}
	}
	start := tokenStart(tok)
	return Span{File: c.name, Start: start, End: advance(start, tok.Value)}
}

func tokenStart(tok *token.Token) Position {
	return Position{Line: tok.Position.Line - 1, Column: tok.Position.Column - 1}
}

// advance moves start forward over text, counting runes so that positions
// stay in character units regardless of encoding width.
func advance(start Position, text string) Position {
	end := start
	for _, r := range text {
		if r == '\n' {
			end.Line++
			end.Column = 0
		} else {
			end.Column++
		}
	}
	return end
}
