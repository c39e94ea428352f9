// Package produce converts parsed document trees into typed values under
// declared schemas. A producer consumes one document node and yields one
// position-tagged value, failing on the first problem with a violation that
// points back into the source. Producers hold only configuration, never
// per-document state, so one schema instance serves any number of documents.
package produce

import "github.com/IllyaZhihunou/content/pkg/document"

// Item pairs a produced value with the source span of the node it came from.
// Items are created by producers and treated as read-only afterwards.
type Item[T any] struct {
	Value T
	Span  document.Span
}

// Producer converts one document node into one typed value. Produce either
// returns the item or the first violation found, never both.
type Producer[T any] interface {
	Produce(node document.Node) (Item[T], error)
}
