package produce

import "github.com/IllyaZhihunou/content/pkg/document"

// List builds a producer over sequence nodes: every child is produced with
// inner, in order, and the first failing child aborts the whole list.
// Validators, when given, run against the completed slice.
func List[T any](inner Producer[T], validators ...Validator[[]Item[T]]) Producer[[]Item[T]] {
	return &listProducer[T]{inner: inner, validators: validators}
}

type listProducer[T any] struct {
	inner      Producer[T]
	validators []Validator[[]Item[T]]
}

func (p *listProducer[T]) Produce(node document.Node) (Item[[]Item[T]], error) {
	seq, ok := node.(*document.Sequence)
	if !ok {
		return Item[[]Item[T]]{}, KindMismatch(document.KindSequence, node)
	}
	items := make([]Item[T], 0, len(seq.Items))
	for _, child := range seq.Items {
		item, err := p.inner.Produce(child)
		if err != nil {
			return Item[[]Item[T]]{}, err
		}
		items = append(items, item)
	}
	for _, validate := range p.validators {
		if err := validate(items, node); err != nil {
			return Item[[]Item[T]]{}, err
		}
	}
	return Item[[]Item[T]]{Value: items, Span: node.Span()}, nil
}
