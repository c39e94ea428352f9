package produce

import "github.com/IllyaZhihunou/content/pkg/document"

// Scalar builds a producer that converts a scalar node's text with extract
// and then runs validators in declared order, stopping at the first failure.
func Scalar[T any](extract Extractor[T], validators ...Validator[T]) Producer[T] {
	return &scalarProducer[T]{extract: extract, validators: validators}
}

type scalarProducer[T any] struct {
	extract    Extractor[T]
	validators []Validator[T]
}

func (p *scalarProducer[T]) Produce(node document.Node) (Item[T], error) {
	scalar, ok := node.(*document.Scalar)
	if !ok {
		return Item[T]{}, KindMismatch(document.KindScalar, node)
	}
	value, err := p.extract(scalar.Text)
	if err != nil {
		return Item[T]{}, NewViolationf(CodeFormat, node.Span(), "%v", err)
	}
	for _, validate := range p.validators {
		if err := validate(value, node); err != nil {
			return Item[T]{}, err
		}
	}
	return Item[T]{Value: value, Span: node.Span()}, nil
}
