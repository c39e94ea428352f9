package produce

import (
	"fmt"

	"github.com/IllyaZhihunou/content/pkg/document"
)

// FieldSpec declares one named item of a record schema. Build specs with
// Field and OptionalField; the zero value is not usable.
type FieldSpec[T any] struct {
	name     string
	required bool
	produce  func(node document.Node, record *T) error
}

// Field declares a required item: the value node is produced with p and the
// result is written into the record by assign.
func Field[T, F any](name string, p Producer[F], assign func(record *T, item Item[F])) FieldSpec[T] {
	return FieldSpec[T]{
		name:     name,
		required: true,
		produce: func(node document.Node, record *T) error {
			item, err := p.Produce(node)
			if err != nil {
				return err
			}
			assign(record, item)
			return nil
		},
	}
}

// OptionalField declares an item that may be absent from the document;
// assign runs only when the item is present.
func OptionalField[T, F any](name string, p Producer[F], assign func(record *T, item Item[F])) FieldSpec[T] {
	spec := Field(name, p, assign)
	spec.required = false
	return spec
}

// Struct builds a producer that assembles a record of type T from a mapping
// node. Fields are matched by key; keys outside the declared set, repeated
// keys and missing required keys all fail production. Declaring the same
// field name twice is a schema programming error and fails construction.
func Struct[T any](fields []FieldSpec[T], validators ...Validator[T]) (Producer[T], error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := index[f.name]; dup {
			return nil, fmt.Errorf("duplicate field %q", f.name)
		}
		index[f.name] = i
	}
	return &structProducer[T]{
		fields:     fields,
		index:      index,
		validators: validators,
		key:        Scalar(String, NonEmpty),
	}, nil
}

// MustStruct is like Struct but panics on a declaration error. Schemas are
// built once at startup, so a bad declaration should stop the program before
// it looks at any document.
func MustStruct[T any](fields []FieldSpec[T], validators ...Validator[T]) Producer[T] {
	p, err := Struct(fields, validators...)
	if err != nil {
		panic(err)
	}
	return p
}

type structProducer[T any] struct {
	fields     []FieldSpec[T] // declaration order, for deterministic messages
	index      map[string]int
	validators []Validator[T]
	key        Producer[string]
}

func (p *structProducer[T]) Produce(node document.Node) (Item[T], error) {
	mapping, ok := node.(*document.Mapping)
	if !ok {
		return Item[T]{}, KindMismatch(document.KindMapping, node)
	}

	var record T
	seen := make(map[string]bool, len(p.fields))
	for _, entry := range mapping.Entries {
		keyItem, err := p.key.Produce(entry.Key)
		if err != nil {
			return Item[T]{}, err
		}
		key := keyItem.Value
		i, declared := p.index[key]
		if !declared {
			return Item[T]{}, NewViolationf(CodeSchema, entry.Key.Span(), "Item %q not expected", key)
		}
		if seen[key] {
			return Item[T]{}, NewViolationf(CodeSchema, entry.Key.Span(), "Item %q used again", key)
		}
		seen[key] = true
		if err := p.fields[i].produce(entry.Value, &record); err != nil {
			return Item[T]{}, err
		}
	}

	for _, f := range p.fields {
		if f.required && !seen[f.name] {
			return Item[T]{}, NewViolationf(CodeSchema, node.Span(), "Required item %q not specified", f.name)
		}
	}

	for _, validate := range p.validators {
		if err := validate(record, node); err != nil {
			return Item[T]{}, err
		}
	}
	return Item[T]{Value: record, Span: node.Span()}, nil
}
