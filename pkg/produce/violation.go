package produce

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IllyaZhihunou/content/pkg/document"
)

// Code classifies a violation for programmatic handling.
type Code string

const (
	// CodeKindMismatch marks a node whose shape differs from the schema:
	// a mapping where a scalar belongs and so on.
	CodeKindMismatch Code = "kind-mismatch"
	// CodeFormat marks scalar text that does not parse as the target type.
	CodeFormat Code = "format"
	// CodeSchema marks a value that parsed but breaks a declared rule.
	CodeSchema Code = "schema-violation"
	// CodeUniqueness marks a key defined more than once across a dataset.
	CodeUniqueness Code = "uniqueness-violation"
	// CodeIntegrity marks a reference to a key that is not defined anywhere.
	CodeIntegrity Code = "integrity-violation"
)

// Violation is a validation failure anchored to source positions. Spans[0]
// is the offending location; any further spans point at related context,
// such as the first definition of a duplicated key.
type Violation struct {
	Code    Code
	Message string
	Spans   []document.Span
}

func (v *Violation) Error() string {
	if len(v.Spans) == 0 {
		return v.Message
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)", v.Message, v.Spans[0])
	for _, span := range v.Spans[1:] {
		fmt.Fprintf(&sb, "; see also %s", span)
	}
	return sb.String()
}

// NewViolationf builds a violation anchored at a single span.
func NewViolationf(code Code, span document.Span, format string, args ...any) *Violation {
	return &Violation{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Spans:   []document.Span{span},
	}
}

// KindMismatch reports a node whose shape differs from what its schema
// position expects.
func KindMismatch(want document.Kind, node document.Node) *Violation {
	return NewViolationf(CodeKindMismatch, node.Span(), "%s expected", want)
}

// AsViolation extracts a Violation from an error chain.
func AsViolation(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
