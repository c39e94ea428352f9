package produce

import (
	"strconv"
	"strings"

	"github.com/IllyaZhihunou/content/pkg/document"
)

// Validator checks a value that was already extracted from node. The node is
// only used to anchor the failure position; validators never mutate state.
type Validator[T any] func(value T, node document.Node) error

// NonEmpty rejects empty strings.
func NonEmpty(value string, node document.Node) error {
	if value == "" {
		return NewViolationf(CodeSchema, node.Span(), "Non empty value required")
	}
	return nil
}

// keyAlphabet is the character set keys are drawn from: lowercase ASCII
// letters, digits and hyphen. Keys double as file-safe identifiers.
const keyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-"

// Key rejects strings with characters outside the key alphabet, reporting
// the first offender in order.
func Key(value string, node document.Node) error {
	for _, r := range value {
		if !strings.ContainsRune(keyAlphabet, r) {
			return NewViolationf(CodeSchema, node.Span(), "Invalid character %q in %q", string(r), value)
		}
	}
	return nil
}

// TimeOfDay accepts strings of the exact shape hh:mm. Minutes are 00..59;
// hours only need to parse as a non-negative integer, so departures past
// midnight can be written as 24:xx and later.
func TimeOfDay(value string, node document.Node) error {
	ok := len(value) == len("hh:mm") &&
		value[2] == ':' &&
		parsesAsNonNegativeInt(value[0:2]) &&
		parsesAsNonNegativeInt(value[3:5])
	if ok {
		minute, _ := strconv.Atoi(value[3:5])
		ok = minute <= 59
	}
	if !ok {
		return NewViolationf(CodeSchema, node.Span(), "%q is not a valid time", value)
	}
	return nil
}

func parsesAsNonNegativeInt(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0
}

// FloatRange accepts values inside the inclusive lo..hi interval.
func FloatRange(lo, hi float64) Validator[float64] {
	return func(value float64, node document.Node) error {
		if value < lo || value > hi {
			return NewViolationf(CodeSchema, node.Span(), "Value expected to be in %v..%v interval", lo, hi)
		}
		return nil
	}
}
