package produce

import (
	"fmt"
	"strconv"
)

// Extractor converts raw scalar text into a typed value. Extractors are
// pure: they see only the text, and the calling producer anchors any failure
// to the originating node.
type Extractor[T any] func(text string) (T, error)

// String passes the scalar text through unchanged.
func String(text string) (string, error) {
	return text, nil
}

// Float parses a decimal number, locale independent.
func Float(text string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid float number", text)
	}
	return value, nil
}

// Bool recognizes exactly the literals true and false. YAML's looser spelling
// variants (yes, on, True) are deliberately not honored: content files spell
// booleans one way.
func Bool(text string) (bool, error) {
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not a valid boolean value", text)
	}
}
