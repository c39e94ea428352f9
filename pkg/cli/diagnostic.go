package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/IllyaZhihunou/content/pkg/console"
	"github.com/IllyaZhihunou/content/pkg/document"
	"github.com/IllyaZhihunou/content/pkg/produce"
)

// diagnosticError turns a validation failure into an error whose message is
// the fully rendered diagnostic. Failures without positions (unparseable
// documents, missing directories, empty datasets) pass through untouched.
func diagnosticError(err error) error {
	violation, ok := produce.AsViolation(err)
	if !ok || len(violation.Spans) == 0 {
		return err
	}
	return errors.New(console.FormatError(violationDiagnostic(violation)))
}

// violationDiagnostic maps a violation onto the console diagnostic model:
// 1-based positions, context lines read back from the offending file, and
// the first-definition hint for duplicated keys.
func violationDiagnostic(v *produce.Violation) console.Diagnostic {
	span := v.Spans[0]
	d := console.Diagnostic{
		Position: console.Position{
			File:      span.File,
			Line:      span.Start.Line + 1,
			Column:    span.Start.Column + 1,
			EndLine:   span.End.Line + 1,
			EndColumn: span.End.Column + 1,
		},
		Type:    "error",
		Message: v.Message,
		Context: contextLines(span),
	}
	if len(v.Spans) > 1 {
		d.Hint = fmt.Sprintf("first defined at %s", v.Spans[1])
	}
	return d
}

// contextLines reads the offending line and its neighbours for the
// diagnostic body. The renderer centers the window on the marked line, so
// when that line opens the file an empty row pads the window from above.
// Spans of in-memory documents have no file to read and get no context.
func contextLines(span document.Span) []string {
	data, err := os.ReadFile(span.File)
	if err != nil {
		return nil
	}

	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	mark := span.Start.Line
	if mark < 0 || mark >= len(lines) {
		return nil
	}

	context := make([]string, 0, 3)
	if mark == 0 {
		context = append(context, "")
	} else {
		context = append(context, lines[mark-1])
	}
	context = append(context, lines[mark])
	if mark+1 < len(lines) {
		context = append(context, lines[mark+1])
	}
	return context
}
