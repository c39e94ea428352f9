package console

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Position is a 1-based location in a source file. EndLine/EndColumn bound
// the offending range when known; EndColumn is exclusive. A zero end means
// only the start position is known.
type Position struct {
	File      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// Diagnostic is a structured validation message with position information
type Diagnostic struct {
	Position Position
	Type     string // "error", "warning", "info"
	Message  string
	Context  []string // Source code lines around the position
	Hint     string   // Optional hint for fixing the problem
}

// Styles for different message types
var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	filePathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9"))

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	contextLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F8F8F2"))

	highlightStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FF5555")).
			Foreground(lipgloss.Color("#282A36"))

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#50FA7B"))
)

// isTTY checks if stdout is a terminal
func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// applyStyle conditionally applies styling based on TTY status
func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// ToRelativePath converts an absolute path to a relative path from the current working directory
func ToRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}

	wd, err := os.Getwd()
	if err != nil {
		// If we can't get the working directory, return the original path
		return path
	}

	relPath, err := filepath.Rel(wd, path)
	if err != nil {
		// If we can't get a relative path, return the original path
		return path
	}

	return relPath
}

// FormatError formats a Diagnostic with Rust-like rendering
func FormatError(d Diagnostic) string {
	var output strings.Builder

	// Get style based on message type
	var typeStyle lipgloss.Style
	var prefix string
	switch d.Type {
	case "warning":
		typeStyle = warningStyle
		prefix = "warning"
	case "info":
		typeStyle = infoStyle
		prefix = "info"
	default:
		typeStyle = errorStyle
		prefix = "error"
	}

	// IDE-parseable format: file:line:column: type: message
	if d.Position.File != "" {
		relativePath := ToRelativePath(d.Position.File)
		location := fmt.Sprintf("%s:%d:%d:",
			relativePath,
			d.Position.Line,
			d.Position.Column)
		output.WriteString(applyStyle(filePathStyle, location))
		output.WriteString(" ")
	}

	// Message type and text
	output.WriteString(applyStyle(typeStyle, prefix+":"))
	output.WriteString(" ")
	output.WriteString(d.Message)
	output.WriteString("\n")

	// Context lines (Rust-like error rendering)
	if len(d.Context) > 0 && d.Position.Line > 0 {
		output.WriteString(renderContext(d))
	}

	// Optional hint
	if d.Hint != "" {
		output.WriteString("\n")
		output.WriteString(applyStyle(hintStyle, "hint: "))
		output.WriteString(d.Hint)
		output.WriteString("\n")
	}

	return output.String()
}

// renderContext renders source code context with line numbers and highlighting
func renderContext(d Diagnostic) string {
	var output strings.Builder

	// Calculate line number width for padding
	maxLineNum := d.Position.Line + len(d.Context)/2
	lineNumWidth := len(fmt.Sprintf("%d", maxLineNum))

	for i, line := range d.Context {
		// Calculate actual line number (context centers around the position)
		lineNum := d.Position.Line - len(d.Context)/2 + i
		if lineNum < 1 {
			continue
		}

		// Format line number with proper padding
		lineNumStr := fmt.Sprintf("%*d", lineNumWidth, lineNum)
		output.WriteString(applyStyle(lineNumberStyle, lineNumStr))
		output.WriteString(" | ")

		if lineNum == d.Position.Line {
			output.WriteString(renderMarkedLine(line, d.Position))
		} else {
			output.WriteString(applyStyle(contextLineStyle, line))
		}
		output.WriteString("\n")

		// Add pointer run under the marked range
		if lineNum == d.Position.Line && d.Position.Column > 0 {
			padding := strings.Repeat(" ", lineNumWidth+3+d.Position.Column-1)
			pointer := applyStyle(errorStyle, strings.Repeat("^", markWidth(line, d.Position)))
			output.WriteString(padding)
			output.WriteString(pointer)
			output.WriteString("\n")
		}
	}

	return output.String()
}

// renderMarkedLine highlights the offending range of the line the position
// points into. Columns count characters, so the line is sliced by runes.
func renderMarkedLine(line string, pos Position) string {
	runes := []rune(line)
	if pos.Column <= 0 || pos.Column > len(runes) {
		return applyStyle(highlightStyle, line)
	}

	start := pos.Column - 1
	end := start + markWidth(line, pos)

	var output strings.Builder
	output.WriteString(applyStyle(contextLineStyle, string(runes[:start])))
	output.WriteString(applyStyle(highlightStyle, string(runes[start:end])))
	output.WriteString(applyStyle(contextLineStyle, string(runes[end:])))
	return output.String()
}

// markWidth is the number of characters to mark on the position's first
// line: through EndColumn when the range ends on the same line, to the end
// of the line when it continues past it, and a single character otherwise.
func markWidth(line string, pos Position) int {
	runes := []rune(line)
	width := 1
	switch {
	case pos.EndLine == pos.Line && pos.EndColumn > pos.Column:
		width = pos.EndColumn - pos.Column
	case pos.EndLine > pos.Line:
		width = len(runes) - pos.Column + 1
	}
	if limit := len(runes) - pos.Column + 1; width > limit {
		width = limit
	}
	if width < 1 {
		width = 1
	}
	return width
}

// FormatSuccessMessage formats a success message with styling
func FormatSuccessMessage(message string) string {
	successStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#50FA7B"))

	return applyStyle(successStyle, "✓ ") + message
}

// FormatInfoMessage formats an informational message
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

// FormatWarningMessage formats a warning message
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatErrorMessage formats a simple error message (for stderr output)
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// FormatVerboseMessage formats verbose progress output
func FormatVerboseMessage(message string) string {
	verboseStyle := lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#6272A4"))

	return applyStyle(verboseStyle, "🔍 ") + message
}
