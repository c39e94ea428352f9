package console

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// Spinner animates a progress message while a directory scan runs. It only
// draws when stdout is a terminal, so piped output stays clean.
type Spinner struct {
	inner *spinner.Spinner
}

// NewSpinner builds a spinner with the given message. On a non-TTY stdout
// the spinner is inert: Start and Stop do nothing.
func NewSpinner(message string) *Spinner {
	s := &Spinner{}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		s.inner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.inner.Suffix = " " + message
		_ = s.inner.Color("cyan")
	}
	return s
}

// Start begins the animation.
func (s *Spinner) Start() {
	if s.inner != nil {
		s.inner.Start()
	}
}

// Stop ends the animation and clears the line.
func (s *Spinner) Stop() {
	if s.inner != nil {
		s.inner.Stop()
	}
}
