package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/IllyaZhihunou/content/pkg/console"
	"github.com/IllyaZhihunou/content/pkg/constants"
)

// WatchContent validates the content directory, then keeps re-validating it
// whenever a document, a collection directory or the config file changes.
// Runs until interrupted.
func WatchContent(contentDir string, verbose bool) error {
	if _, err := os.Stat(contentDir); err != nil {
		return fmt.Errorf("cannot watch %s: %w", contentDir, err)
	}

	// Set up file system watcher
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the content root and both collection subdirectories. A missing
	// subdirectory is not fatal here: each validation pass reports it.
	if err := watcher.Add(contentDir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", contentDir, err)
	}
	for _, sub := range []string{constants.StopsSubdir, constants.RoutesSubdir} {
		dir := filepath.Join(contentDir, sub)
		if _, statErr := os.Stat(dir); statErr != nil {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	fmt.Println(console.FormatInfoMessage(fmt.Sprintf("Watching %s for changes...", contentDir)))
	if verbose {
		fmt.Println("Press Ctrl+C to stop watching.")
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Debouncing setup
	const debounceDelay = 300 * time.Millisecond
	var debounceTimer *time.Timer

	// Initial pass so the dataset state is known before the first change.
	runValidation(contentDir, verbose)

	// Main watch loop
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}

			if !isContentEvent(event.Name) {
				continue
			}

			if verbose {
				fmt.Println(console.FormatVerboseMessage(fmt.Sprintf("Detected change: %s (%s)", event.Name, event.Op)))
			}

			// A collection directory created after startup joins the watch set.
			if event.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil && verbose {
						fmt.Println(console.FormatWarningMessage(fmt.Sprintf("Failed to watch %s: %v", event.Name, err)))
					}
				}
			}

			// Reset the debounce timer so a burst of writes validates once.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				runValidation(contentDir, verbose)
			})

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if verbose {
				fmt.Println(console.FormatWarningMessage(fmt.Sprintf("Watcher error: %v", watchErr)))
			}

		case <-sigChan:
			if verbose {
				fmt.Println(console.FormatInfoMessage("Stopping watch..."))
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil
		}
	}
}

// runValidation performs one watch-mode validation pass, reporting the
// outcome without stopping the loop.
func runValidation(contentDir string, verbose bool) {
	if err := ValidateContent(contentDir, verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// isContentEvent reports whether a filesystem change affects validation: a
// document or config file, or one of the collection directories themselves.
func isContentEvent(name string) bool {
	if strings.HasSuffix(name, constants.DocumentExtension) {
		return true
	}
	base := filepath.Base(name)
	return base == constants.StopsSubdir || base == constants.RoutesSubdir
}
