// Package cli implements the contentcheck commands. Each exported function
// backs one cobra command: one-shot validation, continuous watching, and
// dataset statistics.
package cli

import (
	"fmt"

	"github.com/IllyaZhihunou/content/pkg/config"
	"github.com/IllyaZhihunou/content/pkg/console"
	"github.com/IllyaZhihunou/content/pkg/transit"
)

// ValidateContent runs one validation pass over the content directory.
// Success prints a single confirmation line to stdout; any problem is
// returned as an error carrying the rendered diagnostic.
func ValidateContent(contentDir string, verbose bool) error {
	content, err := loadContent(contentDir, verbose)
	if err == nil {
		err = transit.Validate(content)
	}
	if err != nil {
		return diagnosticError(err)
	}

	if verbose {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("Validated %d stops and %d routes", len(content.Stops), len(content.Routes))))
	}
	fmt.Println(console.FormatSuccessMessage("Content is valid."))
	return nil
}

// loadContent reads the dataset settings and produces every record under
// contentDir.
func loadContent(contentDir string, verbose bool) (*transit.Content, error) {
	cfg, err := config.Load(contentDir)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Println(console.FormatVerboseMessage(fmt.Sprintf(
			"Coordinate bounds: latitude %v..%v, longitude %v..%v",
			cfg.Bounds.Latitude.Min, cfg.Bounds.Latitude.Max,
			cfg.Bounds.Longitude.Min, cfg.Bounds.Longitude.Max)))
	}

	schema := transit.NewSchema(cfg.Bounds)

	// Start spinner for the directory scan (only if not in verbose mode)
	spinner := console.NewSpinner(fmt.Sprintf("Validating %s...", contentDir))
	if !verbose {
		spinner.Start()
	}
	content, err := schema.LoadDir(contentDir)
	if !verbose {
		spinner.Stop()
	}
	if err != nil {
		return nil, err
	}
	return content, nil
}
