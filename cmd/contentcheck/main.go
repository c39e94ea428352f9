package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IllyaZhihunou/content/pkg/cli"
	"github.com/IllyaZhihunou/content/pkg/console"
	"github.com/IllyaZhihunou/content/pkg/constants"
)

// Build-time variables set by GoReleaser
var (
	version = "dev"
)

// Global flags
var (
	verbose    bool
	contentDir string
)

var rootCmd = &cobra.Command{
	Use:   constants.CLIName,
	Short: "Validate transit content directories",
	Long: `contentcheck validates a directory of YAML documents describing a
public-transit network: stop definitions under stops/ and route definitions
under routes/.

Every document is checked against the content schema, and the dataset as a
whole is checked for duplicate stop keys, routes referring to undeclared
stops, and empty collections. The first problem found is reported with the
file, line and column it came from.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.ValidateContent(contentDir, verbose); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the content directory once",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.ValidateContent(contentDir, verbose); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate whenever the content directory changes",
	Long: `Watch the content directory and re-run validation on every change to a
document, a collection directory or the config file. Runs until interrupted
with Ctrl+C.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.WatchContent(contentDir, verbose); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset statistics for a valid content directory",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.ShowStats(contentDir, verbose); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("%s version %s", constants.CLIName, version)))
	},
}

func init() {
	// Global flags shared by every command
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output showing detailed information")
	rootCmd.PersistentFlags().StringVarP(&contentDir, "content", "C", ".", "Content directory to validate")

	// Add all commands to root
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
