package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"xcode-error-mcp/src/extract"
	"xcode-error-mcp/src/locator"
	"xcode-error-mcp/src/tui"
)

var flagBrowseDerivedData string

var browseCmd = &cobra.Command{
	Use:   "browse [log]",
	Short: "Browse the errors of a build log interactively",
	Long: `Browse the errors of a build log in a terminal UI.

Without an argument the most recent .xcactivitylog in DerivedData is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		root := appConfig.ResolveDerivedDataPath(flagBrowseDerivedData)
		return tui.Run(cmd.Context(), browseLoader(locator.New(), root, path))
	},
}

func init() {
	browseCmd.Flags().StringVar(&flagBrowseDerivedData, "derived-data", "", "DerivedData path to search when no log is given")
	rootCmd.AddCommand(browseCmd)
}

// browseLoader extracts path, or the newest log under root when path is
// empty.
func browseLoader(l *locator.Locator, root, path string) tui.LoadFunc {
	return func() (string, []string, error) {
		if path == "" {
			found, ok := l.FindLatest(root, time.Time{})
			if !ok {
				return "", nil, errors.New("no .xcactivitylog found")
			}
			path = found.Path
		}
		errs, err := extract.ExtractFile(path)
		return path, errs, err
	}
}
