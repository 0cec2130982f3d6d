package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xcode-error-mcp/src/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract <log>",
	Short: "Print the errors in an .xcactivitylog, one per line",
	Long: `Print the errors in a build log, one per line.

The log may be gzip or zlib compressed. Exits 1 when any error is found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		errs, err := extract.ExtractFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range errs {
			fmt.Fprintln(out, e)
		}
		if len(errs) > 0 {
			return errReported
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
