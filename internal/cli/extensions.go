package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ooiea/DataExtraction/internal/pipeline"
)

// extensionsCmd lists the file types present on a share
var extensionsCmd = &cobra.Command{
	Use:   "extensions <dir>",
	Short: "List the distinct file extensions under a directory",
	Long: `Extensions walks a directory tree without filtering and counts the files
per extension, to decide which formats are worth cataloging.

Example:
  dataextraction extensions /mnt/share`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		walker := pipeline.NewWalker(logger.Named("walk"), nil, cfg.Scan.FollowSymlinks)

		records, err := walker.Walk(cmd.Context(), args[0], nil)
		if err != nil {
			return fmt.Errorf("walk failed: %w", err)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "EXTENSION\tFILES\tSIZE")
		for _, ext := range pipeline.Extensions(records) {
			name := ext.Extension
			if name == "" {
				name = "(none)"
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\n", name, ext.Count, humanize.IBytes(uint64(ext.Bytes)))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(extensionsCmd)
}
