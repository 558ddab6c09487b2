package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ooiea/DataExtraction/internal/pipeline"
)

var showUnknown bool

// explainCmd shows how every attribute is inferred for a path
var explainCmd = &cobra.Command{
	Use:   "explain <path>...",
	Short: "Show the attributes inferred from one or more paths",
	Long: `Explain runs the catalog on path strings without touching the file system
and prints the value of every attribute. When several categories of one
attribute match, all of them are listed in precedence order; the first one wins.

Example:
  dataextraction explain "C:/data/BioMEMS/Bicuculline_10microM/Neuro_rat_14DIV/file.dat"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := pipeline.NewPipeline(cfg, logger)
		out := cmd.OutOrStdout()

		for i, path := range args {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, path)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, exp := range p.Explain(path, 1) {
				if exp.Value.IsUnknown() && !showUnknown {
					continue
				}
				line := fmt.Sprintf("  %s\t%s", exp.Attribute, exp.Value)
				if exp.Value.IsUnknown() {
					line = fmt.Sprintf("  %s\t-", exp.Attribute)
				}
				if len(exp.Candidates) > 1 {
					line += fmt.Sprintf("\t(matches: %s)", strings.Join(exp.Candidates, ", "))
				}
				fmt.Fprintln(tw, line)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().BoolVarP(&showUnknown, "all", "a", false, "also list attributes the path does not mention")
}
