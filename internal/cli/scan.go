package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ooiea/DataExtraction/internal/model"
	"github.com/ooiea/DataExtraction/internal/pipeline"
)

var (
	outCSV         string
	extensions     []string
	copyTo         string
	where          []string
	minSizeGB      float64
	maxSizeGB      float64
	copyWorkers    int
	filesPerSecond float64
	overwrite      bool
	useCache       bool
	noColor        bool
	scanTimeout    time.Duration
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Catalog every recording under a directory",
	Long: `Scan walks a directory tree and:
- Keeps files with the configured extensions (.brw and .dat by default)
- Infers every attribute from the path
- Drops trash, failed runs, empty files and non-recordings
- Writes one CSV row per remaining recording
- Optionally copies the recordings matching --where into --copy-to

Example:
  dataextraction scan /mnt/share
  dataextraction scan /mnt/share -o catalog.csv --ext .brw --ext .bxr
  dataextraction scan /mnt/share --copy-to ./copy_test \
    --where "Drug application=Bicuculline" --where "Recording system=MEA" \
    --where "Format=.dat" --where "Drug dose=10 microM" --min-gb 1.3`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVarP(&outCSV, "out", "o", "", "output CSV path (default from config: list_of_files.csv)")
	scanCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored summary")

	// Walk flags
	scanCmd.Flags().StringSliceVar(&extensions, "ext", nil, "file extensions to catalog (repeatable, default .brw,.dat)")
	scanCmd.Flags().BoolVar(&useCache, "cache", false, "cache file stats between runs (for slow network shares)")
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 0, "overall timeout (0 = none)")

	// Copy flags
	scanCmd.Flags().StringVar(&copyTo, "copy-to", "", "copy matching recordings into this folder")
	scanCmd.Flags().StringArrayVar(&where, "where", nil, `copy condition "Attribute=Value" (repeatable, all must hold)`)
	scanCmd.Flags().Float64Var(&minSizeGB, "min-gb", 0, "copy only files larger than this many GB")
	scanCmd.Flags().Float64Var(&maxSizeGB, "max-gb", 0, "copy only files smaller than this many GB")
	scanCmd.Flags().IntVar(&copyWorkers, "workers", 1, "parallel copies")
	scanCmd.Flags().Float64Var(&filesPerSecond, "files-per-second", 0, "throttle copies per destination volume (0 = unlimited)")
	scanCmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace files already present in the destination")
}

// applyScanFlags overrides config values with explicitly set flags
func applyScanFlags(cmd *cobra.Command, c *model.Config) {
	flags := cmd.Flags()
	if flags.Changed("out") {
		c.Output.CSVPath = outCSV
	}
	if flags.Changed("no-color") {
		c.Output.Color = !noColor
	}
	if flags.Changed("ext") {
		c.Scan.Extensions = extensions
	}
	if flags.Changed("cache") {
		c.Cache.Enabled = useCache
	}
	if flags.Changed("copy-to") {
		c.Copy.Destination = copyTo
	}
	if flags.Changed("where") {
		c.Copy.Where = where
	}
	if flags.Changed("min-gb") {
		c.Copy.MinSizeGB = minSizeGB
	}
	if flags.Changed("max-gb") {
		c.Copy.MaxSizeGB = maxSizeGB
	}
	if flags.Changed("workers") {
		c.Copy.Workers = copyWorkers
	}
	if flags.Changed("files-per-second") {
		c.Copy.FilesPerSecond = filesPerSecond
	}
	if flags.Changed("overwrite") {
		c.Copy.Overwrite = overwrite
	}
	c.Output.Verbose = c.Output.Verbose || verbose
}

func runScan(cmd *cobra.Command, args []string) error {
	root := args[0]
	applyScanFlags(cmd, cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if scanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, scanTimeout)
		defer cancel()
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", root)
		fmt.Fprintf(os.Stderr, "Extensions: %v\n", cfg.Scan.Extensions)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg, logger)

	result, err := p.Run(ctx, root)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	out := cmd.OutOrStdout()
	useColor := cfg.Output.Color && out == os.Stdout && pipeline.ColorEnabled(os.Stdout)
	pipeline.RenderSummary(out, result, useColor)

	if result.Copy != nil && result.Copy.Failed > 0 {
		return fmt.Errorf("%d of %d copies failed", result.Copy.Failed, result.Copy.Selected)
	}

	return nil
}
