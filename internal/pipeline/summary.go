package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/ooiea/DataExtraction/internal/clean"
	"github.com/ooiea/DataExtraction/internal/score"
)

// ColorEnabled reports whether f is a terminal that should get colors
func ColorEnabled(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderSummary prints a human readable run summary
func RenderSummary(w io.Writer, result *Result, useColor bool) {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	for _, c := range []*color.Color{bold, cyan, green, yellow, red} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	fmt.Fprintln(w)
	cyan.Fprintf(w, "=== Catalog %s ===\n", result.RunID)
	fmt.Fprintf(w, "  Root:      %s\n", result.Root)
	fmt.Fprintf(w, "  Walked:    %d files (%s)\n", result.Walked, humanize.IBytes(uint64(result.WalkedBytes)))
	fmt.Fprintf(w, "  Kept:      ")
	green.Fprintf(w, "%d\n", result.Clean.Kept)

	if dropped := result.Clean.Input - result.Clean.Kept; dropped > 0 {
		fmt.Fprintf(w, "  Dropped:   ")
		yellow.Fprintf(w, "%d", dropped)
		fmt.Fprintf(w, " (%d denylisted, %d empty, %d unknown recording system)\n",
			result.Clean.Dropped[clean.ReasonDenylisted],
			result.Clean.Dropped[clean.ReasonEmpty],
			result.Clean.Dropped[clean.ReasonNoHardware])
	}

	if result.ReportPath != "" {
		fmt.Fprintf(w, "  Report:    %s\n", result.ReportPath)
	}

	fmt.Fprintln(w)
	bold.Fprintf(w, "Attribute coverage (index %d/100):\n", result.Coverage.Index)
	for _, cov := range result.Coverage.Attributes {
		pct := cov.Ratio() * 100
		line := fmt.Sprintf("  %-22s %6.1f%%  %d/%d", cov.Attribute, pct, cov.Known, cov.Total)
		if cov.Top != "" {
			line += fmt.Sprintf("  top: %s", cov.Top)
		}
		switch {
		case cov.Known == 0:
			fmt.Fprintln(w, line)
		case pct >= 50:
			green.Fprintln(w, line)
		default:
			yellow.Fprintln(w, line)
		}
	}

	warnings := result.Coverage.Warnings()
	if result.DropSignal.Severity != "" && result.DropSignal.Severity != score.SeverityInfo {
		warnings = append([]score.Signal{result.DropSignal}, warnings...)
	}
	if len(warnings) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Signals:")
		for _, s := range warnings {
			c := yellow
			if s.Severity == score.SeverityCritical {
				c = red
			}
			c.Fprintf(w, "  [%s] %s\n", s.Severity, s.Description)
		}
	}

	if result.Copy != nil {
		fmt.Fprintln(w)
		bold.Fprintf(w, "Copy to %s:\n", result.Copy.Destination)
		fmt.Fprintf(w, "  Selected:  %d\n", result.Copy.Selected)
		fmt.Fprintf(w, "  Copied:    ")
		green.Fprintf(w, "%d (%s)\n", result.Copy.Copied, humanize.IBytes(uint64(result.Copy.Bytes)))
		if result.Copy.Skipped > 0 {
			fmt.Fprintf(w, "  Skipped:   %d (already present)\n", result.Copy.Skipped)
		}
		if result.Copy.Failed > 0 {
			fmt.Fprintf(w, "  Failed:    ")
			red.Fprintf(w, "%d\n", result.Copy.Failed)
		}
	}

	fmt.Fprintln(w)
}
