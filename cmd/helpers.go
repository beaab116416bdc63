/*
Copyright © 2025 changheonshin
*/
package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/devlikebear/picsort/internal/organizer"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// addRunFlags registers the flags shared by every processing command.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Show what would be done without touching any file")
	cmd.Flags().BoolP("verbose", "v", false, "Print the raw AI suggestions for each image")
	cmd.Flags().Uint("max-width", 1200, "Downscale images to this width before uploading (0 disables)")
}

// optionsFromFlags builds organizer options from the shared flags.
func optionsFromFlags(cmd *cobra.Command, mode organizer.Mode) organizer.Options {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	maxWidth, _ := cmd.Flags().GetUint("max-width")
	smart := false
	if cmd.Flags().Lookup("smart") != nil {
		smart, _ = cmd.Flags().GetBool("smart")
	}

	return organizer.Options{
		Mode:     mode,
		DryRun:   dryRun,
		Verbose:  verbose,
		Smart:    smart,
		MaxWidth: maxWidth,
	}
}

// printSummary writes the end-of-run report.
func printSummary(w io.Writer, stats *organizer.Stats) {
	fmt.Fprintln(w, "\n📊 Run Summary:")
	fmt.Fprintf(w, "✅ Images found: %d\n", stats.Found)
	if stats.Renamed > 0 {
		fmt.Fprintf(w, "✏️  Renamed: %d\n", stats.Renamed)
	}
	if stats.Moved > 0 {
		fmt.Fprintf(w, "📁 Moved: %d\n", stats.Moved)
	}

	if len(stats.PerCategory) > 0 {
		fmt.Fprintln(w, "\n📋 Images per category:")
		names := lo.Keys(stats.PerCategory)
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %d image(s)\n", name, stats.PerCategory[name])
		}
	}

	if failures := stats.Failures(); len(failures) > 0 {
		fmt.Fprintf(w, "\n⚠️  Failed: %d\n", len(failures))
		for _, f := range failures {
			fmt.Fprintf(w, "  - %s: %v\n", f.Source, f.Err)
		}
	}
}
