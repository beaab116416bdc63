/*
Copyright © 2025 changheonshin
*/
package cmd

import (
	"context"

	"github.com/devlikebear/picsort/internal/ai"
	"github.com/devlikebear/picsort/internal/organizer"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// organizeCmd represents the organize command
var organizeCmd = &cobra.Command{
	Use:   "organize <directory>",
	Short: "Renames images and sorts them into category folders.",
	Long: `Runs the rename and classify steps back to back: every image first
gets a descriptive name from the AI provider, then the renamed file is
moved into a matching category subfolder. Images whose description
request fails are left in place and reported; images whose category
request fails still move, into the misc/ folder.

With --smart the model is asked for a free-form folder name per image
instead of picking from the fixed category table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := buildProvider()
		if err != nil {
			return err
		}
		return runOrganize(cmd, args, fileSystem, provider)
	},
}

func runOrganize(cmd *cobra.Command, args []string, fs afero.Fs, provider ai.Provider) error {
	matcher, err := buildMatcher()
	if err != nil {
		return err
	}
	org := organizer.New(fs, provider, matcher, cmd.OutOrStdout())

	// Create context for cancellation support
	ctx := context.Background()

	stats, err := org.Run(ctx, args[0], optionsFromFlags(cmd, organizer.ModeBoth))
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), stats)
	return nil
}

func init() {
	rootCmd.AddCommand(organizeCmd)
	addRunFlags(organizeCmd)
	organizeCmd.Flags().Bool("smart", false, "Ask the model for a free-form category name per image")
}
