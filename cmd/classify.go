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

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <directory>",
	Short: "Sorts images into category folders.",
	Long: `Classifies every image in the specified directory with the configured
AI provider and moves each file into a matching category subfolder
(animals/, food/, vehicles/, ...). Labels that match no known category
land in the misc/ folder; a failed request does the same instead of
aborting the batch.

With --smart the model is asked for a free-form folder name per image
instead of picking from the fixed category table.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := buildProvider()
		if err != nil {
			return err
		}
		return runClassify(cmd, args, fileSystem, provider)
	},
}

func runClassify(cmd *cobra.Command, args []string, fs afero.Fs, provider ai.Provider) error {
	matcher, err := buildMatcher()
	if err != nil {
		return err
	}
	org := organizer.New(fs, provider, matcher, cmd.OutOrStdout())

	// Create context for cancellation support
	ctx := context.Background()

	stats, err := org.Run(ctx, args[0], optionsFromFlags(cmd, organizer.ModeClassify))
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), stats)
	return nil
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	addRunFlags(classifyCmd)
	classifyCmd.Flags().Bool("smart", false, "Ask the model for a free-form category name per image")
}
