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

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename <directory>",
	Short: "Renames images in a directory after their content.",
	Long: `Analyzes every image in the specified directory with the configured
AI provider and renames each file after a short description of its
content, e.g. IMG_0042.jpg -> red_sports_car.jpg. Files keep their
extension and never overwrite each other; conflicting names get a
numeric suffix (red_sports_car_1.jpg).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := buildProvider()
		if err != nil {
			return err
		}
		return runRename(cmd, args, fileSystem, provider)
	},
}

func runRename(cmd *cobra.Command, args []string, fs afero.Fs, provider ai.Provider) error {
	org := organizer.New(fs, provider, nil, cmd.OutOrStdout())

	// Create context for cancellation support
	ctx := context.Background()

	stats, err := org.Run(ctx, args[0], optionsFromFlags(cmd, organizer.ModeRename))
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), stats)
	return nil
}

func init() {
	rootCmd.AddCommand(renameCmd)
	addRunFlags(renameCmd)
}
