package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"morph/internal/dialect"
)

var detectCmd = &cobra.Command{
	Use:   "detect file...",
	Short: "Show the detected dialect of source files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			src, err := os.ReadFile(path) // #nosec G304 -- user-supplied CLI path
			if err != nil {
				return fmt.Errorf("failed to load file: %w", err)
			}
			flags := dialect.Detect(path, src)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, flags.Describe())
		}
		return nil
	},
}
