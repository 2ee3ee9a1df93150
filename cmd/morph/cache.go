package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"morph/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the pass result cache",
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop every cached pass result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenCache("morph")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop cache: %w", err)
		}
		if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "cache cleaned")
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheCleanCmd)
}
