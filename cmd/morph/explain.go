package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"morph/internal/dialect"
	"morph/internal/driver"
	"morph/internal/pipeline"
)

var explainCmd = &cobra.Command{
	Use:   "explain [flags] [file]",
	Short: "Show the pipeline a file (or flag set) would be transformed with",
	Long: `Explain assembles a pipeline without running it and prints every stage in
order, with its options. Given a file, its dialect is detected first; the
dialect flags override detection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplain,
}

func init() {
	registerDialectFlags(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = filepath.Dir(args[0])
	}
	manifest, err := discoverManifest(startDir)
	if err != nil {
		return err
	}
	forced, err := resolveDialectFlags(cmd, manifest)
	if err != nil {
		return err
	}

	var flags dialect.Flags
	switch {
	case forced != nil:
		flags = *forced
	case len(args) == 1:
		src, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied CLI path
		if err != nil {
			return fmt.Errorf("failed to load file: %w", err)
		}
		flags = dialect.Detect(args[0], src)
	}

	var opts driver.DirOptions
	if manifest != nil {
		opts.Prologue = manifest.Config.Stages.PrologueStages()
		opts.Epilogue = manifest.Config.Stages.EpilogueStages()
	}
	spec, err := pipeline.Assemble(flags, opts.Prologue, opts.Epilogue)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), pipeline.Describe(flags, spec))
	return nil
}
