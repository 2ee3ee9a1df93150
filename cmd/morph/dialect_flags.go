package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"morph/internal/dialect"
	"morph/internal/project"
)

// registerDialectFlags adds the per-dialect override flags shared by the
// transform and explain commands.
func registerDialectFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("typed", false, "treat input as the typed dialect")
	cmd.Flags().Bool("module", false, "treat input as already being in module form")
	cmd.Flags().String("jsx", "none", "jsx rewrite mode (none|classic|automatic|automatic-dev)")
	cmd.Flags().String("jsx-pragma", "", "classic-mode factory identifier")
	cmd.Flags().String("jsx-fragment-pragma", "", "classic-mode fragment identifier")
	cmd.Flags().String("jsx-import-source", "", "automatic-mode runtime module")
}

var dialectFlagNames = []string{
	"typed", "module", "jsx", "jsx-pragma", "jsx-fragment-pragma", "jsx-import-source",
}

// resolveDialectFlags merges manifest defaults with explicit CLI overrides.
// Returns nil when nothing was forced, meaning per-file detection applies.
func resolveDialectFlags(cmd *cobra.Command, manifest *project.Manifest) (*dialect.Flags, error) {
	changed := false
	for _, name := range dialectFlagNames {
		if cmd.Flags().Changed(name) {
			changed = true
			break
		}
	}

	var flags dialect.Flags
	if manifest != nil {
		var err error
		flags, err = manifest.Config.Dialect.Flags()
		if err != nil {
			return nil, err
		}
	} else if !changed {
		return nil, nil
	}

	if changed {
		if cmd.Flags().Changed("typed") {
			flags.Typed, _ = cmd.Flags().GetBool("typed")
		}
		if cmd.Flags().Changed("module") {
			flags.Module, _ = cmd.Flags().GetBool("module")
		}
		if cmd.Flags().Changed("jsx") {
			raw, _ := cmd.Flags().GetString("jsx")
			mode, err := dialect.ParseJSXMode(raw)
			if err != nil {
				return nil, err
			}
			flags.JSX = mode
		}
		if cmd.Flags().Changed("jsx-pragma") {
			flags.JSXPragma, _ = cmd.Flags().GetString("jsx-pragma")
		}
		if cmd.Flags().Changed("jsx-fragment-pragma") {
			flags.JSXFragmentPragma, _ = cmd.Flags().GetString("jsx-fragment-pragma")
		}
		if cmd.Flags().Changed("jsx-import-source") {
			flags.JSXImportSource, _ = cmd.Flags().GetString("jsx-import-source")
		}
	}

	if err := flags.Validate(); err != nil {
		return nil, fmt.Errorf("dialect flags: %w", err)
	}
	return &flags, nil
}

// discoverManifest находит ближайший morph.toml; его отсутствие не ошибка.
func discoverManifest(startDir string) (*project.Manifest, error) {
	m, ok, err := project.Discover(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return m, nil
}
