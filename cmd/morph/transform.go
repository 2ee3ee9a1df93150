package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"morph/internal/diag"
	"morph/internal/dialect"
	"morph/internal/driver"
	"morph/internal/engine/textengine"
	"morph/internal/observ"
)

var transformCmd = &cobra.Command{
	Use:   "transform [flags] path",
	Short: "Transform a source file or directory",
	Long: `Transform assembles the rewrite pipeline for each input's dialect and runs
a single pass over it. A directory is processed in parallel, with results
written under --out-dir; a single file is written to stdout unless --out-dir
is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

func init() {
	registerDialectFlags(transformCmd)
	transformCmd.Flags().String("out-dir", "", "directory for transformed outputs")
	transformCmd.Flags().Int("jobs", 0, "parallel workers for directory transforms (0 = GOMAXPROCS)")
	transformCmd.Flags().Bool("no-cache", false, "bypass the pass result cache")
	transformCmd.Flags().String("ui", "auto", "interactive progress (auto|on|off)")
}

func runTransform(cmd *cobra.Command, args []string) error {
	path := args[0]
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	startDir := path
	if !info.IsDir() {
		startDir = filepath.Dir(path)
	}
	manifest, err := discoverManifest(startDir)
	if err != nil {
		return err
	}
	forced, err := resolveDialectFlags(cmd, manifest)
	if err != nil {
		return err
	}

	opts := driver.DirOptions{Flags: forced}
	if manifest != nil {
		opts.Prologue = manifest.Config.Stages.PrologueStages()
		opts.Epilogue = manifest.Config.Stages.EpilogueStages()
	}

	timer := observ.NewTimer()
	defer func() {
		if timings {
			fmt.Fprint(os.Stderr, timer.Summary())
		}
	}()

	if info.IsDir() {
		return transformDir(cmd, path, opts, timer, quiet)
	}
	return transformFile(cmd, path, opts, timer)
}

func transformFile(cmd *cobra.Command, path string, opts driver.DirOptions, timer *observ.Timer) error {
	src, err := os.ReadFile(path) // #nosec G304 -- user-supplied CLI path
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	flags := dialect.Detect(path, src)
	if opts.Flags != nil {
		flags = *opts.Flags
	}

	phase := timer.Begin("transform")
	d := driver.New(textengine.New(nil),
		driver.WithPrologue(opts.Prologue), driver.WithEpilogue(opts.Epilogue))
	res, err := d.Run(cmd.Context(), string(src), path, flags)
	timer.End(phase, flags.Describe())
	if err != nil {
		diag.Pretty(os.Stderr, []diag.Diagnostic{diag.FromError(path, err)},
			diag.PrettyOpts{Color: useColor(cmd, os.Stderr)})
		return fmt.Errorf("transform failed")
	}

	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		fmt.Fprint(cmd.OutOrStdout(), res.Code)
		return nil
	}

	phase = timer.Begin("write")
	defer timer.End(phase, "")
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return err
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outDir, stem+".js")
	if err := os.WriteFile(outPath, []byte(res.Code), 0o600); err != nil {
		return fmt.Errorf("failed to write output %q: %w", outPath, err)
	}
	if res.Map != nil {
		mapJSON, err := res.Map.JSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath+".map", mapJSON, 0o600); err != nil {
			return fmt.Errorf("failed to write map: %w", err)
		}
	}
	return nil
}

func transformDir(cmd *cobra.Command, dir string, opts driver.DirOptions, timer *observ.Timer, quiet bool) error {
	opts.Jobs, _ = cmd.Flags().GetInt("jobs")
	opts.OutDir, _ = cmd.Flags().GetString("out-dir")

	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		cache, err := driver.OpenCache("morph")
		if err != nil {
			if !quiet {
				fmt.Fprintf(os.Stderr, "warning: cache unavailable: %v\n", err)
			}
		} else {
			opts.Cache = cache
		}
	}

	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	eng := textengine.New(nil)
	phase := timer.Begin("batch")

	var results []driver.FileResult
	if shouldUseTUI(mode) && !quiet {
		files, listErr := driver.ListSourceFiles(dir)
		if listErr != nil {
			return listErr
		}
		results, err = runTransformDirWithUI(cmd.Context(), "transforming "+dir, files, eng, dir, opts)
	} else {
		results, err = driver.TransformDir(cmd.Context(), eng, dir, opts)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))
	if err != nil {
		return err
	}

	var diags []diag.Diagnostic
	hits := 0
	for _, res := range results {
		if res.Err != nil {
			diags = append(diags, diag.FromError(res.Path, res.Err))
		}
		if res.CacheHit {
			hits++
		}
	}
	if len(diags) > 0 {
		diag.Pretty(os.Stderr, diags, diag.PrettyOpts{Color: useColor(cmd, os.Stderr)})
		return fmt.Errorf("%d of %d files failed", len(diags), len(results))
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "transformed %d files (%d cached)\n", len(results), hits)
	}
	return nil
}
