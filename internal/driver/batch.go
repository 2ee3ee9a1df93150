package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"morph/internal/dialect"
	"morph/internal/engine"
	"morph/internal/pipeline"
	"morph/internal/stage"
)

// sourceExts are the file suffixes batch transforms pick up.
var sourceExts = []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs", ".mts", ".cts"}

// DirOptions configures a batch transform.
type DirOptions struct {
	// Flags forces one dialect for every file; nil detects per file.
	Flags *dialect.Flags
	// Prologue and Epilogue are forwarded to every assembled pipeline.
	Prologue stage.List
	Epilogue stage.List
	// Jobs caps worker parallelism; <= 0 uses GOMAXPROCS.
	Jobs int
	// OutDir receives transformed files, mirroring the input layout.
	OutDir string
	// Progress receives per-file events; may be nil.
	Progress ProgressSink
	// Cache skips engine passes whose source and pipeline are unchanged;
	// may be nil.
	Cache *Cache
}

// FileResult is one file's outcome in a batch transform.
type FileResult struct {
	Path     string
	OutPath  string
	MapPath  string
	CacheHit bool
	Err      error
}

// ListSourceFiles возвращает отсортированный список всех исходников в
// директории.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range sourceExts {
			if strings.HasSuffix(path, ext) {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TransformDir transforms every source file under dir in parallel and
// writes outputs (plus standalone maps) under opts.OutDir. Each worker runs
// its own Driver: batch files are independent execution contexts, so their
// latches never interfere.
func TransformDir(ctx context.Context, eng engine.Engine, dir string, opts DirOptions) ([]FileResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	outDir := opts.OutDir
	if outDir == "" {
		outDir = filepath.Join(dir, "out")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range files {
		emitStage(opts.Progress, path, StageAssemble, StatusQueued, nil, 0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = transformOne(gctx, eng, dir, outDir, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func transformOne(ctx context.Context, eng engine.Engine, dir, outDir, path string, opts DirOptions) FileResult {
	res := FileResult{Path: path}
	fail := func(st Stage, err error) FileResult {
		res.Err = err
		emitStage(opts.Progress, path, st, StatusError, err, 0)
		return res
	}

	src, err := os.ReadFile(path) // #nosec G304 -- paths come from the walked input dir
	if err != nil {
		return fail(StageAssemble, fmt.Errorf("failed to load file: %w", err))
	}

	assembleStart := time.Now()
	emitStage(opts.Progress, path, StageAssemble, StatusWorking, nil, 0)
	flags := dialect.Detect(path, src)
	if opts.Flags != nil {
		flags = *opts.Flags
	}
	spec, err := pipeline.Assemble(flags, opts.Prologue, opts.Epilogue)
	if err != nil {
		return fail(StageAssemble, err)
	}
	fingerprint := pipeline.Describe(flags, spec)
	emitStage(opts.Progress, path, StageAssemble, StatusDone, nil, time.Since(assembleStart))

	rel, err := filepath.Rel(dir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	res.OutPath = filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".js")

	key := PassKey(src, fingerprint)
	var payload Payload
	if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
		res.CacheHit = true
		if err := writeOutputs(&res, payload.Code, payload.MapJSON); err != nil {
			return fail(StageWrite, err)
		}
		emitStage(opts.Progress, path, StageWrite, StatusDone, nil, 0)
		return res
	}

	transformStart := time.Now()
	emitStage(opts.Progress, path, StageTransform, StatusWorking, nil, 0)
	out, err := New(eng, WithPrologue(opts.Prologue), WithEpilogue(opts.Epilogue)).
		Run(ctx, string(src), path, flags)
	if err != nil {
		return fail(StageTransform, err)
	}
	emitStage(opts.Progress, path, StageTransform, StatusDone, nil, time.Since(transformStart))

	var mapJSON []byte
	if out.Map != nil {
		mapJSON, err = out.Map.JSON()
		if err != nil {
			return fail(StageWrite, err)
		}
	}

	writeStart := time.Now()
	emitStage(opts.Progress, path, StageWrite, StatusWorking, nil, 0)
	if err := writeOutputs(&res, out.Code, mapJSON); err != nil {
		return fail(StageWrite, err)
	}
	// кэш — ускорение, не источник истины; ошибка записи не валит файл
	_ = opts.Cache.Put(key, NewPayload(out.Code, mapJSON))
	emitStage(opts.Progress, path, StageWrite, StatusDone, nil, time.Since(writeStart))
	return res
}

func writeOutputs(res *FileResult, code string, mapJSON []byte) error {
	if err := os.MkdirAll(filepath.Dir(res.OutPath), 0o750); err != nil {
		return err
	}
	if err := os.WriteFile(res.OutPath, []byte(code), 0o600); err != nil {
		return fmt.Errorf("failed to write output %q: %w", res.OutPath, err)
	}
	if len(mapJSON) > 0 {
		res.MapPath = res.OutPath + ".map"
		if err := os.WriteFile(res.MapPath, mapJSON, 0o600); err != nil {
			return fmt.Errorf("failed to write map %q: %w", res.MapPath, err)
		}
	}
	return nil
}
