// Package driver owns one transformation pass end to end: it guards against
// reentry, assembles the pipeline and invokes the engine exactly once per
// admitted call.
package driver

import (
	"context"
	"sync/atomic"

	"morph/internal/dialect"
	"morph/internal/engine"
	"morph/internal/pipeline"
	"morph/internal/stage"
)

// Option configures a Driver.
type Option func(*Driver)

// WithPrologue sets the caller-supplied stages that run before every
// dialect-driven stage.
func WithPrologue(l stage.List) Option {
	return func(d *Driver) { d.prologue = l }
}

// WithEpilogue sets the caller-supplied stages that run after every
// dialect-driven stage.
func WithEpilogue(l stage.List) Option {
	return func(d *Driver) { d.epilogue = l }
}

// Driver is one execution context. Its latch admits a single pass at a
// time: resolving a stage's configuration may itself trigger another call
// into the same driver (a stage implementation authored in the dialect this
// driver transforms), and that inner call must not start a second,
// interleaved pass over half-configured state.
type Driver struct {
	eng      engine.Engine
	prologue stage.List
	epilogue stage.List
	busy     atomic.Bool
}

// New returns a Driver delegating execution to eng.
func New(eng engine.Engine, opts ...Option) *Driver {
	d := &Driver{eng: eng}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run drives one pass over code. If a pass is already active on this
// driver, Run returns the defined no-op outcome (Skipped set, both payload
// fields empty, no error) without assembling or invoking the engine.
// Callers that can trigger reentry must treat a skipped result as "this
// call was superseded", never as a parse failure.
//
// The latch is released on every exit path; engine failures propagate
// unmodified after release.
func (d *Driver) Run(ctx context.Context, code, path string, flags dialect.Flags) (engine.Result, error) {
	if !d.busy.CompareAndSwap(false, true) {
		return engine.Result{Skipped: true}, nil
	}
	defer d.busy.Store(false)

	spec, err := pipeline.Assemble(flags, d.prologue, d.epilogue)
	if err != nil {
		return engine.Result{}, err
	}
	return d.eng.Transform(ctx, engine.Request{
		Source:   code,
		Path:     path,
		Pipeline: spec,
	})
}
