// Package engine defines the boundary to the underlying rewrite engine: the
// collaborator that actually walks source and applies stages. The
// configurator only hands it an assembled pipeline and one source text.
package engine

import (
	"context"

	"morph/internal/pipeline"
	"morph/internal/sourcemap"
)

// Request is one transformation pass over one source file.
type Request struct {
	// Source is the text to transform.
	Source string
	// Path identifies the file for diagnostics and source-map naming only;
	// it is never opened or parsed.
	Path string
	// Pipeline is the assembled configuration for this pass.
	Pipeline pipeline.Spec
}

// Result is a pass's output. Skipped marks the defined no-op outcome: both
// payload fields empty, no transformation performed, not an error.
type Result struct {
	Code    string
	Map     *sourcemap.Map
	Skipped bool
}

// Engine runs one synchronous, blocking pass. Implementations must either
// return a Result or an error carrying positional diagnostics; they never do
// both.
type Engine interface {
	Transform(ctx context.Context, req Request) (Result, error)
}
