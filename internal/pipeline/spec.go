// Package pipeline assembles the ordered stage list for one transformation
// pass. Assembly is a pure function of the dialect flags and the caller's
// prologue/epilogue stage lists; it resolves nothing and executes nothing.
package pipeline

import "morph/internal/stage"

// SourceMapMode selects how source maps are emitted.
type SourceMapMode uint8

const (
	// SourceMapsNone disables map generation.
	SourceMapsNone SourceMapMode = iota
	// SourceMapsInline embeds the map as a trailing data-URI comment.
	SourceMapsInline
	// SourceMapsSeparate returns the map as a standalone structure.
	SourceMapsSeparate
	// SourceMapsBoth emits the inline comment and the standalone structure.
	SourceMapsBoth
)

func (m SourceMapMode) String() string {
	switch m {
	case SourceMapsInline:
		return "inline"
	case SourceMapsSeparate:
		return "separate"
	case SourceMapsBoth:
		return "both"
	default:
		return "none"
	}
}

// Settings are the pass-level knobs handed to the engine alongside the
// stage list.
type Settings struct {
	// NoConfigDiscovery keeps a pass deterministic: nothing outside the
	// explicit inputs may influence it.
	NoConfigDiscovery bool
	// SourceMaps requests dual-format maps for downstream consumers.
	SourceMaps SourceMapMode
	// Compact controls output compaction; off for debuggability.
	Compact bool
	// SetPublicClassFields asserts plain-assignment semantics for class
	// field initialization so no helper breaks the host's evaluation
	// contract.
	SetPublicClassFields bool
}

// Spec is the fully assembled configuration for one pass. Constructed, used
// once, discarded.
type Spec struct {
	Stages   stage.List
	Settings Settings
}
