// Package stage defines the units a transformation pipeline is built from:
// descriptors naming a rewrite behavior (resolved through a Registry) or
// carrying one inline, plus the statement-level rewriter contract the
// reference engine executes.
//
// A stage is opaque to pipeline assembly beyond its identity and position;
// ordering is the assembler's concern, behavior is the engine's.
package stage
