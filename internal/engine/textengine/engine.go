package textengine

import (
	"context"
	"fmt"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"morph/internal/engine"
	"morph/internal/pipeline"
	"morph/internal/sourcemap"
	"morph/internal/stage"
)

// Engine applies an assembled pipeline at statement granularity.
type Engine struct {
	reg *stage.Registry
}

// New returns an engine resolving named stages through reg; a nil reg means
// the built-in registry.
func New(reg *stage.Registry) *Engine {
	if reg == nil {
		reg = stage.Builtin()
	}
	return &Engine{reg: reg}
}

// Transform runs one pass. The full rewriter list is materialized before
// any statement is visited, so resolution failures surface as configuration
// errors without partial output.
func (e *Engine) Transform(ctx context.Context, req engine.Request) (engine.Result, error) {
	if err := ctx.Err(); err != nil {
		return engine.Result{}, err
	}

	rewriters := make([]stage.Rewriter, 0, len(req.Pipeline.Stages))
	for _, d := range req.Pipeline.Stages {
		if d.IsInline() {
			rewriters = append(rewriters, d.Inline)
			continue
		}
		rw, err := e.reg.Resolve(d.Name, d.Options)
		if err != nil {
			return engine.Result{}, err
		}
		rewriters = append(rewriters, rw)
	}

	src := norm.NFC.String(req.Source)
	segs := scan(src)

	for _, rw := range rewriters {
		if err := ctx.Err(); err != nil {
			return engine.Result{}, err
		}
		for i := range segs {
			seg := &segs[i]
			if seg.kind != segStmt || seg.dropped {
				continue
			}
			act, err := rw.Rewrite(stage.Statement{Text: seg.text, Line: seg.line, Col: seg.col})
			if err != nil {
				return engine.Result{}, &engine.TransformError{
					Path:  req.Path,
					Pos:   posOf(seg.line, seg.col),
					Stage: rw.Name(),
					Msg:   err.Error(),
				}
			}
			switch {
			case act.Drop:
				seg.dropped = true
			case act.Replace:
				seg.text = act.Text
			}
		}
	}

	return emit(req, src, segs)
}

// emit reconstructs the output and its line-level source map.
func emit(req engine.Request, src string, segs []segment) (engine.Result, error) {
	var b strings.Builder
	gen := sourcemap.NewGenerator("", req.Path, src)
	outLine := 0
	prevDropped := false
	for _, seg := range segs {
		text := seg.text
		if seg.dropped {
			prevDropped = true
			continue
		}
		if seg.kind == segTrivia && prevDropped {
			// swallow the dropped statement's separator so no stray
			// empty statement or blank line survives
			text = strings.TrimPrefix(text, ";")
			text = strings.TrimPrefix(text, "\n")
		}
		if seg.kind == segStmt {
			prevDropped = false
			for k := range strings.Count(text, "\n") + 1 {
				gen.MapLine(outLine+k, seg.line-1+k)
			}
		}
		b.WriteString(text)
		outLine += strings.Count(text, "\n")
	}

	res := engine.Result{Code: b.String()}
	mode := req.Pipeline.Settings.SourceMaps
	if mode == pipeline.SourceMapsNone {
		return res, nil
	}
	m := gen.Map()
	if mode == pipeline.SourceMapsInline || mode == pipeline.SourceMapsBoth {
		comment, err := m.InlineComment()
		if err != nil {
			return engine.Result{}, fmt.Errorf("source map: %w", err)
		}
		if res.Code != "" && !strings.HasSuffix(res.Code, "\n") {
			res.Code += "\n"
		}
		res.Code += comment + "\n"
	}
	if mode == pipeline.SourceMapsSeparate || mode == pipeline.SourceMapsBoth {
		res.Map = m
	}
	return res, nil
}

func posOf(line, col int) engine.Pos {
	// line/col come from the scanner and cannot be negative; conversion
	// failure would mean a scanner bug, mirror it as position zero
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		return engine.Pos{}
	}
	c, err := safecast.Conv[uint32](col)
	if err != nil {
		return engine.Pos{Line: l}
	}
	return engine.Pos{Line: l, Col: c}
}
