package engine

import "fmt"

// Pos is a 1-based source position.
type Pos struct {
	Line uint32
	Col  uint32
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// TransformError reports a construct the engine or one of its stages could
// not process, with enough position to point at it. It propagates to the
// caller unmodified; the configurator adds no retry or suppression.
type TransformError struct {
	Path  string
	Pos   Pos
	Stage string
	Msg   string
}

func (e *TransformError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("%s:%s: %s: %s", e.Path, e.Pos, e.Stage, e.Msg)
	}
	return fmt.Sprintf("%s:%s: %s", e.Path, e.Pos, e.Msg)
}
