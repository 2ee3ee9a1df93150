// Package diag carries user-facing diagnostics: what went wrong, where, and
// how to print it.
package diag

import (
	"errors"

	"morph/internal/dialect"
	"morph/internal/engine"
	"morph/internal/stage"
)

// Diagnostic is one reportable finding with an optional source position.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Path     string
	Line     uint32
	Col      uint32
	Message  string
}

// FromError classifies err into a diagnostic. Transform errors keep their
// position; configuration errors get their dedicated codes.
func FromError(path string, err error) Diagnostic {
	var terr *engine.TransformError
	if errors.As(err, &terr) {
		return Diagnostic{
			Severity: SevError,
			Code:     TrnUnsupportedSyntax,
			Path:     terr.Path,
			Line:     terr.Pos.Line,
			Col:      terr.Pos.Col,
			Message:  terr.Msg + " (stage " + terr.Stage + ")",
		}
	}
	code := UnknownCode
	switch {
	case errors.Is(err, dialect.ErrInvalidFlags):
		code = CfgInvalidFlags
	case errors.Is(err, stage.ErrUnknownStage):
		code = CfgUnknownStage
	}
	return Diagnostic{
		Severity: SevError,
		Code:     code,
		Path:     path,
		Message:  err.Error(),
	}
}
