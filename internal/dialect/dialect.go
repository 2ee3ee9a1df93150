package dialect

import "fmt"

// JSXMode selects how JSX syntax is rewritten during a pass.
type JSXMode uint8

const (
	// JSXNone means the file declared no JSX handling. JSX syntax is still
	// parseable; it is rewritten against the default automatic runtime.
	JSXNone JSXMode = iota
	// JSXClassic rewrites JSX into factory call expressions.
	JSXClassic
	// JSXAutomatic rewrites JSX against an automatic runtime import.
	JSXAutomatic
	// JSXAutomaticDev is JSXAutomatic with development-mode output.
	JSXAutomaticDev

	jsxModeCount
)

func (m JSXMode) String() string {
	switch m {
	case JSXClassic:
		return "classic"
	case JSXAutomatic:
		return "automatic"
	case JSXAutomaticDev:
		return "automatic-dev"
	default:
		return "none"
	}
}

func (m JSXMode) GoString() string {
	return fmt.Sprintf("JSXMode(%s)", m.String())
}

// ParseJSXMode converts a user-facing mode name into a JSXMode.
func ParseJSXMode(s string) (JSXMode, error) {
	switch s {
	case "", "none":
		return JSXNone, nil
	case "classic":
		return JSXClassic, nil
	case "automatic":
		return JSXAutomatic, nil
	case "automatic-dev":
		return JSXAutomaticDev, nil
	default:
		return JSXNone, fmt.Errorf("unknown jsx mode: %q (expected none|classic|automatic|automatic-dev)", s)
	}
}

// Automatic reports whether the mode uses the automatic runtime.
func (m JSXMode) Automatic() bool {
	return m == JSXAutomatic || m == JSXAutomaticDev
}
