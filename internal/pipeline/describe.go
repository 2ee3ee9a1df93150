package pipeline

import (
	"fmt"
	"strings"

	"morph/internal/dialect"
)

// Describe renders an assembled pipeline in a stable, human-readable form.
// Used by the explain command and golden tests; the format is part of the
// CLI surface, keep it deterministic.
func Describe(flags dialect.Flags, spec Spec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "pipeline: %s\n", flags.Describe())

	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	fmt.Fprintf(&b, "settings: config-discovery=%s source-maps=%s compact=%s set-public-class-fields=%s\n",
		onOff(!spec.Settings.NoConfigDiscovery),
		spec.Settings.SourceMaps,
		onOff(spec.Settings.Compact),
		onOff(spec.Settings.SetPublicClassFields),
	)

	for i, d := range spec.Stages {
		fmt.Fprintf(&b, "%3d. %s", i+1, d.ID())
		if d.IsInline() {
			b.WriteString("  (inline)")
		} else if d.Options != nil {
			fmt.Fprintf(&b, "  %+v", d.Options)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
