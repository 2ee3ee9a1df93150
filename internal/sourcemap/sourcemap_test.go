package sourcemap

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeVLQ(t *testing.T) {
	// known vectors from the source map v3 spec examples
	tests := []struct {
		in   int
		want string
	}{
		{0, "A"},
		{1, "C"},
		{-1, "D"},
		{2, "E"},
		{15, "e"},
		{16, "gB"},
		{511, "+f"},
		{512, "ggB"},
		{-512, "hgB"},
	}
	for _, tt := range tests {
		if got := encodeVLQ(tt.in); got != tt.want {
			t.Errorf("encodeVLQ(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerator_IdentityLines(t *testing.T) {
	g := NewGenerator("out.js", "in.ts", "a\nb\nc\n")
	g.MapLine(0, 0)
	g.MapLine(1, 1)
	g.MapLine(2, 2)
	m := g.Map()

	if m.Version != 3 {
		t.Errorf("Version = %d, want 3", m.Version)
	}
	// AAAA then ;AACA per following line (src line delta 1)
	if m.Mappings != "AAAA;AACA;AACA" {
		t.Errorf("Mappings = %q, want AAAA;AACA;AACA", m.Mappings)
	}
	if len(m.Sources) != 1 || m.Sources[0] != "in.ts" {
		t.Errorf("Sources = %v", m.Sources)
	}
}

func TestGenerator_SkippedLine(t *testing.T) {
	g := NewGenerator("out.js", "in.ts", "")
	g.MapLine(0, 0)
	g.MapLine(2, 3)
	m := g.Map()
	if m.Mappings != "AAAA;;AAGA" {
		t.Errorf("Mappings = %q, want AAAA;;AAGA", m.Mappings)
	}
}

func TestMap_InlineComment(t *testing.T) {
	g := NewGenerator("out.js", "in.ts", "let x = 1\n")
	g.MapLine(0, 0)
	m := g.Map()

	comment, err := m.InlineComment()
	if err != nil {
		t.Fatalf("InlineComment() error: %v", err)
	}
	const prefix = "//# sourceMappingURL=data:application/json;charset=utf-8;base64,"
	if !strings.HasPrefix(comment, prefix) {
		t.Fatalf("comment = %q, want %q prefix", comment, prefix)
	}

	data, err := m.JSON()
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var round Map
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if round.Mappings != m.Mappings || round.File != "out.js" {
		t.Errorf("round trip = %+v", round)
	}
}
