package sourcemap

import "strings"

// Generator accumulates line-level mappings for one generated file backed by
// one source. Column precision is not tracked; every mapped generated line
// points at column 0 of its source line.
type Generator struct {
	file    string
	source  string
	content string
	// lines[genLine] = source line, both 0-based; -1 when unmapped
	lines []int
}

// NewGenerator starts a map for file generated from source with the given
// original content.
func NewGenerator(file, source, content string) *Generator {
	return &Generator{file: file, source: source, content: content}
}

// MapLine records that generated line genLine came from source line srcLine
// (both 0-based).
func (g *Generator) MapLine(genLine, srcLine int) {
	if genLine < 0 || srcLine < 0 {
		return
	}
	for len(g.lines) <= genLine {
		g.lines = append(g.lines, -1)
	}
	g.lines[genLine] = srcLine
}

// Map finalizes the accumulated mappings.
func (g *Generator) Map() *Map {
	var b strings.Builder
	prevSrc := 0
	first := true
	for i, src := range g.lines {
		if i > 0 {
			b.WriteByte(';')
		}
		if src < 0 {
			continue
		}
		// segment: genCol, srcIndex delta, srcLine delta, srcCol
		b.WriteString(encodeVLQ(0))
		if first {
			b.WriteString(encodeVLQ(0))
			b.WriteString(encodeVLQ(src))
			first = false
		} else {
			b.WriteString(encodeVLQ(0))
			b.WriteString(encodeVLQ(src - prevSrc))
		}
		b.WriteString(encodeVLQ(0))
		prevSrc = src
	}
	return &Map{
		Version:        3,
		File:           g.file,
		Sources:        []string{g.source},
		SourcesContent: []string{g.content},
		Names:          []string{},
		Mappings:       b.String(),
	}
}

const vlqChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeVLQ renders one value in the base64 VLQ form source maps use.
func encodeVLQ(n int) string {
	v := n << 1
	if n < 0 {
		v = (-n << 1) | 1
	}
	var out []byte
	for {
		digit := v & 31
		v >>= 5
		if v > 0 {
			digit |= 32
		}
		out = append(out, vlqChars[digit])
		if v == 0 {
			break
		}
	}
	return string(out)
}
