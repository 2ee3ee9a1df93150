package stage

import "fmt"

// Descriptor references one rewrite stage: either a name resolved through a
// Registry (with opaque options), or an inline rewriter carried directly.
// Exactly one of Name and Inline is set.
type Descriptor struct {
	Name    string
	Options any
	Inline  Rewriter
}

// List is an ordered sequence of stage descriptors. Order is semantically
// significant: later stages see the source as rewritten by earlier ones.
type List []Descriptor

// Named builds a descriptor for a registry-resolved stage.
func Named(name string, options any) Descriptor {
	return Descriptor{Name: name, Options: options}
}

// InlineStage builds a descriptor carrying its rewriter directly.
func InlineStage(r Rewriter) Descriptor {
	return Descriptor{Inline: r}
}

// IsInline reports whether the descriptor carries its behavior directly.
func (d Descriptor) IsInline() bool { return d.Inline != nil }

// ID returns the stage's identity for ordering checks and dumps.
func (d Descriptor) ID() string {
	if d.IsInline() {
		return d.Inline.Name()
	}
	return d.Name
}

func (d Descriptor) String() string {
	if d.IsInline() {
		return fmt.Sprintf("inline:%s", d.Inline.Name())
	}
	if d.Options != nil {
		return fmt.Sprintf("%s(%+v)", d.Name, d.Options)
	}
	return d.Name
}

// IDs returns the stage identities in order.
func (l List) IDs() []string {
	ids := make([]string, len(l))
	for i, d := range l {
		ids[i] = d.ID()
	}
	return ids
}
