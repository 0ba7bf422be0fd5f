package bst

import "strings"

// prefix is an immutable list of indentation fragments, one per ancestor
// level, linked from the deepest level back to the root. Children share
// their parent's list and only ever extend it.
type prefix struct {
	fragment string
	parent   *prefix
}

func newPrefix() *prefix {
	var p *prefix
	return p
}

func (p *prefix) Push(fragment string) *prefix {
	return &prefix{fragment: fragment, parent: p}
}

// writeTo writes the fragments in root-first order.
func (p *prefix) writeTo(b *strings.Builder) {
	if p == nil {
		return
	}
	p.parent.writeTo(b)
	b.WriteString(p.fragment)
}
