package bst

import (
	"strconv"
	"strings"
)

// branch records how a node hangs off its parent.
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

const (
	blankFragment = "   "
	barFragment   = "|  "
)

func (br branch) marker() string {
	switch br {
	case leftBranch:
		return "`--"
	case rightBranch:
		return ".--"
	}
	return "---"
}

// above is the fragment this node contributes to lines of its right subtree,
// which are printed above it. A left child's connector runs up to its parent
// past those lines.
func (br branch) above() string {
	if br == leftBranch {
		return barFragment
	}
	return blankFragment
}

// below is the fragment for lines of the left subtree.
func (br branch) below() string {
	if br == rightBranch {
		return barFragment
	}
	return blankFragment
}

// Pretty renders the tree sideways with the right subtree above each node
// and the left subtree below, one key per line:
//
//	   .--17
//	   |  `--10
//	---8
//	   `--3
//
// The empty tree renders as "".
func (t *Node) Pretty() string {
	var b strings.Builder
	t.pretty(&b, newPrefix(), rootBranch)
	return b.String()
}

func (t *Node) pretty(b *strings.Builder, indent *prefix, br branch) {
	if t == nil {
		return
	}
	t.right.pretty(b, indent.Push(br.above()), rightBranch)
	indent.writeTo(b)
	b.WriteString(br.marker())
	b.WriteString(strconv.Itoa(t.value))
	b.WriteByte('\n')
	t.left.pretty(b, indent.Push(br.below()), leftBranch)
}

func (t *Node) String() string {
	return t.Pretty()
}

const indentWidth = 10

// Indented renders the tree sideways using only spaces: right subtree first,
// and each key preceded by a blank line and indented indentWidth columns per
// level of depth.
func (t *Node) Indented() string {
	var b strings.Builder
	t.indented(&b, newPrefix())
	return b.String()
}

func (t *Node) indented(b *strings.Builder, indent *prefix) {
	if t == nil {
		return
	}
	child := indent.Push(strings.Repeat(" ", indentWidth))
	t.right.indented(b, child)
	b.WriteByte('\n')
	indent.writeTo(b)
	b.WriteString(strconv.Itoa(t.value))
	b.WriteByte('\n')
	t.left.indented(b, child)
}
