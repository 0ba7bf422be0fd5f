package bst

import "github.com/goose-lang/std"

// Min returns the smallest key by walking left. The boolean is false if the
// tree is empty.
func (t *Node) Min() (int, bool) {
	if t == nil {
		return 0, false
	}
	var n = t
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// MinRec is the recursive version of Min.
func (t *Node) MinRec() (int, bool) {
	if t == nil {
		return 0, false
	}
	if t.left == nil {
		return t.value, true
	}
	return t.left.MinRec()
}

func (t *Node) Max() (int, bool) {
	if t == nil {
		return 0, false
	}
	var n = t
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

func (t *Node) MaxRec() (int, bool) {
	if t == nil {
		return 0, false
	}
	if t.right == nil {
		return t.value, true
	}
	return t.right.MaxRec()
}

// Height counts edges on the longest root-to-leaf path: -1 for the empty
// tree and 0 for a single node.
func (t *Node) Height() int {
	if t == nil {
		return -1
	}
	return max(t.left.Height(), t.right.Height()) + 1
}

// Size returns the number of keys in the tree, counting duplicates.
func (t *Node) Size() uint64 {
	if t == nil {
		return 0
	}
	n := std.SumAssumeNoOverflow(t.left.Size(), t.right.Size())
	return std.SumAssumeNoOverflow(n, 1)
}
