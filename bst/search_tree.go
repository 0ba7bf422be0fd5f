package bst

import "github.com/goose-lang/primitive"

// Node is an unbalanced binary search tree of ints. A nil *Node is the empty
// tree, and every method accepts one.
//
// Keys equal to a node's value are stored in its left subtree: every key on
// the left is <= value and every key on the right is > value.
type Node struct {
	value int
	left  *Node
	right *Node
}

func NewTree() *Node {
	var t *Node
	return t
}

func leaf(value int) *Node {
	return &Node{value: value}
}

// FromValues inserts vs in order into an empty tree.
func FromValues(vs ...int) *Node {
	t := NewTree()
	for _, v := range vs {
		t = t.Insert(v)
	}
	return t
}

func (t *Node) Value() int {
	return t.value
}

// Insert adds value and returns the root of the resulting tree. Duplicates are
// kept.
func (t *Node) Insert(value int) *Node {
	if t == nil {
		return leaf(value)
	}
	// modify in-place
	if value <= t.value {
		t.left = t.left.Insert(value)
	} else {
		t.right = t.right.Insert(value)
	}
	return t
}

// Find returns a node holding value, or nil if there is none.
func (t *Node) Find(value int) *Node {
	var n = t
	for n != nil {
		if value == n.value {
			return n
		}
		if value < n.value {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

func (t *Node) Exists(value int) bool {
	if t == nil {
		return false
	}
	if value == t.value {
		return true
	}
	if value < t.value {
		return t.left.Exists(value)
	}
	return t.right.Exists(value)
}

// Delete removes one occurrence of value and returns the new root. Deleting a
// missing value returns the tree unchanged.
func (t *Node) Delete(value int) *Node {
	if t == nil {
		return t
	}
	if value < t.value {
		t.left = t.left.Delete(value)
		return t
	}
	if value > t.value {
		t.right = t.right.Delete(value)
		return t
	}
	if t.left == nil {
		return t.right
	}
	if t.right == nil {
		return t.left
	}
	// two children: take over the in-order successor's value. Its other
	// copies must leave the right subtree, which only holds keys > t.value.
	succ, ok := t.right.MinRec()
	primitive.Assert(ok)
	right, dups := t.right.detachMin(succ)
	t.value = succ
	t.right = right
	t.left = t.left.appendRight(dups)
	return t
}

// detachMin unlinks the topmost node holding min, the smallest key in t. It
// returns the new root and that node's left subtree, in which every key equals
// min.
func (t *Node) detachMin(min int) (*Node, *Node) {
	if t.value == min {
		return t.right, t.left
	}
	var dups *Node
	t.left, dups = t.left.detachMin(min)
	return t, dups
}

// appendRight hangs sub off the rightmost node of t. Every key in sub must be
// >= every key in t.
func (t *Node) appendRight(sub *Node) *Node {
	if t == nil {
		return sub
	}
	t.right = t.right.appendRight(sub)
	return t
}

// Destroy detaches every node in postorder and returns the empty tree. Nodes
// still referenced elsewhere (e.g., from Find) are left as isolated leaves.
func (t *Node) Destroy() *Node {
	if t == nil {
		return t
	}
	t.left = t.left.Destroy()
	t.right = t.right.Destroy()
	return nil
}
