package bst

// InOrder returns the keys in ascending order (left subtree, node, right
// subtree). The result is never nil.
func (t *Node) InOrder() []int {
	return t.appendInOrder([]int{})
}

func (t *Node) appendInOrder(out []int) []int {
	if t == nil {
		return out
	}
	out = t.left.appendInOrder(out)
	out = append(out, t.value)
	return t.right.appendInOrder(out)
}

// Walk calls f on each key in ascending order until f returns false. It uses an
// explicit stack rather than recursion.
func (t *Node) Walk(f func(value int) bool) {
	s := newNodeStack()
	s.pushLeftSpine(t)
	for {
		n, ok := s.Pop()
		if !ok {
			break
		}
		if !f(n.value) {
			break
		}
		s.pushLeftSpine(n.right)
	}
}
