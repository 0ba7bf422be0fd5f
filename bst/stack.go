package bst

// nodeStack holds the path of pending ancestors during an iterative in-order
// walk.
type nodeStack struct {
	elements []*Node
}

func newNodeStack() *nodeStack {
	return &nodeStack{
		elements: []*Node{},
	}
}

func (s *nodeStack) Push(n *Node) {
	s.elements = append(s.elements, n)
}

// pushLeftSpine pushes n and its chain of left children.
func (s *nodeStack) pushLeftSpine(n *Node) {
	var cur = n
	for cur != nil {
		s.Push(cur)
		cur = cur.left
	}
}

// Pop returns the most recently pushed node. The boolean indicates success,
// which is false if the stack was empty.
func (s *nodeStack) Pop() (*Node, bool) {
	if len(s.elements) == 0 {
		return nil, false
	}
	n := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return n, true
}
