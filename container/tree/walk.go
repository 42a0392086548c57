package tree

// PreOrderWalk calls fn for the node, then for its left
// subtree and then for its right subtree
func (n *Node) PreOrderWalk(fn func(*Node)) {
	if n == nil {
		return
	}

	fn(n)
	n.left.PreOrderWalk(fn)
	n.right.PreOrderWalk(fn)
}

// InOrderWalk calls fn for the left subtree, then for the
// node and then for its right subtree. Keys are visited
// in non decreasing order
func (n *Node) InOrderWalk(fn func(*Node)) {
	if n == nil {
		return
	}

	n.left.InOrderWalk(fn)
	fn(n)
	n.right.InOrderWalk(fn)
}

// PostOrderWalk calls fn for the left subtree, then for the
// right subtree and then for the node itself
func (n *Node) PostOrderWalk(fn func(*Node)) {
	if n == nil {
		return
	}

	n.left.PostOrderWalk(fn)
	n.right.PostOrderWalk(fn)
	fn(n)
}

// LevelOrderWalk calls fn for every node of the subtree breadth first,
// left child before right child, together with the node's depth
// relative to n, which starts at 0. All the nodes of one depth are
// visited before the first node of the next one
func (n *Node) LevelOrderWalk(fn func(node *Node, level int)) {
	if n == nil {
		return
	}

	nodes := []*Node{n}
	levels := []int{0}

	for len(nodes) > 0 {
		curr, level := nodes[0], levels[0]
		nodes, levels = nodes[1:], levels[1:]

		fn(curr, level)

		if curr.left != nil {
			nodes = append(nodes, curr.left)
			levels = append(levels, level+1)
		}
		if curr.right != nil {
			nodes = append(nodes, curr.right)
			levels = append(levels, level+1)
		}
	}
}

// PreOrderWalk implements a pre order walk on the tree
func (t *Tree) PreOrderWalk(fn func(*Node)) {
	t.root.PreOrderWalk(fn)
}

// InOrderWalk implements an in order walk on the tree
func (t *Tree) InOrderWalk(fn func(*Node)) {
	t.root.InOrderWalk(fn)
}

// PostOrderWalk implements a post order walk on the tree
func (t *Tree) PostOrderWalk(fn func(*Node)) {
	t.root.PostOrderWalk(fn)
}

// LevelOrderWalk implements a breadth first walk on the tree
func (t *Tree) LevelOrderWalk(fn func(node *Node, level int)) {
	t.root.LevelOrderWalk(fn)
}

// PreOrder returns the keys of the tree in pre order
func (t *Tree) PreOrder() []int {
	return t.collect(t.PreOrderWalk)
}

// InOrder returns the keys of the tree in order
func (t *Tree) InOrder() []int {
	return t.collect(t.InOrderWalk)
}

// PostOrder returns the keys of the tree in post order
func (t *Tree) PostOrder() []int {
	return t.collect(t.PostOrderWalk)
}

// LevelOrder returns the keys of the tree grouped by depth, the
// root alone in the first group. It returns ErrEmptyTree when the
// tree has no nodes
func (t *Tree) LevelOrder() ([][]int, error) {
	if t.Empty() {
		return nil, ErrEmptyTree
	}

	var res [][]int
	t.LevelOrderWalk(func(n *Node, level int) {
		if level == len(res) {
			res = append(res, nil)
		}
		res[level] = append(res[level], n.key)
	})

	return res, nil
}

func (t *Tree) collect(walk func(func(*Node))) []int {
	keys := make([]int, 0, t.len)
	walk(func(n *Node) {
		keys = append(keys, n.key)
	})

	return keys
}
