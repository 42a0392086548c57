package tree

// Node of a tree
type Node struct {
	key   int
	left  *Node
	right *Node
}

// Key returns the key held by the node
func (n *Node) Key() int {
	return n.key
}

// Left returns the node's left child
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the node's right child
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf returns true if the node has no children
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the subtree
// is empty
func (n *Node) Min() *Node {
	if n == nil {
		return nil
	}

	curr := n
	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order. It returns nil if the subtree
// is empty
func (n *Node) Max() *Node {
	if n == nil {
		return nil
	}

	curr := n
	for curr.right != nil {
		curr = curr.right
	}

	return curr
}

// MaxDepth returns the number of nodes on the longest
// path from n down to a leaf. A nil node has depth 0
func (n *Node) MaxDepth() int {
	if n == nil {
		return 0
	}

	l, r := n.left.MaxDepth(), n.right.MaxDepth()
	if l > r {
		return l + 1
	}

	return r + 1
}

// MinDepth returns the number of nodes on the shortest
// path from n down to a leaf. A node with a single child
// is not a leaf, so the path continues through that child
func (n *Node) MinDepth() int {
	if n == nil {
		return 0
	}

	if n.left != nil && n.right != nil {
		l, r := n.left.MinDepth(), n.right.MinDepth()
		if l < r {
			return l + 1
		}

		return r + 1
	}

	// the missing side contributes 0
	return n.left.MinDepth() + n.right.MinDepth() + 1
}

// Find returns the first node in the subtree that
// holds key, or nil if there is none
func (n *Node) Find(key int) *Node {
	curr := n

	for curr != nil {
		switch {
		case curr.key == key:
			return curr
		case key > curr.key:
			curr = curr.right
		default:
			curr = curr.left
		}
	}

	return nil
}

// Tree is a binary search tree of integer keys. No balancing
// is applied, so its shape depends exclusively on the order of
// the insert and delete operations performed on it.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	root *Node
	len  int
}

// New creates an empty tree
func New() *Tree {
	return &Tree{}
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree) Root() *Node {
	return t.root
}

// MaxDepth returns the height of the tree
func (t *Tree) MaxDepth() int {
	return t.root.MaxDepth()
}

// MinDepth returns the depth of the shallowest leaf
func (t *Tree) MinDepth() int {
	return t.root.MinDepth()
}

// FindMax returns the highest key in the tree
func (t *Tree) FindMax() (int, error) {
	if t.Empty() {
		return 0, ErrEmptyTree
	}

	return t.root.Max().key, nil
}

// FindMin returns the lowest key in the tree
func (t *Tree) FindMin() (int, error) {
	if t.Empty() {
		return 0, ErrEmptyTree
	}

	return t.root.Min().key, nil
}

// Search returns the first node met on the way down from
// the root that holds key. It returns nil if the key is
// not in the tree
func (t *Tree) Search(key int) *Node {
	return t.root.Find(key)
}

// Contains returns true if the tree contains at
// least one node with key
func (t *Tree) Contains(key int) bool {
	return t.Search(key) != nil
}

// FindParent returns the parent of n. Nodes do not keep a link
// to their parent, so the tree is walked breadth first, right
// child before left child, until a node is found that holds n
// as one of its children. It returns nil for the root and for
// nodes that do not belong to the tree.
func (t *Tree) FindParent(n *Node) *Node {
	if n == nil || n == t.root || t.root == nil {
		return nil
	}

	queue := []*Node{t.root}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr.left == n || curr.right == n {
			return curr
		}

		if curr.right != nil {
			queue = append(queue, curr.right)
		}
		if curr.left != nil {
			queue = append(queue, curr.left)
		}
	}

	return nil
}
