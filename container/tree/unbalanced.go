package tree

// Insert a key into the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm. Keys equal
// to a node's key go to its left subtree
func (t *Tree) Insert(key int) {
	n := &Node{key: key}
	t.len++

	if t.root == nil {
		t.root = n
		return
	}

	var parent *Node
	for curr := t.root; curr != nil; {
		parent = curr
		if curr.key < key {
			curr = curr.right
		} else {
			curr = curr.left
		}
	}

	if parent.key < key {
		parent.right = n
	} else {
		parent.left = n
	}
}

// Successor returns the node that follows the node holding key
// in an in order walk, or nil if there is none or the key is not
// in the tree.
//
// When the node is a right child with no right subtree and its key
// is higher than the root's, it is taken to be the last node of the
// tree and nil is returned without walking up the ancestors
func (t *Tree) Successor(key int) *Node {
	n := t.Search(key)
	if n == nil {
		return nil
	}

	if n == t.root && n.right == nil {
		return nil
	}

	if n.right != nil {
		return n.right.Min()
	}

	parent := t.FindParent(n)
	if n == parent.left {
		return parent
	}

	if n.key > t.root.key {
		return nil
	}

	for grand := t.FindParent(parent); grand != nil; grand = t.FindParent(grand) {
		if parent == grand.left {
			return grand
		}
		parent = grand
	}

	return nil
}

// Delete the first node met on the way down from the root that
// holds key. It returns an error matching ErrKeyNotFound and leaves
// the tree untouched when there is no such node.
//
// A node with two children takes the key of its successor, which is
// removed in its place. With duplicate keys this can leave a node
// whose right subtree holds keys equal to its own; search still
// reaches every key since no right subtree holds a lower one
func (t *Tree) Delete(key int) error {
	n := t.Search(key)
	if n == nil {
		return keyNotFound(key)
	}

	switch {
	case n.left == nil && n.right == nil:
		t.transplant(n, nil)
	case n.right == nil:
		t.transplant(n, n.left)
	case n.left == nil:
		t.transplant(n, n.right)
	default:
		// the successor is the leftmost node of the right subtree. It is
		// spliced out by identity, a search by key could meet another
		// node holding the same key first
		succ := t.Successor(n.key)
		t.transplant(succ, succ.right)
		n.key = succ.key
	}

	t.len--
	return nil
}

// transplant replaces the subtree rooted at u, as a child of its
// parent, with the subtree rooted at v
func (t *Tree) transplant(u *Node, v *Node) {
	if u == t.root {
		t.root = v
		return
	}

	parent := t.FindParent(u)
	if parent.right == u {
		parent.right = v
	} else {
		parent.left = v
	}
}
