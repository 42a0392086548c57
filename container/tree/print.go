package tree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Render writes a sideways ASCII drawing of the tree to w, the right
// subtree above each node and the left one below it. It returns the
// height of the tree
func (t *Tree) Render(w io.Writer) int {
	return render(w, t.root, "", rootBranch)
}

func render(w io.Writer, n *Node, prefix string, br branch) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = render(w, n.right, prefix+t, rightBranch)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ %d\n", prefix, n.key)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ %d\n", prefix, n.key)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ %d\n", prefix, n.key)
	}

	ld := 0
	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = render(w, n.left, prefix+t, leftBranch)
	}

	if rd > ld {
		return 1 + rd
	}

	return 1 + ld
}
