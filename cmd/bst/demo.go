package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/593413198/bst/container/tree"
	"github.com/dustin/go-humanize"
)

func seed(keys []int) *tree.Tree {
	t := tree.New()
	for _, k := range keys {
		t.Insert(k)
	}

	return t
}

func join(keys []int) string {
	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, strconv.Itoa(k))
	}

	return strings.Join(s, " ")
}

// demo prints the level order walk, one depth per line, followed
// by the three depth first walks
func demo(w io.Writer, keys []int) error {
	t := seed(keys)

	levels, err := t.LevelOrder()
	if err != nil {
		_, err = fmt.Fprintln(w, "empty tree")
		return err
	}

	for _, level := range levels {
		fmt.Fprintln(w, join(level))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "pre order:  %s\n", join(t.PreOrder()))
	fmt.Fprintf(w, "in order:   %s\n", join(t.InOrder()))
	fmt.Fprintf(w, "post order: %s\n", join(t.PostOrder()))
	_, err = fmt.Fprintf(w, "\n%s nodes, max depth %d, min depth %d\n",
		humanize.Comma(int64(t.Len())), t.MaxDepth(), t.MinDepth())
	return err
}

func render(w io.Writer, keys []int) error {
	t := seed(keys)
	if t.Empty() {
		_, err := fmt.Fprintln(w, "empty tree")
		return err
	}

	t.Render(w)
	return nil
}
