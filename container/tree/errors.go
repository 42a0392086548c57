package tree

import (
	"fmt"

	errs "github.com/593413198/bst/errors"
)

var (
	// ErrKeyNotFound is returned when an operation targets a key
	// that is not in the tree. Use errors.Is to match it
	ErrKeyNotFound = errs.New(errs.CodeKeyNotFound, "key not found")

	// ErrEmptyTree is returned by queries on a tree with no nodes
	ErrEmptyTree = errs.New(errs.CodeEmptyTree, "empty tree")
)

func keyNotFound(key int) *errs.Error {
	return errs.New(errs.CodeKeyNotFound, fmt.Sprintf("key %d not found", key))
}
