package errors

import (
	stderr "errors"
	"testing"

	"github.com/593413198/bst/logs"
	perrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesCode(t *testing.T) {
	err := New(CodeKeyNotFound, "key 7 not found")

	assert.True(t, stderr.Is(err, New(CodeKeyNotFound, "")))
	assert.False(t, stderr.Is(err, New(CodeEmptyTree, "")))
}

func TestErrorIsThroughWrap(t *testing.T) {
	err := perrors.Wrap(New(CodeEmptyTree, "empty tree"), "level order")

	assert.True(t, stderr.Is(err, New(CodeEmptyTree, "")))
	assert.Equal(t, "level order: empty tree", err.Error())
}

func TestErrorLog(t *testing.T) {
	fields := logs.MapFields{}
	New(CodeInvalidKey, "bad key").Log(fields)

	assert.Equal(t, CodeInvalidKey, fields["error_code"])
	assert.Equal(t, "bad key", fields["description"])
}
