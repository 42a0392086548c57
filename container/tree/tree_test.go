package tree

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var scenarioKeys = []int{10, 5, 15, 3, 7, 20, 4, 6}

func newTreeWith(keys ...int) *Tree {
	tree := New()
	for _, k := range keys {
		tree.Insert(k)
	}

	return tree
}

func prePopulatedTree() *Tree {
	return newTreeWith(scenarioKeys...)
}

// levels lays the tree out as a complete binary tree, one slice per
// depth, with nil where there is no node
func levels(tree *Tree) [][]*Node {
	result := [][]*Node{{tree.root}}
	currLevel := 0

	for {
		nels := int(math.Pow(2, float64(currLevel+1)))
		result = append(result, make([]*Node, nels))
		nodesAdded := 0

		for i := 0; i < nels/2; i++ {
			if result[currLevel][i] != nil {
				nodesAdded++
				result[currLevel+1][2*i] = result[currLevel][i].left
				result[currLevel+1][2*i+1] = result[currLevel][i].right
			}
		}

		currLevel++
		if nodesAdded == 0 {
			break
		}
	}

	// the last level is empty so it can be removed
	return result[:currLevel-1]
}

func assertEqualTree(t *testing.T, expected [][]interface{}, tree *Tree) {
	levels := levels(tree)
	assert.Equal(t, len(expected), len(levels))
	for level := 0; level < len(expected) && level < len(levels); level++ {
		assert.Equal(t, len(expected[level]), len(levels[level]))
		for col := 0; col < len(expected[level]) && col < len(levels[level]); col++ {
			if expected[level][col] == nil {
				assert.Nil(t, levels[level][col], "level %d col %d", level, col)
			} else if assert.NotNil(t, levels[level][col], "level %d col %d", level, col) {
				assert.Equal(t, expected[level][col], levels[level][col].key)
			}
		}
	}
}

func TestRootNil(t *testing.T) {
	tree := New()
	assert.Nil(t, tree.Root())
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
}

func TestRootNode(t *testing.T) {
	tree := newTreeWith(1)
	assert.Equal(t, 1, tree.Root().Key())
	assert.True(t, tree.Root().IsLeaf())
	assert.Equal(t, 1, tree.Len())
}

func TestDepthEmpty(t *testing.T) {
	tree := New()
	assert.Equal(t, 0, tree.MaxDepth())
	assert.Equal(t, 0, tree.MinDepth())
}

func TestDepthSingleNode(t *testing.T) {
	tree := newTreeWith(42)
	assert.Equal(t, 1, tree.MaxDepth())
	assert.Equal(t, 1, tree.MinDepth())
}

func TestDepthScenario(t *testing.T) {
	tree := prePopulatedTree()
	assert.Equal(t, 4, tree.MaxDepth())
	// 15 has a single child so the shallowest leaf is 20, at depth 3
	assert.Equal(t, 3, tree.MinDepth())
}

func TestMinDepthFollowsSingleChildChain(t *testing.T) {
	tree := newTreeWith(10, 5, 4, 3)
	assert.Equal(t, 4, tree.MaxDepth())
	assert.Equal(t, 4, tree.MinDepth())
}

func TestMinDepthTwoChildrenPicksShallowerSide(t *testing.T) {
	tree := newTreeWith(10, 5, 20, 25, 30)
	assert.Equal(t, 4, tree.MaxDepth())
	assert.Equal(t, 2, tree.MinDepth())
}

func TestFindMinMax(t *testing.T) {
	tree := prePopulatedTree()

	max, err := tree.FindMax()
	assert.NoError(t, err)
	assert.Equal(t, 20, max)

	min, err := tree.FindMin()
	assert.NoError(t, err)
	assert.Equal(t, 3, min)
}

func TestFindMinMaxEmpty(t *testing.T) {
	tree := New()

	_, err := tree.FindMax()
	assert.ErrorIs(t, err, ErrEmptyTree)

	_, err = tree.FindMin()
	assert.ErrorIs(t, err, ErrEmptyTree)
}

func TestSearchOK(t *testing.T) {
	tree := prePopulatedTree()

	for _, k := range scenarioKeys {
		n := tree.Search(k)
		if assert.NotNil(t, n) {
			assert.Equal(t, k, n.Key())
		}
	}
}

func TestSearchNotFound(t *testing.T) {
	tree := prePopulatedTree()

	assert.Nil(t, tree.Search(1000))
	assert.Nil(t, tree.Search(-1))
	assert.Nil(t, tree.Search(8))
	assert.False(t, tree.Contains(8))
	assert.Nil(t, New().Search(1))
}

func TestSearchDoesNotMutate(t *testing.T) {
	tree := prePopulatedTree()
	before := tree.PreOrder()

	tree.Search(6)
	tree.Search(999)

	assert.Equal(t, before, tree.PreOrder())
}

func TestFindParentRoot(t *testing.T) {
	tree := prePopulatedTree()
	assert.Nil(t, tree.FindParent(tree.Root()))
}

func TestFindParentOK(t *testing.T) {
	tree := prePopulatedTree()

	cases := map[int]int{5: 10, 15: 10, 3: 5, 7: 5, 20: 15, 4: 3, 6: 7}
	for child, parent := range cases {
		p := tree.FindParent(tree.Search(child))
		if assert.NotNil(t, p, "parent of %d", child) {
			assert.Equal(t, parent, p.Key(), "parent of %d", child)
		}
	}
}

func TestFindParentForeignNode(t *testing.T) {
	tree := prePopulatedTree()
	assert.Nil(t, tree.FindParent(&Node{key: 6}))
	assert.Nil(t, tree.FindParent(nil))
}

func TestFindParentUsesIdentity(t *testing.T) {
	tree := newTreeWith(5, 5, 5)

	second := tree.Root().Left()
	third := second.Left()

	assert.Same(t, tree.Root(), tree.FindParent(second))
	assert.Same(t, second, tree.FindParent(third))
}

func TestRenderOneLevel(t *testing.T) {
	tree := newTreeWith(1, 0, 2)
	var sb strings.Builder

	depth := tree.Render(&sb)

	assert.Equal(t, 2, depth)
	assert.Equal(t,
		"       /------+ 2\n"+
			"|------+ 1\n"+
			"       \\------+ 0\n",
		sb.String())
}

func TestRenderEmpty(t *testing.T) {
	var sb strings.Builder
	assert.Equal(t, 0, New().Render(&sb))
	assert.Equal(t, "", sb.String())
}
