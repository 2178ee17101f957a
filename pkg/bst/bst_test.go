package bst_test

import (
	"testing"

	"ordered_index/internal/testutils"
	"ordered_index/pkg/bst"
	"ordered_index/pkg/treeprinter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(keys ...int) *bst.Tree[int, string] {
	tr := bst.New[int, string]()
	for _, k := range keys {
		tr.InsertLeaf(k, "")
	}
	return tr
}

func TestInsertLeafOverwrites(t *testing.T) {
	tr := bst.New[int, string]()
	n1, created := tr.InsertLeaf(5, "a")
	require.True(t, created)
	n2, created := tr.InsertLeaf(5, "b")
	assert.False(t, created)
	assert.Same(t, n1, n2)
	assert.Equal(t, 1, tr.Len())

	v, ok := tr.Find(5)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestFindMissing(t *testing.T) {
	tr := buildTree(4, 2, 6)
	v, ok := tr.Find(3)
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Nil(t, tr.InternalFind(3))
	assert.True(t, tr.Contains(6))
}

func TestPredecessorSuccessor(t *testing.T) {
	tr := buildTree(50, 30, 70, 20, 40, 60, 80, 35)
	tests := []struct {
		key        int
		pred, succ int // 0 表示没有
	}{
		{50, 40, 60},
		{35, 30, 40},
		{40, 35, 50},
		{20, 0, 30},
		{80, 70, 0},
		{60, 50, 70},
	}
	for _, tt := range tests {
		n := tr.InternalFind(tt.key)
		require.NotNil(t, n)
		if p := tr.Predecessor(n); tt.pred == 0 {
			assert.Nil(t, p, "pred of %d", tt.key)
		} else {
			assert.Equal(t, tt.pred, p.Key(), "pred of %d", tt.key)
		}
		if s := tr.Successor(n); tt.succ == 0 {
			assert.Nil(t, s, "succ of %d", tt.key)
		} else {
			assert.Equal(t, tt.succ, s.Key(), "succ of %d", tt.key)
		}
	}
	assert.Equal(t, 20, tr.Min().Key())
	assert.Equal(t, 80, tr.Max().Key())
}

func TestNodeSwapKeepsShapeAndBalance(t *testing.T) {
	tr := bst.New[int, string]()
	a, _ := tr.InsertLeaf(2, "two")
	b, _ := tr.InsertLeaf(1, "one")
	a.SetBalance(-1)

	tr.NodeSwap(a, b)

	assert.Same(t, a, tr.Root())
	assert.Equal(t, 1, a.Key())
	assert.Equal(t, "one", a.Value())
	assert.Equal(t, 2, b.Key())
	assert.Equal(t, "two", b.Value())
	assert.Equal(t, int8(-1), a.Balance())
	assert.Equal(t, int8(0), b.Balance())
	assert.Same(t, b, a.Left())
}

func TestDetach(t *testing.T) {
	tr := buildTree(50, 30, 70, 20, 80)

	parent, diff := tr.Detach(tr.InternalFind(30))
	assert.Equal(t, 50, parent.Key())
	assert.Equal(t, 1, diff)
	assert.Equal(t, 20, tr.Root().Left().Key())
	assert.Same(t, tr.Root(), tr.Root().Left().Parent())

	parent, diff = tr.Detach(tr.InternalFind(80))
	assert.Equal(t, 70, parent.Key())
	assert.Equal(t, -1, diff)

	parent, diff = tr.Detach(tr.InternalFind(70))
	assert.Equal(t, 50, parent.Key())
	assert.Equal(t, -1, diff)

	assert.Panics(t, func() {
		tr2 := buildTree(2, 1, 3)
		tr2.Detach(tr2.Root())
	})

	parent, diff = tr.Detach(tr.Root())
	assert.Nil(t, parent)
	assert.Equal(t, 0, diff)
	assert.Equal(t, 20, tr.Root().Key())
	assert.Nil(t, tr.Root().Parent())
	assert.Equal(t, 1, tr.Len())
}

func TestAllAndHeight(t *testing.T) {
	tr := buildTree(1, 2, 3, 4)
	assert.Equal(t, 4, tr.Height())
	assert.Equal(t, []int{1, 2, 3, 4}, tr.Keys())
	assert.Equal(t, testutils.InOrderKeys(tr.Root()), tr.Keys())
	assert.Equal(t, testutils.SubtreeHeight(tr.Root()), tr.Height())

	assert.Equal(t, 0, bst.New[int, int]().Height())
}

func TestClear(t *testing.T) {
	tr := buildTree(2, 1, 3)
	left := tr.Root().Left()
	tr.Clear()
	assert.True(t, tr.Empty())
	assert.Equal(t, 0, tr.Len())
	assert.Nil(t, left.Parent())
}

func TestPrintTree(t *testing.T) {
	tr := buildTree(2, 1, 3)
	out := tr.PrintTree(func(n *bst.Node[int, string]) string {
		return string(rune('0' + n.Key()))
	}, treeprinter.Unicode, treeprinter.RightRootLeft)
	want := "    ┌──>3\n" +
		"│── 2\n" +
		"    └──>1\n"
	assert.Equal(t, want, out)
}
