package testutils

import (
	"math"
	"testing"

	"ordered_index/pkg/bst"

	"golang.org/x/exp/constraints"
)

// SubtreeHeight 递归计算高度，空子树为 0，不读节点里存的平衡值
func SubtreeHeight[K any, V any](n *bst.Node[K, V]) int {
	if n == nil {
		return 0
	}
	return max(SubtreeHeight(n.Left()), SubtreeHeight(n.Right())) + 1
}

// InOrderKeys 递归中序遍历，只依赖左右孩子指针
func InOrderKeys[K any, V any](n *bst.Node[K, V]) []K {
	var keys []K
	var walk func(*bst.Node[K, V])
	walk = func(n *bst.Node[K, V]) {
		if n == nil {
			return
		}
		walk(n.Left())
		keys = append(keys, n.Key())
		walk(n.Right())
	}
	walk(n)
	return keys
}

// HeightBound AVL 树 n 个节点时高度的上界 1.44*log2(n+2)
func HeightBound(n int) float64 {
	return 1.4405 * math.Log2(float64(n+2))
}

// CheckAVL 用独立算出的高度核对每个节点，返回树高
func CheckAVL[K constraints.Ordered, V any](t testing.TB, root *bst.Node[K, V]) int {
	t.Helper()
	if root != nil && root.Parent() != nil {
		t.Fatalf("根节点 %v 的 parent 不为空", root.Key())
	}

	var check func(n *bst.Node[K, V]) int
	check = func(n *bst.Node[K, V]) int {
		if n == nil {
			return 0
		}
		if l := n.Left(); l != nil {
			if l.Parent() != n {
				t.Fatalf("节点 %v 的左孩子 %v parent 指向错误", n.Key(), l.Key())
			}
			if !(l.Key() < n.Key()) {
				t.Fatalf("键序错误: 左孩子 %v 不小于 %v", l.Key(), n.Key())
			}
		}
		if r := n.Right(); r != nil {
			if r.Parent() != n {
				t.Fatalf("节点 %v 的右孩子 %v parent 指向错误", n.Key(), r.Key())
			}
			if !(n.Key() < r.Key()) {
				t.Fatalf("键序错误: 右孩子 %v 不大于 %v", r.Key(), n.Key())
			}
		}
		hl, hr := check(n.Left()), check(n.Right())
		if bf := n.BalanceFactor(); bf != hl-hr {
			t.Fatalf("节点 %v 平衡因子 %d, 实际高度差 %d", n.Key(), bf, hl-hr)
		}
		if hl-hr > 1 || hr-hl > 1 {
			t.Fatalf("节点 %v 失衡: 高度差 %d", n.Key(), hl-hr)
		}
		return max(hl, hr) + 1
	}
	h := check(root)

	keys := InOrderKeys(root)
	for i := 1; i < len(keys); i++ {
		if !(keys[i-1] < keys[i]) {
			t.Fatalf("中序遍历不是严格递增: %v 后面是 %v", keys[i-1], keys[i])
		}
	}
	if float64(h) > HeightBound(len(keys)) {
		t.Fatalf("树高 %d 超过上界 %.2f (n=%d)", h, HeightBound(len(keys)), len(keys))
	}
	return h
}
