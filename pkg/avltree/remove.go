package avltree

import (
	"ordered_index/pkg/bst"
	"ordered_index/pkg/logutil"
)

// Remove 删除键，不存在时什么也不做，返回是否真的删除了
// 有两个孩子的节点先和中序前驱交换 key/value，实际摘掉的是前驱所在的节点
func (t *AVLTree[K, V]) Remove(key K) bool {
	t.beginOp()

	n := t.tree.InternalFind(key)
	if n == nil {
		return false
	}
	if n.Left() != nil && n.Right() != nil {
		pred := t.tree.Predecessor(n)
		t.nodeSwap(n, pred)
		n = pred
	}

	parent, diff := t.tree.Detach(n)
	if parent != nil {
		t.removeFix(parent, int8(diff))
	}
	return true
}

// nodeSwap 只交换载荷，平衡值描述的是位置上的子树形状，保持不动
func (t *AVLTree[K, V]) nodeSwap(n1, n2 *bst.Node[K, V]) {
	t.tree.NodeSwap(n1, n2)
}

// removeFix 从被摘节点的父节点往上修
// diff 是 node 平衡值要加的量: 左边变矮为 1，右边变矮为 -1
// 子树高度不变时提前结束，否则一直传到根，每一层都可能旋转
func (t *AVLTree[K, V]) removeFix(node *bst.Node[K, V], diff int8) {
	for node != nil {
		nParent := node.Parent()
		var nDiff int8
		if nParent != nil {
			if nParent.Left() == node {
				nDiff = 1
			} else {
				nDiff = -1
			}
		}

		switch node.Balance() {
		case diff:
			// 另一侧已经高出 2，c 是高的那个孩子
			c := node.Child(int(diff))
			switch c.Balance() {
			case diff:
				// zig-zig，旋转后子树变矮
				t.rotate(node, -diff)
				node.SetBalance(0)
				c.SetBalance(0)
				t.stats.countSingle()
			case 0:
				// 旋转后高度不变，到此为止
				t.rotate(node, -diff)
				node.SetBalance(diff)
				c.SetBalance(-diff)
				t.stats.countSingle()
				logutil.Debug("remove fix-up stops at %v", c.Key())
				return
			default:
				// zig-zag
				g := c.Child(int(-diff))
				t.rotate(c, diff)
				t.rotate(node, -diff)
				switch g.Balance() {
				case diff:
					node.SetBalance(-diff)
					c.SetBalance(0)
				case 0:
					node.SetBalance(0)
					c.SetBalance(0)
				default:
					node.SetBalance(0)
					c.SetBalance(diff)
				}
				g.SetBalance(0)
				t.stats.countDouble()
			}
		case 0:
			node.SetBalance(diff)
			logutil.Debug("remove fix-up stops at %v", node.Key())
			return
		default:
			node.SetBalance(0)
		}

		node, diff = nParent, nDiff
	}
}
