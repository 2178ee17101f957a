package avltree

import (
	"fmt"

	"ordered_index/pkg/bst"
	"ordered_index/pkg/logutil"
)

// rotateLeft 把 node 的右孩子提上来顶替 node，node 变成它的左孩子
// 只改链接，不碰平衡值
func (t *AVLTree[K, V]) rotateLeft(node *bst.Node[K, V]) {
	if node == nil || node.Right() == nil {
		panic(fmt.Sprintf("avltree: rotate left without right child at %v", keyOf(node)))
	}
	child := node.Right()
	parent := node.Parent()

	node.SetRight(child.Left())
	if child.Left() != nil {
		child.Left().SetParent(node)
	}
	child.SetLeft(node)
	t.replaceChild(parent, node, child)
	node.SetParent(child)

	logutil.Debug("rotate left at %v, %v promoted", node.Key(), child.Key())
}

// rotateRight 是 rotateLeft 的镜像
func (t *AVLTree[K, V]) rotateRight(node *bst.Node[K, V]) {
	if node == nil || node.Left() == nil {
		panic(fmt.Sprintf("avltree: rotate right without left child at %v", keyOf(node)))
	}
	child := node.Left()
	parent := node.Parent()

	node.SetLeft(child.Right())
	if child.Right() != nil {
		child.Right().SetParent(node)
	}
	child.SetRight(node)
	t.replaceChild(parent, node, child)
	node.SetParent(child)

	logutil.Debug("rotate right at %v, %v promoted", node.Key(), child.Key())
}

// rotate 按方向分发: -1 左旋, 1 右旋
func (t *AVLTree[K, V]) rotate(node *bst.Node[K, V], side int8) {
	if side == -1 {
		t.rotateLeft(node)
	} else {
		t.rotateRight(node)
	}
}

// replaceChild 让 child 占据 old 在 parent 下的位置，parent 为空时 child 成为根
func (t *AVLTree[K, V]) replaceChild(parent, old, child *bst.Node[K, V]) {
	child.SetParent(parent)
	switch {
	case parent == nil:
		t.tree.SetRoot(child)
	case parent.Left() == old:
		parent.SetLeft(child)
	default:
		parent.SetRight(child)
	}
}

func keyOf[K any, V any](n *bst.Node[K, V]) any {
	if n == nil {
		return "<nil>"
	}
	return n.Key()
}
