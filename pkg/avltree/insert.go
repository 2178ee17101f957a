package avltree

import (
	"ordered_index/pkg/bst"
	"ordered_index/pkg/logutil"
)

// Insert 插入或覆盖
func (t *AVLTree[K, V]) Insert(key K, value V) {
	t.beginOp()

	n, created := t.tree.InsertLeaf(key, value)
	if !created {
		return
	}
	parent := n.Parent()
	if parent == nil {
		return
	}

	if n.IsLeftChild() {
		parent.UpdateBalance(-1)
	} else {
		parent.UpdateBalance(1)
	}
	if parent.Balance() != 0 {
		t.insertFix(parent, n)
	}
}

// insertFix 从新叶子的父节点往上修平衡值
// 进入时 parent 的平衡值刚被调整过且不为 0，也就是 parent 子树长高了
// 最多旋转一次（单旋或者双旋）
func (t *AVLTree[K, V]) insertFix(parent, node *bst.Node[K, V]) {
	for {
		grandParent := parent.Parent()
		if grandParent == nil {
			return
		}

		side := int8(1)
		if grandParent.Left() == parent {
			side = -1
		}
		grandParent.UpdateBalance(side)

		switch grandParent.Balance() {
		case 0:
			return
		case side:
			node, parent = parent, grandParent
			continue
		}

		childSide := int8(1)
		if parent.Left() == node {
			childSide = -1
		}

		if childSide == side {
			// zig-zig
			t.rotate(grandParent, -side)
			grandParent.SetBalance(0)
			parent.SetBalance(0)
			t.stats.countSingle()
		} else {
			// zig-zag
			t.rotate(parent, side)
			t.rotate(grandParent, -side)
			switch node.Balance() {
			case side:
				parent.SetBalance(0)
				grandParent.SetBalance(-side)
			case 0:
				parent.SetBalance(0)
				grandParent.SetBalance(0)
			default:
				parent.SetBalance(side)
				grandParent.SetBalance(0)
			}
			node.SetBalance(0)
			t.stats.countDouble()
		}
		logutil.Debug("insert fix-up rotated at %v", grandParent.Key())
		return
	}
}
