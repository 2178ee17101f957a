// Package avltree 是基于 bst 的 AVL 有序索引
//
// 每个节点存一个平衡值（右子树高度减左子树高度），插入和删除之后
// 只沿着父指针往上做局部修正，不重新计算高度。
// 非并发安全：多个 goroutine 同时访问时，调用方需要用一把锁串行化
// Insert / Remove / Find。
package avltree

import (
	"fmt"
	"iter"

	"ordered_index/pkg/bst"
	"ordered_index/pkg/treeprinter"

	"golang.org/x/exp/constraints"
)

type AVLTree[K constraints.Ordered, V any] struct {
	tree  *bst.Tree[K, V]
	stats Stats
}

func New[K constraints.Ordered, V any]() *AVLTree[K, V] {
	return &AVLTree[K, V]{tree: bst.New[K, V]()}
}

// Find 精确查找
func (t *AVLTree[K, V]) Find(key K) (V, bool) {
	return t.tree.Find(key)
}

func (t *AVLTree[K, V]) Contains(key K) bool { return t.tree.Contains(key) }
func (t *AVLTree[K, V]) Len() int            { return t.tree.Len() }
func (t *AVLTree[K, V]) Empty() bool         { return t.tree.Empty() }

// Height 空树为 0
func (t *AVLTree[K, V]) Height() int { return t.tree.Height() }

// Root 用于打印和校验，调用方不应修改返回的节点
func (t *AVLTree[K, V]) Root() *bst.Node[K, V] { return t.tree.Root() }

// All 按键升序遍历
func (t *AVLTree[K, V]) All() iter.Seq2[K, V] { return t.tree.All() }

func (t *AVLTree[K, V]) Keys() []K { return t.tree.Keys() }

// Min 返回最小键，空树时 ok 为 false
func (t *AVLTree[K, V]) Min() (key K, value V, ok bool) {
	if n := t.tree.Min(); n != nil {
		return n.Key(), n.Value(), true
	}
	return key, value, false
}

func (t *AVLTree[K, V]) Max() (key K, value V, ok bool) {
	if n := t.tree.Max(); n != nil {
		return n.Key(), n.Value(), true
	}
	return key, value, false
}

// Clear 释放所有节点，统计信息一起清零
func (t *AVLTree[K, V]) Clear() {
	t.tree.Clear()
	t.stats = Stats{}
}

// PrintTree 每个节点显示为 format(key, value) 加平衡因子
func (t *AVLTree[K, V]) PrintTree(format func(K, V) string, style treeprinter.Style, direction treeprinter.Direction) string {
	return t.tree.PrintTree(func(n *bst.Node[K, V]) string {
		return fmt.Sprintf("%s(bf=%d)", format(n.Key(), n.Value()), n.BalanceFactor())
	}, style, direction)
}
