package bst

import (
	"fmt"
	"iter"

	"ordered_index/pkg/treeprinter"

	"golang.org/x/exp/constraints"
)

// Tree 是不做平衡的二叉搜索树，AVL 树在它之上做修正
// 非并发安全，多个调用方需要在外部加锁
type Tree[K constraints.Ordered, V any] struct {
	root *Node[K, V]
	size int
}

func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

func (t *Tree[K, V]) Root() *Node[K, V] { return t.root }

// SetRoot 只改根指针，调用方负责清掉新根的 parent
func (t *Tree[K, V]) SetRoot(n *Node[K, V]) { t.root = n }

func (t *Tree[K, V]) Len() int    { return t.size }
func (t *Tree[K, V]) Empty() bool { return t.root == nil }

// InsertLeaf 按键序走到叶子位置挂新节点
// 键已存在时只覆盖 value，返回已有节点且 created 为 false
func (t *Tree[K, V]) InsertLeaf(key K, value V) (n *Node[K, V], created bool) {
	if t.root == nil {
		t.root = NewNode(key, value, nil)
		t.size++
		return t.root, true
	}

	parent := t.root
	for {
		if key == parent.key {
			parent.value = value
			return parent, false
		}
		var next *Node[K, V]
		if key < parent.key {
			next = parent.left
		} else {
			next = parent.right
		}
		if next == nil {
			break
		}
		parent = next
	}

	n = NewNode(key, value, parent)
	if key < parent.key {
		parent.left = n
	} else {
		parent.right = n
	}
	t.size++
	return n, true
}

// InternalFind 精确查找节点，找不到返回 nil
func (t *Tree[K, V]) InternalFind(key K) *Node[K, V] {
	cur := t.root
	for cur != nil {
		if key == cur.key {
			return cur
		}
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

// Find 查找键对应的值，第二个返回值区分"不存在"和零值
func (t *Tree[K, V]) Find(key K) (V, bool) {
	if n := t.InternalFind(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

func (t *Tree[K, V]) Contains(key K) bool {
	return t.InternalFind(key) != nil
}

// Predecessor 返回中序前驱
func (t *Tree[K, V]) Predecessor(n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	if n.left != nil {
		return rightmost(n.left)
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// Successor 返回中序后继
func (t *Tree[K, V]) Successor(n *Node[K, V]) *Node[K, V] {
	if n == nil {
		return nil
	}
	if n.right != nil {
		return leftmost(n.right)
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

func (t *Tree[K, V]) Min() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return leftmost(t.root)
}

func (t *Tree[K, V]) Max() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return rightmost(t.root)
}

func leftmost[K any, V any](n *Node[K, V]) *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[K any, V any](n *Node[K, V]) *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// NodeSwap 交换两个节点的 key 和 value，树的形状不变
// 平衡因子跟着位置走，所以不交换
// 调用之后节点指针对应的键已经变了
func (t *Tree[K, V]) NodeSwap(n1, n2 *Node[K, V]) {
	if n1 == nil || n2 == nil || n1 == n2 {
		return
	}
	n1.key, n2.key = n2.key, n1.key
	n1.value, n2.value = n2.value, n1.value
}

// Detach 摘掉一个最多只有一个孩子的节点，孩子顶替它的位置
// 返回原父节点，以及父节点平衡值需要调整的方向:
// 从左边摘掉为 1，右边为 -1，摘掉的是根则为 0
func (t *Tree[K, V]) Detach(n *Node[K, V]) (parent *Node[K, V], diff int) {
	if n.left != nil && n.right != nil {
		panic(fmt.Sprintf("bst: detach node %v with two children", n.key))
	}

	next := n.left
	if next == nil {
		next = n.right
	}

	parent = n.parent
	if next != nil {
		next.parent = parent
	}

	switch {
	case parent == nil:
		t.root = next
	case parent.left == n:
		parent.left = next
		diff = 1
	default:
		parent.right = next
		diff = -1
	}

	n.parent, n.left, n.right = nil, nil, nil
	t.size--
	return parent, diff
}

// All 中序遍历，遍历过程中不能修改树
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := t.Min(); n != nil; n = t.Successor(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Height 空树为 0，只有根为 1
func (t *Tree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}
	h := 0
	level := []*Node[K, V]{t.root}
	for len(level) > 0 {
		h++
		var next []*Node[K, V]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return h
}

// Clear 拆掉所有节点之间的链接，外部残留的节点指针不会再拖住整棵树
func (t *Tree[K, V]) Clear() {
	stack := []*Node[K, V]{}
	if t.root != nil {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n.parent, n.left, n.right = nil, nil, nil
	}
	t.root = nil
	t.size = 0
}

// PrintTree 按 format 打印节点
func (t *Tree[K, V]) PrintTree(format func(*Node[K, V]) string, style treeprinter.Style, direction treeprinter.Direction) string {
	return treeprinter.PrintTreeGeneric(treeprinter.TreePrinter[*Node[K, V]]{
		Root: t.root,
		GetChild: func(n *Node[K, V], dir treeprinter.Side) *Node[K, V] {
			if dir == treeprinter.Left {
				return n.left
			}
			return n.right
		},
		GetValue: format,
		IsNil: func(n *Node[K, V]) bool {
			return n == nil
		},
		Style:     style,
		Direction: direction,
	})
}
