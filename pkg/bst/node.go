package bst

// Node 是有序树的节点
// 子节点由父节点持有，parent 只是向上遍历用的回指
type Node[K any, V any] struct {
	key    K
	value  V
	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
	// 平衡因子，约定为 height(right) - height(left)，左倾为负
	balance int8
}

func NewNode[K any, V any](key K, value V, parent *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{key: key, value: value, parent: parent}
}

func (n *Node[K, V]) Key() K                    { return n.key }
func (n *Node[K, V]) Value() V                  { return n.value }
func (n *Node[K, V]) SetValue(value V)          { n.value = value }
func (n *Node[K, V]) Parent() *Node[K, V]       { return n.parent }
func (n *Node[K, V]) Left() *Node[K, V]         { return n.left }
func (n *Node[K, V]) Right() *Node[K, V]        { return n.right }
func (n *Node[K, V]) SetParent(p *Node[K, V])   { n.parent = p }
func (n *Node[K, V]) SetLeft(child *Node[K, V]) { n.left = child }
func (n *Node[K, V]) SetRight(c *Node[K, V])    { n.right = c }

// Balance 返回存储的平衡值，左子树更高时为负
func (n *Node[K, V]) Balance() int8 { return n.balance }

func (n *Node[K, V]) SetBalance(balance int8) { n.balance = balance }

// UpdateBalance 在原平衡值上累加 diff
func (n *Node[K, V]) UpdateBalance(diff int8) { n.balance += diff }

// BalanceFactor 按 height(left) - height(right) 口径返回平衡因子
func (n *Node[K, V]) BalanceFactor() int {
	return -int(n.balance)
}

// IsLeftChild 判断节点是否挂在父节点的左边，根节点返回 false
func (n *Node[K, V]) IsLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// Child 按方向取子节点: -1 左, 1 右
func (n *Node[K, V]) Child(side int) *Node[K, V] {
	if side < 0 {
		return n.left
	}
	return n.right
}
