package avltree

import (
	"errors"
	"fmt"

	"ordered_index/pkg/bst"

	"golang.org/x/exp/constraints"
)

var (
	ErrOrder      = errors.New("keys out of order")
	ErrParentLink = errors.New("broken parent link")
	ErrBalance    = errors.New("stored balance disagrees with subtree heights")
	ErrUnbalanced = errors.New("balance factor out of range")
	ErrSize       = errors.New("node count disagrees with Len")
)

// Validate 独立重算每棵子树的高度，检查键序、父指针和平衡值
func (t *AVLTree[K, V]) Validate() error {
	root := t.tree.Root()
	if root != nil && root.Parent() != nil {
		return fmt.Errorf("%w: root %v has parent %v", ErrParentLink, root.Key(), root.Parent().Key())
	}

	v := validator[K, V]{}
	if _, err := v.walk(root); err != nil {
		return err
	}
	if v.count != t.tree.Len() {
		return fmt.Errorf("%w: counted %d, Len %d", ErrSize, v.count, t.tree.Len())
	}
	return nil
}

type validator[K constraints.Ordered, V any] struct {
	prev    K
	hasPrev bool
	count   int
}

// walk 返回子树高度，空子树为 0
func (v *validator[K, V]) walk(n *bst.Node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	for _, c := range []*bst.Node[K, V]{n.Left(), n.Right()} {
		if c != nil && c.Parent() != n {
			return 0, fmt.Errorf("%w: child %v of %v", ErrParentLink, c.Key(), n.Key())
		}
	}

	hl, err := v.walk(n.Left())
	if err != nil {
		return 0, err
	}
	if err := v.visit(n); err != nil {
		return 0, err
	}
	hr, err := v.walk(n.Right())
	if err != nil {
		return 0, err
	}

	if got, want := n.BalanceFactor(), hl-hr; got != want {
		return 0, fmt.Errorf("%w: node %v stores %d, heights give %d", ErrBalance, n.Key(), got, want)
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, fmt.Errorf("%w: node %v has %d", ErrUnbalanced, n.Key(), hl-hr)
	}
	return max(hl, hr) + 1, nil
}

func (v *validator[K, V]) visit(n *bst.Node[K, V]) error {
	v.count++
	if v.hasPrev && !(v.prev < n.Key()) {
		return fmt.Errorf("%w: %v after %v", ErrOrder, n.Key(), v.prev)
	}
	v.prev, v.hasPrev = n.Key(), true
	return nil
}
