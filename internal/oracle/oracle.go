// Package oracle 用第三方有序容器做参照实现，和 AVL 索引逐步比对
package oracle

import (
	"fmt"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
)

// Ref 同时维护一棵红黑树（键值）和一棵 B 树（键序）
type Ref struct {
	rb *rbt.Tree
	bt *btree.BTreeG[int]
}

func New() *Ref {
	return &Ref{
		rb: rbt.NewWithIntComparator(),
		bt: btree.NewOrderedG[int](16),
	}
}

func (r *Ref) Insert(key, value int) {
	r.rb.Put(key, value)
	r.bt.ReplaceOrInsert(key)
}

// Remove 返回键原来是否存在，两个容器意见不一致时 panic
func (r *Ref) Remove(key int) bool {
	_, inRB := r.rb.Get(key)
	r.rb.Remove(key)
	_, inBT := r.bt.Delete(key)
	if inRB != inBT {
		panic(fmt.Sprintf("oracle: containers disagree on key %d", key))
	}
	return inRB
}

func (r *Ref) Find(key int) (int, bool) {
	v, ok := r.rb.Get(key)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (r *Ref) Len() int { return r.rb.Size() }

// Keys 按 B 树的升序遍历
func (r *Ref) Keys() []int {
	keys := make([]int, 0, r.bt.Len())
	r.bt.Ascend(func(k int) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Diff 比较给定的升序键和参照键，相同返回空串
func (r *Ref) Diff(got []int) string {
	want := r.Keys()
	rbKeys := make([]int, 0, r.rb.Size())
	for _, k := range r.rb.Keys() {
		rbKeys = append(rbKeys, k.(int))
	}
	if d := cmp.Diff(want, rbKeys); d != "" {
		return "red-black vs btree (-btree +rb):\n" + d
	}
	return cmp.Diff(want, got)
}
