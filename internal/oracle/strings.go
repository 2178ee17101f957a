package oracle

import (
	"github.com/armon/go-radix"
	"github.com/google/go-cmp/cmp"
)

// StringRef 是字符串键的参照实现
// radix 树的 Walk 按字节序访问，和 Go 的字符串比较一致
type StringRef struct {
	rt *radix.Tree
}

func NewStrings() *StringRef {
	return &StringRef{rt: radix.New()}
}

func (r *StringRef) Insert(key, value string) {
	r.rt.Insert(key, value)
}

func (r *StringRef) Remove(key string) bool {
	_, ok := r.rt.Delete(key)
	return ok
}

func (r *StringRef) Find(key string) (string, bool) {
	v, ok := r.rt.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (r *StringRef) Len() int { return r.rt.Len() }

func (r *StringRef) Keys() []string {
	keys := make([]string, 0, r.rt.Len())
	r.rt.Walk(func(k string, _ interface{}) bool {
		keys = append(keys, k)
		return false
	})
	return keys
}

// Diff 比较给定的升序键和参照键，相同返回空串
func (r *StringRef) Diff(got []string) string {
	return cmp.Diff(r.Keys(), got)
}
