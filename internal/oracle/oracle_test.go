package oracle_test

import (
	"testing"

	"ordered_index/internal/oracle"

	"github.com/stretchr/testify/assert"
)

func TestRef(t *testing.T) {
	ref := oracle.New()
	for _, k := range []int{5, 1, 9, 5} {
		ref.Insert(k, k*10)
	}
	assert.Equal(t, 3, ref.Len())
	assert.Equal(t, []int{1, 5, 9}, ref.Keys())
	assert.True(t, ref.Remove(1))
	assert.False(t, ref.Remove(1))

	v, ok := ref.Find(9)
	assert.True(t, ok)
	assert.Equal(t, 90, v)

	assert.Empty(t, ref.Diff([]int{5, 9}))
	assert.NotEmpty(t, ref.Diff([]int{9}))
}

func TestStringRef(t *testing.T) {
	ref := oracle.NewStrings()
	for _, k := range []string{"b", "", "ab", "a", "b"} {
		ref.Insert(k, "v"+k)
	}
	assert.Equal(t, 4, ref.Len())
	assert.Equal(t, []string{"", "a", "ab", "b"}, ref.Keys())

	v, ok := ref.Find("ab")
	assert.True(t, ok)
	assert.Equal(t, "vab", v)

	assert.True(t, ref.Remove("a"))
	assert.False(t, ref.Remove("a"))
	assert.Empty(t, ref.Diff([]string{"", "ab", "b"}))
	assert.NotEmpty(t, ref.Diff([]string{"ab", "b"}))
}
