package kvjson_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"ordered_index/internal/oracle"
	"ordered_index/internal/testutils"
	"ordered_index/pkg/kvjson"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndDumpSortsKeys(t *testing.T) {
	in := `{"pear": 3, "apple": {"color": "red"}, "fig": [1, 2], "kiwi": null, "date": "x"}`
	idx, err := kvjson.Load(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 5, idx.Len())
	assert.Equal(t, []string{"apple", "date", "fig", "kiwi", "pear"}, idx.Keys())
	testutils.CheckAVL(t, idx.Root())

	v, ok := idx.Find("apple")
	require.True(t, ok)
	assert.Equal(t, `{"color": "red"}`, v)

	out, err := kvjson.Dump(idx, false)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
	assert.Less(t, strings.Index(string(out), "apple"), strings.Index(string(out), "pear"))
}

func TestDuplicateKeysLastWins(t *testing.T) {
	idx, err := kvjson.LoadBytes([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
	v, _ := idx.Find("a")
	assert.Equal(t, "3", v)
}

func TestDumpEscapesPathSyntax(t *testing.T) {
	in := `{"a.b": 1, "10": 2, "w*": 3, "q?": 4, "": 5}`
	idx, err := kvjson.LoadBytes([]byte(in))
	require.NoError(t, err)

	out, err := kvjson.Dump(idx, true)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
	assert.Contains(t, string(out), "\n")
}

func TestDumpEmptyKey(t *testing.T) {
	for _, in := range []string{`{"":1,"a":2}`, `{"":{"x":[1]}}`} {
		idx, err := kvjson.LoadBytes([]byte(in))
		require.NoError(t, err)
		v, ok := idx.Find("")
		require.True(t, ok)
		assert.NotEmpty(t, v)

		out, err := kvjson.Dump(idx, false)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(out))

		again, err := kvjson.LoadBytes(out)
		require.NoError(t, err)
		assert.Equal(t, idx.Keys(), again.Keys())
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := kvjson.LoadBytes([]byte(`{"a": `))
	assert.ErrorIs(t, err, kvjson.ErrInvalidJSON)

	_, err = kvjson.LoadBytes([]byte(`[1, 2]`))
	assert.ErrorIs(t, err, kvjson.ErrNotObject)
}

func TestRandomKeysAgainstRadix(t *testing.T) {
	alphabet := []rune("ab.*:09é中")
	r := rand.New(rand.NewSource(3))
	ref := oracle.NewStrings()

	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < 300; i++ {
		key := make([]rune, r.Intn(4))
		for j := range key {
			key[j] = alphabet[r.Intn(len(alphabet))]
		}
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%q:%d", string(key), i)
		ref.Insert(string(key), fmt.Sprint(i))
	}
	b.WriteByte('}')

	idx, err := kvjson.LoadBytes([]byte(b.String()))
	require.NoError(t, err)
	assert.Equal(t, ref.Len(), idx.Len())
	assert.Empty(t, ref.Diff(idx.Keys()))
	for k, v := range idx.All() {
		want, ok := ref.Find(k)
		require.True(t, ok)
		assert.Equal(t, want, v, "key %q", k)
	}
	testutils.CheckAVL(t, idx.Root())

	out, err := kvjson.Dump(idx, false)
	require.NoError(t, err)
	again, err := kvjson.LoadBytes(out)
	require.NoError(t, err)
	assert.Empty(t, ref.Diff(again.Keys()))
}
