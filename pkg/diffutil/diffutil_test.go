package diffutil_test

import (
	"strings"
	"testing"

	"ordered_index/pkg/diffutil"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareIdentical(t *testing.T) {
	text := "a\nb\nc\n"
	diff := diffutil.CompareMultiline(text, text)
	require.Len(t, diff, 3)
	for _, d := range diff {
		assert.Equal(t, diffutil.Same, d.Mark)
		assert.Equal(t, d.Left, d.Right)
	}
	assert.Equal(t, 0, diffutil.Changes(diff))
}

func TestCompareChangedLine(t *testing.T) {
	diff := diffutil.CompareMultiline("a\nb\nc\n", "a\nB\nc\nd\n")
	assert.Equal(t, []diffutil.DiffLine{
		{Left: "a", Right: "a", Mark: diffutil.Same},
		{Left: "b", Right: "B", Mark: diffutil.Changed},
		{Left: "c", Right: "c", Mark: diffutil.Same},
		{Left: "", Right: "d", Mark: diffutil.Added},
	}, diff)
	assert.Equal(t, 2, diffutil.Changes(diff))
}

func TestFormatSideBySideAlignsBoxChars(t *testing.T) {
	diff := []diffutil.DiffLine{
		{Left: "│── 20", Right: "│── 20", Mark: diffutil.Same},
		{Left: "    └──>10", Right: "", Mark: diffutil.Removed},
	}
	out := diffutil.FormatSideBySide(diff)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	// 标记列在同一个显示位置
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	i2 := strings.Index(lines[2], "  |  ")
	i3 := strings.Index(lines[3], "  -  ")
	require.True(t, i2 > 0 && i3 > 0)
	assert.Equal(t, cond.StringWidth(lines[3][:i3]), cond.StringWidth(lines[2][:i2]))
	assert.Contains(t, lines[3], "  -  ")
	assert.True(t, strings.HasPrefix(lines[0], "* Before"))
}
