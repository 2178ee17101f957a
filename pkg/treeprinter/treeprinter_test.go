package treeprinter_test

import (
	"testing"

	"ordered_index/pkg/treeprinter"

	"github.com/stretchr/testify/assert"
)

// 用数组下标当节点，和堆的存储方式一样
func arrayPrinter(data []string, style treeprinter.Style, dir treeprinter.Direction) treeprinter.TreePrinter[int] {
	return treeprinter.TreePrinter[int]{
		Root: 0,
		GetChild: func(i int, side treeprinter.Side) int {
			if side == treeprinter.Left {
				return 2*i + 1
			}
			return 2*i + 2
		},
		GetValue:  func(i int) string { return data[i] },
		IsNil:     func(i int) bool { return i >= len(data) },
		Style:     style,
		Direction: dir,
	}
}

func TestPrintASCII(t *testing.T) {
	out := treeprinter.PrintTreeGeneric(arrayPrinter(
		[]string{"d", "b", "f", "a", "c"}, treeprinter.ASCII, treeprinter.RightRootLeft))
	want := "" +
		"    .-->f\n" +
		"|-- d\n" +
		"    |   .-->c\n" +
		"    '-->b\n" +
		"        '-->a\n"
	assert.Equal(t, want, out)
}

func TestPrintLeftRootRight(t *testing.T) {
	out := treeprinter.PrintTreeGeneric(arrayPrinter(
		[]string{"d", "b", "f", "a", "c"}, treeprinter.Unicode, treeprinter.LeftRootRight))
	want := "" +
		"        ┌──>a\n" +
		"    ┌──>b\n" +
		"    │   └──>c\n" +
		"│── d\n" +
		"    └──>f\n"
	assert.Equal(t, want, out)
}

func TestPrintEmpty(t *testing.T) {
	out := treeprinter.PrintTreeGeneric(arrayPrinter(nil, treeprinter.ASCII, treeprinter.RightRootLeft))
	assert.Equal(t, "tree is empty\n", out)
}
