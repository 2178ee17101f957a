// Package treedot 把二叉树导出成 Graphviz DOT
package treedot

import (
	"fmt"
	"strconv"

	"ordered_index/pkg/treeprinter"

	"github.com/awalterschulze/gographviz"
)

const graphName = "tree"

// Source 描述怎样遍历一棵树，和 treeprinter.TreePrinter 的字段一致
type Source[T any] struct {
	Root     T
	GetChild func(T, treeprinter.Side) T
	GetLabel func(T) string
	IsNil    func(T) bool
}

// Export 生成 DOT 文本
// 只有一个孩子时补一个不可见的占位节点，让左右位置在图上保持正确
func Export[T any](src Source[T]) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	if err := g.AddAttr(graphName, "ordering", "out"); err != nil {
		return "", err
	}
	if src.IsNil(src.Root) {
		return g.String(), nil
	}

	seq := 0
	newName := func() string {
		seq++
		return fmt.Sprintf("n%d", seq)
	}

	type item struct {
		node T
		name string
	}
	rootName := newName()
	if err := g.AddNode(graphName, rootName, map[string]string{"label": strconv.Quote(src.GetLabel(src.Root))}); err != nil {
		return "", err
	}

	queue := []item{{src.Root, rootName}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		left := src.GetChild(cur.node, treeprinter.Left)
		right := src.GetChild(cur.node, treeprinter.Right)
		if src.IsNil(left) && src.IsNil(right) {
			continue
		}
		for _, c := range []struct {
			node T
			tag  string
		}{{left, "L"}, {right, "R"}} {
			name := newName()
			if src.IsNil(c.node) {
				if err := g.AddNode(graphName, name, map[string]string{"shape": "point", "style": "invis"}); err != nil {
					return "", err
				}
				if err := g.AddEdge(cur.name, name, true, map[string]string{"style": "invis"}); err != nil {
					return "", err
				}
				continue
			}
			if err := g.AddNode(graphName, name, map[string]string{"label": strconv.Quote(src.GetLabel(c.node))}); err != nil {
				return "", err
			}
			if err := g.AddEdge(cur.name, name, true, map[string]string{"label": strconv.Quote(c.tag)}); err != nil {
				return "", err
			}
			queue = append(queue, item{c.node, name})
		}
	}
	return g.String(), nil
}
