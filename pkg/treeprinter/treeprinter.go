package treeprinter

import (
	"fmt"
	"strings"
)

// Style 控制连线字符
type Style int

const (
	ASCII   Style = 0
	Unicode Style = 1
)

// Direction 控制哪一侧打印在上方
type Direction int

const (
	RightRootLeft Direction = 0 // 右子树在上，逆时针转 90 度看就是树
	LeftRootRight Direction = 1
)

// Side 是 GetChild 的方向参数
type Side int

const (
	Left  Side = -1
	Right Side = 1
)

type branchPos int

const (
	branchRoot branchPos = iota
	branchUpper
	branchLower
)

// TreeNode 是任意类型的节点标识符（可以是索引、指针等）
type TreeNode any

// TreePrinter 是通用打印器的配置结构
type TreePrinter[T TreeNode] struct {
	Root      T
	GetChild  func(T, Side) T // 获取左右子节点
	GetValue  func(T) string  // 获取节点值的字符串表示
	IsNil     func(T) bool    // 判断节点是否为空
	Style     Style
	Direction Direction
}

type glyphs struct {
	vert  string
	upper string
	lower string
	root  string
}

func glyphsOf(s Style) glyphs {
	if s == Unicode {
		return glyphs{vert: "│", upper: "┌──>", lower: "└──>", root: "│── "}
	}
	return glyphs{vert: "|", upper: ".-->", lower: "'-->", root: "|-- "}
}

// PrintTreeGeneric 把二叉树横向打印成多行字符串
func PrintTreeGeneric[T TreeNode](printer TreePrinter[T]) string {
	if printer.IsNil(printer.Root) {
		return "tree is empty\n"
	}

	g := glyphsOf(printer.Style)
	upperSide, lowerSide := Right, Left
	if printer.Direction == LeftRootRight {
		upperSide, lowerSide = Left, Right
	}

	var b strings.Builder
	var walk func(n T, pos branchPos, pre string)
	walk = func(n T, pos branchPos, pre string) {
		if child := printer.GetChild(n, upperSide); !printer.IsNil(child) {
			// 下方分支的上侧孩子需要画竖线把自己和兄弟连起来
			next := pre + "    "
			if pos == branchLower {
				next = pre + g.vert + "   "
			}
			walk(child, branchUpper, next)
		}

		switch pos {
		case branchUpper:
			fmt.Fprintf(&b, "%s%s%s\n", pre, g.upper, printer.GetValue(n))
		case branchLower:
			fmt.Fprintf(&b, "%s%s%s\n", pre, g.lower, printer.GetValue(n))
		default:
			fmt.Fprintf(&b, "%s%s\n", g.root, printer.GetValue(n))
		}

		if child := printer.GetChild(n, lowerSide); !printer.IsNil(child) {
			next := pre + "    "
			if pos == branchUpper {
				next = pre + g.vert + "   "
			}
			walk(child, branchLower, next)
		}
	}
	walk(printer.Root, branchRoot, "")

	return b.String()
}
