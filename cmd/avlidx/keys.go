package main

import (
	"fmt"
	"strconv"
	"strings"

	"ordered_index/pkg/avltree"
	"ordered_index/pkg/errorutil"
	"ordered_index/pkg/treeprinter"

	"github.com/spf13/cobra"
)

type pair struct {
	key   int
	value string
}

// parsePairs 解析 KEY 或 KEY=VALUE，逗号分隔的也展开
func parsePairs(args []string) ([]pair, error) {
	var pairs []pair
	for _, arg := range args {
		for _, item := range strings.Split(arg, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			k, v, _ := strings.Cut(item, "=")
			key, err := strconv.Atoi(k)
			if err != nil {
				return nil, errorutil.NewExitErrorWithMessage(
					errorutil.CodeInvalidData, fmt.Sprintf("键 %q 不是整数", k), err)
			}
			pairs = append(pairs, pair{key: key, value: v})
		}
	}
	return pairs, nil
}

func parseKeys(args []string) ([]int, error) {
	pairs, err := parsePairs(args)
	if err != nil {
		return nil, err
	}
	keys := make([]int, 0, len(pairs))
	for _, p := range pairs {
		keys = append(keys, p.key)
	}
	return keys, nil
}

func buildIndex(pairs []pair) *avltree.AVLTree[int, string] {
	tree := avltree.New[int, string]()
	for _, p := range pairs {
		tree.Insert(p.key, p.value)
	}
	return tree
}

// printOptions 是几个子命令共用的打印参数
type printOptions struct {
	unicode bool
	leftUp  bool
}

func (o *printOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.unicode, "unicode", "u", true, "使用 Unicode 框线")
	cmd.Flags().BoolVar(&o.leftUp, "left-up", false, "左子树打印在上方")
}

func (o printOptions) render(tree *avltree.AVLTree[int, string]) string {
	style := treeprinter.ASCII
	if o.unicode {
		style = treeprinter.Unicode
	}
	dir := treeprinter.RightRootLeft
	if o.leftUp {
		dir = treeprinter.LeftRootRight
	}
	return tree.PrintTree(formatEntry, style, dir)
}

func formatEntry(k int, v string) string {
	if v == "" {
		return strconv.Itoa(k)
	}
	return fmt.Sprintf("%d=%s", k, v)
}

func validate(tree *avltree.AVLTree[int, string]) error {
	if err := tree.Validate(); err != nil {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeAssertionFailed, "索引不变量被破坏", err)
	}
	return nil
}
