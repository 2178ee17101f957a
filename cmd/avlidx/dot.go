package main

import (
	"fmt"

	"ordered_index/pkg/bst"
	"ordered_index/pkg/errorutil"
	"ordered_index/pkg/treedot"
	"ordered_index/pkg/treeprinter"

	"github.com/spf13/cobra"
)

func newDotCmd() *cobra.Command {
	var showBalance bool
	cmd := &cobra.Command{
		Use:     "dot KEY...",
		Short:   "输出 Graphviz DOT，可以直接交给 dot -Tsvg",
		Example: "  avlidx dot 30 10 20 5 | dot -Tsvg > tree.svg",
		Args:    cobra.MinimumNArgs(1),
	}
	cmd.Flags().BoolVarP(&showBalance, "balance", "b", false, "节点标签里显示平衡因子")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		pairs, err := parsePairs(args)
		if err != nil {
			return err
		}
		tree := buildIndex(pairs)

		dot, err := treedot.Export(treedot.Source[*bst.Node[int, string]]{
			Root: tree.Root(),
			GetChild: func(n *bst.Node[int, string], side treeprinter.Side) *bst.Node[int, string] {
				return n.Child(int(side))
			},
			GetLabel: func(n *bst.Node[int, string]) string {
				if showBalance {
					return fmt.Sprintf("%s (%d)", formatEntry(n.Key(), n.Value()), n.BalanceFactor())
				}
				return formatEntry(n.Key(), n.Value())
			},
			IsNil: func(n *bst.Node[int, string]) bool { return n == nil },
		})
		if err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "生成 DOT 失败", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), dot)
		return nil
	}
	return cmd
}
