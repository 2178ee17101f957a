package main

import (
	"fmt"

	"ordered_index/pkg/errorutil"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var opts printOptions
	cmd := &cobra.Command{
		Use:   "build KEY[=VALUE]...",
		Short: "按顺序插入并打印树",
		Example: "  avlidx build 10 20 30\n" +
			"  avlidx build 4,2,6,1,3,5,7 --remove 4",
		Args: cobra.MinimumNArgs(1),
	}
	var removals []string
	cmd.Flags().StringSliceVarP(&removals, "remove", "r", nil, "插入完成后依次删除的键")
	opts.bind(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		pairs, err := parsePairs(args)
		if err != nil {
			return err
		}
		if len(pairs) == 0 {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput, "没有可插入的键", nil)
		}
		drop, err := parseKeys(removals)
		if err != nil {
			return err
		}

		tree := buildIndex(pairs)
		for _, k := range drop {
			tree.Remove(k)
		}
		if err := validate(tree); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, opts.render(tree))
		st := tree.Stats()
		fmt.Fprintf(out, "len=%d height=%d single=%d double=%d\n",
			tree.Len(), tree.Height(), st.SingleRotations, st.DoubleRotations)
		return nil
	}
	return cmd
}
