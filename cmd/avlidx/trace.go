package main

import (
	"fmt"

	"ordered_index/pkg/avltree"
	"ordered_index/pkg/diffutil"
	"ordered_index/pkg/errorutil"

	"github.com/spf13/cobra"
)

func newTraceCmd() *cobra.Command {
	var (
		opts    printOptions
		inserts []string
		removes []string
	)
	cmd := &cobra.Command{
		Use:     "trace",
		Short:   "逐步执行插入/删除，显示每一步前后的树差异",
		Example: "  avlidx trace --insert 10,20,30,40,50 --remove 20,40",
		Args:    cobra.NoArgs,
	}
	cmd.Flags().StringSliceVarP(&inserts, "insert", "i", nil, "依次插入的键")
	cmd.Flags().StringSliceVarP(&removes, "remove", "r", nil, "插入完成后依次删除的键")
	opts.bind(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ins, err := parsePairs(inserts)
		if err != nil {
			return err
		}
		rem, err := parseKeys(removes)
		if err != nil {
			return err
		}
		if len(ins) == 0 && len(rem) == 0 {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput, "需要 --insert 或 --remove", nil)
		}

		out := cmd.OutOrStdout()
		tree := avltree.New[int, string]()
		step := func(label string, apply func()) error {
			before := opts.render(tree)
			apply()
			after := opts.render(tree)
			if err := validate(tree); err != nil {
				return err
			}
			st := tree.Stats()
			diff := diffutil.CompareMultiline(before, after)
			fmt.Fprintf(out, "# %s (single=%d double=%d, %d lines changed)\n",
				label, st.LastSingle, st.LastDouble, diffutil.Changes(diff))
			fmt.Fprintln(out, diffutil.FormatSideBySide(diff))
			fmt.Fprintln(out)
			return nil
		}

		for _, p := range ins {
			if err := step(fmt.Sprintf("insert %s", formatEntry(p.key, p.value)), func() {
				tree.Insert(p.key, p.value)
			}); err != nil {
				return err
			}
		}
		for _, k := range rem {
			if err := step(fmt.Sprintf("remove %d", k), func() {
				if !tree.Remove(k) {
					fmt.Fprintf(out, "# key %d not present\n", k)
				}
			}); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}
