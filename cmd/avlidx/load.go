package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ordered_index/pkg/errorutil"
	"ordered_index/pkg/kvjson"
	"ordered_index/pkg/logutil"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newLoadCmd() *cobra.Command {
	var (
		input   string
		compact bool
		remove  []string
	)
	cmd := &cobra.Command{
		Use:     "load",
		Short:   "读取 JSON 对象建立索引，按键升序输出",
		Example: "  echo '{\"b\":1,\"a\":2}' | avlidx load -f -",
		Args:    cobra.NoArgs,
	}
	cmd.Flags().StringVarP(&input, "file", "f", "-", "输入文件，- 表示标准输入")
	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "单行输出")
	cmd.Flags().StringSliceVarP(&remove, "remove", "r", nil, "输出前删除的 key")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if input != "-" {
			f, err := os.Open(input)
			if err != nil {
				return errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput, "无法打开输入文件", err)
			}
			defer f.Close()
			r = f
		}

		idx, err := kvjson.Load(r)
		switch {
		case errors.Is(err, kvjson.ErrInvalidJSON), errors.Is(err, kvjson.ErrNotObject):
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "输入不是合法的 JSON 对象", err)
		case err != nil:
			return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "读取输入失败", err)
		}
		for _, k := range remove {
			if !idx.Remove(k) {
				logutil.Warn("key %q 不存在", k)
			}
		}
		if err := idx.Validate(); err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeAssertionFailed, "索引不变量被破坏", err)
		}

		doc, err := kvjson.Dump(idx, !compact)
		if err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidData, "输出 JSON 失败", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s", doc)
		if compact {
			fmt.Fprintln(out)
		}
		logutil.Info("loaded %s keys, height %d", humanize.Comma(int64(idx.Len())), idx.Height())
		return nil
	}
	return cmd
}
