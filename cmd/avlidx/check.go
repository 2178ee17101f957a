package main

import (
	"fmt"
	"math/rand"
	"slices"

	"ordered_index/internal/oracle"
	"ordered_index/pkg/avltree"
	"ordered_index/pkg/errorutil"
	"ordered_index/pkg/logutil"

	"github.com/dustin/go-humanize"
	"github.com/mohae/deepcopy"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	ops      int
	keySpace int
	seed     int64
	every    int
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions
	cmd := &cobra.Command{
		Use:   "check",
		Short: "随机插入/删除，与红黑树和 B 树的结果逐步比对",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVarP(&opts.ops, "ops", "n", 100000, "随机操作次数")
	cmd.Flags().IntVarP(&opts.keySpace, "keys", "k", 5000, "键的取值范围 [0, keys)")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 1, "随机种子")
	cmd.Flags().IntVar(&opts.every, "validate-every", 1000, "每隔多少步做一次完整校验")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if opts.ops <= 0 || opts.keySpace <= 0 || opts.every <= 0 {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "ops/keys/validate-every 必须为正数", nil)
		}
		report, err := runCheck(opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report)
		return nil
	}
	return cmd
}

// scriptOp 是随机脚本里的一步
type scriptOp struct {
	Insert bool
	Key    int
}

func genScript(r *rand.Rand, opts checkOptions) []scriptOp {
	script := make([]scriptOp, opts.ops)
	for i := range script {
		script[i] = scriptOp{Insert: r.Intn(3) != 0, Key: r.Intn(opts.keySpace)}
	}
	return script
}

func runCheck(opts checkOptions) (string, error) {
	r := rand.New(rand.NewSource(opts.seed))
	script := genScript(r, opts)

	tree := avltree.New[int, int]()
	ref := oracle.New()
	maxRemoveRebalances := 0

	mismatch := func(i int, format string, args ...any) error {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeAssertionFailed,
			fmt.Sprintf("第 %d 步与参照实现不一致", i), fmt.Errorf(format, args...))
	}

	for i, s := range script {
		if s.Insert {
			tree.Insert(s.Key, i)
			ref.Insert(s.Key, i)
			if n := tree.Stats().LastRebalances(); n > 1 {
				return "", mismatch(i, "插入 %d 触发了 %d 次再平衡", s.Key, n)
			}
		} else {
			removed := tree.Remove(s.Key)
			if want := ref.Remove(s.Key); removed != want {
				return "", mismatch(i, "删除 %d 返回 %v, 期望 %v", s.Key, removed, want)
			}
			maxRemoveRebalances = max(maxRemoveRebalances, tree.Stats().LastRebalances())
		}

		if i%opts.every == 0 || i == len(script)-1 {
			if err := tree.Validate(); err != nil {
				return "", errorutil.NewExitErrorWithMessage(errorutil.CodeAssertionFailed, "索引不变量被破坏", err)
			}
			if diff := ref.Diff(tree.Keys()); diff != "" {
				return "", mismatch(i, "键集合不同: %s", diff)
			}
			logutil.Debug("step %d ok, len=%d height=%d", i, tree.Len(), tree.Height())
		}
	}

	keys := tree.Keys()
	if !slices.IsSorted(keys) {
		return "", mismatch(len(script), "中序遍历的键没有按升序排列")
	}

	n, err := drain(tree, ref, script, r)
	if err != nil {
		return "", err
	}
	maxRemoveRebalances = max(maxRemoveRebalances, n)

	st := tree.Stats()
	return fmt.Sprintf("ok: %s ops, %s keys before drain, single rotations %s, double rotations %s, max rebalances in one remove %d",
		humanize.Comma(int64(opts.ops)), humanize.Comma(int64(len(keys))),
		humanize.Comma(int64(st.SingleRotations)), humanize.Comma(int64(st.DoubleRotations)),
		maxRemoveRebalances), nil
}

// drain 按打乱后的脚本副本删光所有键，脚本本身保持生成时的顺序
// 返回单次删除里最多的再平衡次数
func drain(tree *avltree.AVLTree[int, int], ref *oracle.Ref, script []scriptOp, r *rand.Rand) (int, error) {
	mismatch := func(format string, args ...any) error {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeAssertionFailed,
			"清空阶段与参照实现不一致", fmt.Errorf(format, args...))
	}

	order := deepcopy.Copy(script).([]scriptOp)
	r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	most := 0
	for _, s := range order {
		if !s.Insert {
			continue
		}
		v, found := tree.Find(s.Key)
		want, ok := ref.Find(s.Key)
		if found != ok || want != v {
			return 0, mismatch("键 %d 的值为 %d, 参照为 %d", s.Key, v, want)
		}
		if tree.Remove(s.Key) != ref.Remove(s.Key) {
			return 0, mismatch("删除 %d 的结果与参照不同", s.Key)
		}
		most = max(most, tree.Stats().LastRebalances())
	}
	if !tree.Empty() {
		return 0, mismatch("清空后仍有 %d 个键", tree.Len())
	}
	return most, nil
}
