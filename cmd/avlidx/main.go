package main

import (
	"fmt"
	"os"

	"ordered_index/pkg/errorutil"
	"ordered_index/pkg/logutil"

	"github.com/spf13/cobra"
)

const TOOL_VERSION = "1.0.0+20261019"

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:     "avlidx",
		Short:   "avlidx 是 AVL 有序索引的演示和校验工具",
		Version: TOOL_VERSION,
		Long: fmt.Sprintf("avlidx v%s\n\n"+
			"build/trace/dot 用整数键构建索引并显示结构，\n"+
			"load 读取 JSON 对象按键排序输出，check 做随机操作并与参照实现比对。\n", TOOL_VERSION),
	}

	var logFile string
	logLevel := logutil.WARN

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().VarP(&logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "stderr", "日志文件名(stdout/stderr 表示标准输出/标准错误)")
	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 错误统一在 main 里按 JSON 打印
	rootCmd.SilenceErrors = true

	// flag 值填充后才初始化日志
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := logutil.InitLogger(logFile, logLevel); err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeIOError, "初始化日志失败", err)
		}
		return nil
	}

	rootCmd.AddCommand(
		newBuildCmd(),
		newTraceCmd(),
		newDotCmd(),
		newLoadCmd(),
		newCheckCmd(),
	)
	return rootCmd
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		logutil.Debug("命令执行失败: %v, 根因: %v", err, errorutil.RootError(err))
		msg, code := errorutil.FormatErrorAndCode(usageError(err))
		fmt.Fprintln(os.Stderr, msg)
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(errorutil.CodeSuccess)
}

// cobra 自己的参数错误没有退出码，归为用法错误
func usageError(err error) error {
	if errorutil.HasExitCode(err) {
		return err
	}
	return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "参数错误", err)
}
