// Package cli 组装注音工具的命令行界面
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// 全局标志
	cfgFile     string
	debugMode   bool
	verboseMode bool
)

// NewRootCommand 创建根命令
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "furigana-agent",
		Short: "furigana-agent 为日语文本批量添加注音并挖掘已有注音",
		Long: `furigana-agent 是一个日语注音（振り仮名）处理工具。

它从形态素分析器获取每个词的读音，结合从原书挖掘出的人名、术语
读音词典，为纯文本批量生成 ruby 注音标记；同时提供反向能力：
从已注音的文档中抽取完整词汇、构建读音词典、修复注音断行。

子命令:
  annotate       为 HTML/XHTML 文档添加注音并输出纯文本
  build-dict     从已注音文档构建人名、术语读音词典
  extract-vocab  从已注音文档抽取完整词汇并生成登记表
  fix-newlines   修复在注音边界被错误断开的文本行`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径（默认查找 ./.furigana-agent.yaml）")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "启用调试日志")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "控制台友好的详细输出")

	rootCmd.AddCommand(newAnnotateCommand())
	rootCmd.AddCommand(newBuildDictCommand())
	rootCmd.AddCommand(newExtractVocabCommand())
	rootCmd.AddCommand(newFixNewlinesCommand())

	return rootCmd
}
