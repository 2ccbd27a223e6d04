package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kanatext/go-furigana-agent/internal/logger"
	"github.com/spf13/cobra"
)

var dictOutputPath string

func newBuildDictCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build-dict [flags] file...",
		Short: "从已注音文档构建人名、术语读音词典",
		Long: `build-dict 扫描已注音的 HTML 文档集合，收集全部 ruby 标注，
按出现频次解决同词多读音的冲突，产出每词一个规范读音的词典。
不带 --output 时在终端打印词典表格。`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBuildDict,
	}

	cmd.Flags().StringVarP(&dictOutputPath, "output", "o", "", "词典 JSON 输出路径")
	return cmd
}

func runBuildDict(cmd *cobra.Command, args []string) error {
	log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
	defer func() { _ = log.Sync() }()

	dict := buildNameDictionary(args, log)
	if len(dict) == 0 {
		fmt.Println("没有收集到任何 ruby 标注")
		return nil
	}

	if dictOutputPath != "" {
		data, err := json.MarshalIndent(dict, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal dictionary: %w", err)
		}
		if err := os.WriteFile(dictOutputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write dictionary: %w", err)
		}
		fmt.Printf("词典已写入 %s（%d 个词条）\n", dictOutputPath, len(dict))
		return nil
	}

	terms := make([]string, 0, len(dict))
	for term := range dict {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"词条", "读音"})
	for _, term := range terms {
		t.AppendRow(table.Row{term, dict[term]})
	}
	t.Render()
	return nil
}
