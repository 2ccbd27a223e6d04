package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/kanatext/go-furigana-agent/internal/document"
	"github.com/kanatext/go-furigana-agent/internal/logger"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixDryRun bool

// 预演输出里每行截断到的显示宽度（日文全角字符占两列）
const sampleLineWidth = 80

func newFixNewlinesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix-newlines [flags] path...",
		Short: "修复在注音边界被错误断开的文本行",
		Long: `fix-newlines 修复提取文本时 ruby 元素被拆成多行的缺陷，
例如「襖\nを開け閉めする」。按文字种类转移的启发式迭代合并，
直到不再产生变化。参数可以是文件或目录（递归处理 *.txt）。`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFixNewlines,
	}

	cmd.Flags().BoolVarP(&fixDryRun, "dry-run", "n", false, "只显示将要进行的修改，不写回文件")
	return cmd
}

func runFixNewlines(cmd *cobra.Command, args []string) error {
	log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
	defer func() { _ = log.Sync() }()

	repairer := document.NewLineRepairer(log)

	processed := 0
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			color.Yellow("路径不存在，跳过: %s", arg)
			continue
		}
		if info.IsDir() {
			err := filepath.WalkDir(arg, func(path string, entry os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !entry.IsDir() && strings.HasSuffix(path, ".txt") {
					if fixFile(repairer, path, log) {
						processed++
					}
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("failed to walk %s: %w", arg, err)
			}
			continue
		}
		if fixFile(repairer, arg, log) {
			processed++
		}
	}

	fmt.Printf("\n共处理 %d 个文件\n", processed)
	return nil
}

// fixFile 修复单个文件，返回是否处理成功
func fixFile(repairer *document.LineRepairer, path string, log *zap.Logger) bool {
	fmt.Printf("处理: %s\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("读取文件失败", zap.String("file", path), zap.Error(err))
		return false
	}
	original := string(data)
	fixed := repairer.Repair(original)

	if original == fixed {
		fmt.Println("  无需修改")
		return true
	}

	originalLines := strings.Split(original, "\n")
	fixedLines := strings.Split(fixed, "\n")
	fmt.Printf("  行数: %d -> %d（合并 %d 行）\n",
		len(originalLines), len(fixedLines), len(originalLines)-len(fixedLines))

	if fixDryRun {
		color.Cyan("  [预演] 不写回文件")
		printSampleChanges(originalLines, fixedLines)
		return true
	}

	if err := os.WriteFile(path, []byte(fixed), 0o644); err != nil {
		log.Error("写入文件失败", zap.String("file", path), zap.Error(err))
		return false
	}
	fmt.Println("  修改已写入")
	return true
}

// printSampleChanges 打印前若干处差异作为预演样例
func printSampleChanges(originalLines, fixedLines []string) {
	shown := 0
	limit := len(originalLines)
	if len(fixedLines) < limit {
		limit = len(fixedLines)
	}
	if limit > 50 {
		limit = 50
	}
	for i := 0; i < limit && shown < 5; i++ {
		if originalLines[i] == fixedLines[i] {
			continue
		}
		fmt.Printf("    第 %d 行:\n", i+1)
		fmt.Printf("      之前: %s\n", runewidth.Truncate(originalLines[i], sampleLineWidth, "…"))
		fmt.Printf("      之后: %s\n", runewidth.Truncate(fixedLines[i], sampleLineWidth, "…"))
		shown++
	}
}
