package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kanatext/go-furigana-agent/internal/config"
	"github.com/kanatext/go-furigana-agent/internal/document"
	"github.com/kanatext/go-furigana-agent/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	vocabBookTitle  string
	vocabPublicDir  string
	vocabOutputPath string
)

func newExtractVocabCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract-vocab [flags] file...",
		Short: "从已注音文档抽取完整词汇并生成登记表",
		Long: `extract-vocab 遍历已注音文档中的 ruby 标注，合并逐字注音的
汉字复合词，按最长匹配并入送假名词尾，重建完整的词汇条目。
指定 --book 时在 public 目录下定位该书的输出目录并写入
ruby-registry.json；指定 --output 时写入给定路径；否则打印表格。`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExtractVocab,
	}

	cmd.Flags().StringVar(&vocabBookTitle, "book", "", "书名（用于定位输出目录和填写登记表标题）")
	cmd.Flags().StringVar(&vocabPublicDir, "public-dir", "", "各书输出目录的根目录（默认取配置）")
	cmd.Flags().StringVarP(&vocabOutputPath, "output", "o", "", "登记表 JSON 输出路径")
	return cmd
}

func runExtractVocab(cmd *cobra.Command, args []string) error {
	log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if vocabPublicDir == "" {
		vocabPublicDir = cfg.PublicDir
	}

	extractor := document.NewVocabularyExtractor(cfg.Tables(), log)

	// 跨文件合并，先出现的词条保留
	all := make(map[string]document.WordEntry)
	for _, file := range args {
		f, err := os.Open(file)
		if err != nil {
			log.Warn("文件无法打开，跳过", zap.String("file", file), zap.Error(err))
			continue
		}
		words, err := extractor.ExtractWords(f)
		_ = f.Close()
		if err != nil {
			log.Warn("文件解析失败，跳过", zap.String("file", file), zap.Error(err))
			continue
		}
		for word, entry := range words {
			if _, exists := all[word]; !exists {
				entry.Source = cfg.Source
				all[word] = entry
			}
		}
		log.Info("词汇抽取", zap.String("file", file), zap.Int("words", len(words)))
	}

	if len(all) == 0 {
		fmt.Println("没有抽取到任何词条")
		return nil
	}
	color.Green("共抽取 %d 个词条", len(all))

	registry := document.NewRegistry(vocabBookTitle, all)

	switch {
	case vocabOutputPath != "":
		if err := registry.Save(vocabOutputPath); err != nil {
			return err
		}
		fmt.Printf("登记表已写入 %s\n", vocabOutputPath)

	case vocabBookTitle != "":
		bookDir, ok := document.FindBookDirectory(vocabBookTitle, vocabPublicDir)
		if !ok {
			color.Yellow("在 %s 下找不到书籍目录: %s", vocabPublicDir, vocabBookTitle)
			return fmt.Errorf("book directory not found for %q", vocabBookTitle)
		}
		registryPath := filepath.Join(bookDir, "ruby-registry.json")
		if err := registry.Save(registryPath); err != nil {
			return err
		}
		fmt.Printf("登记表已写入 %s\n", registryPath)

	default:
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"词", "读音", "来源"})
		for _, entry := range registry.Entries {
			t.AppendRow(table.Row{entry.Kanji, entry.Reading, entry.Source})
		}
		t.Render()
	}
	return nil
}
