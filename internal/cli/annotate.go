package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/kanatext/go-furigana-agent/internal/config"
	"github.com/kanatext/go-furigana-agent/internal/document"
	"github.com/kanatext/go-furigana-agent/internal/logger"
	"github.com/kanatext/go-furigana-agent/pkg/furigana"
	"github.com/kanatext/go-furigana-agent/pkg/tokenizer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	annotateFilter       bool
	annotatePreserveLong bool
	annotateCleanRuby    bool
	annotateRepairLines  bool
	annotateDictFiles    []string
)

func newAnnotateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate [flags] input_file output_file",
		Short: "为 HTML/XHTML 文档添加注音并输出纯文本",
		Long: `annotate 解析输入的 HTML/XHTML 文档，对裸文本逐词注音，
已有的 ruby 标注原样保留。可通过 --dict 先从同一本书的已注音
章节构建读音词典，保证人名、术语全书读音一致。`,
		Args: cobra.ExactArgs(2),
		RunE: runAnnotate,
	}

	cmd.Flags().BoolVar(&annotateFilter, "filter", false, "过滤模式：仅为初级表之外的汉字注音")
	cmd.Flags().BoolVar(&annotatePreserveLong, "preserve-long-vowel", false, "保留读音中的长音符 ー")
	cmd.Flags().BoolVar(&annotateCleanRuby, "clean-existing", false, "先剥离文本中已有的 ruby 标记再重新注音")
	cmd.Flags().BoolVar(&annotateRepairLines, "repair-newlines", false, "输出前修复注音断行")
	cmd.Flags().StringSliceVar(&annotateDictFiles, "dict", nil, "用于构建读音词典的已注音 HTML 文件")

	return cmd
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	log := logger.NewLoggerWithVerbose(debugMode, verboseMode)
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("filter") {
		cfg.FilterElementary = annotateFilter
	}
	if cmd.Flags().Changed("preserve-long-vowel") {
		cfg.PreserveLongVowel = annotatePreserveLong
	}

	inputPath, outputPath := args[0], args[1]

	// 分词器初始化失败是致命的，没有读音来源就无从注音
	tk, err := tokenizer.NewKagomeTokenizer(log)
	if err != nil {
		return err
	}

	dict := buildNameDictionary(annotateDictFiles, log)
	annotator := furigana.NewAnnotator(dict, cfg.Tables(), cfg.PreserveLongVowel, log)
	walker := document.NewWalker(annotator, tk, cfg.FilterElementary, log)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	content := string(data)
	if annotateCleanRuby {
		content = furigana.CleanRubyTags(content)
	}

	result, err := walker.Extract(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to annotate %s: %w", inputPath, err)
	}
	if annotateRepairLines {
		result = document.NewLineRepairer(log).Repair(result)
	}

	if err := os.WriteFile(outputPath, []byte(result+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	color.Green("注音完成: %s -> %s", inputPath, outputPath)
	log.Info("注音完成",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int("dict_terms", len(dict)),
		zap.Bool("filter", cfg.FilterElementary))
	return nil
}

// buildNameDictionary 从指定文件集合构建读音词典，坏文件跳过不中断
func buildNameDictionary(files []string, log *zap.Logger) furigana.NameDictionary {
	if len(files) == 0 {
		return nil
	}
	builder := document.NewDictionaryBuilder(log)
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			log.Warn("词典源文件无法打开，跳过", zap.String("file", file), zap.Error(err))
			continue
		}
		if err := builder.AddDocument(f); err != nil {
			log.Warn("词典源文件解析失败，跳过", zap.String("file", file), zap.Error(err))
		}
		_ = f.Close()
	}
	return builder.Build()
}
