package tokenizer

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"
	"go.uber.org/zap"
)

// KagomeTokenizer 基于 kagome + IPA 词典的生产实现
type KagomeTokenizer struct {
	tok    *kagome.Tokenizer
	logger *zap.Logger
}

// NewKagomeTokenizer 创建 kagome 分词器
// 初始化失败是整个系统唯一的致命前置条件，调用方应当直接退出
func NewKagomeTokenizer(logger *zap.Logger) (*KagomeTokenizer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	t, err := kagome.New(ipa.Dict(), kagome.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize kagome tokenizer: %w", err)
	}
	logger.Debug("kagome 分词器初始化完成", zap.String("dict", "ipa"))
	return &KagomeTokenizer{tok: t, logger: logger}, nil
}

// Tokenize 对文本做形态素切分，读音缺失的 token 其 Reading 为空
func (k *KagomeTokenizer) Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	ktoks := k.tok.Tokenize(text)
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		reading, ok := kt.Reading()
		if !ok {
			reading = ""
		}
		out = append(out, Token{Surface: kt.Surface, Reading: reading})
	}
	return out
}
