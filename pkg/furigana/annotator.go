package furigana

import (
	"strings"

	"github.com/kanatext/go-furigana-agent/pkg/jptext"
	"github.com/kanatext/go-furigana-agent/pkg/tokenizer"
	"go.uber.org/zap"
)

// Span 注音引擎的输出单元
// Reading 为空表示该片段不注音，原样输出
type Span struct {
	Base    string
	Reading string
}

// HTML 渲染为 ruby 标记；无注音时直接返回基底文本
func (s Span) HTML() string {
	if s.Reading == "" {
		return s.Base
	}
	return "<ruby>" + s.Base + "<rt>" + s.Reading + "</rt></ruby>"
}

// Annotator 逐词决定是否注音、用什么读音注音
type Annotator struct {
	dict              NameDictionary
	tables            *jptext.TableSet
	preserveLongVowel bool
	logger            *zap.Logger
}

// NewAnnotator 创建注音引擎
// dict 可为 nil（不做词典查询）；tables 为 nil 时使用默认查找表；
// preserveLongVowel 控制读音中长音符 ー 的处理方式
func NewAnnotator(dict NameDictionary, tables *jptext.TableSet, preserveLongVowel bool, logger *zap.Logger) *Annotator {
	if tables == nil {
		tables = jptext.DefaultTables()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Annotator{
		dict:              dict,
		tables:            tables,
		preserveLongVowel: preserveLongVowel,
		logger:            logger,
	}
}

// Annotate 对形态素序列逐个做注音决策
//
// 每个 token 的处理顺序：
//  1. 表层形不含汉字 → 原样输出
//  2. 词典命中 → 采用词典读音（作者指定的读音优先于分词器）
//  3. 否则采用分词器读音，片假名转平假名；读音缺失则原样输出
//  4. filterMode 下仅当表层形含有初级表之外的汉字时才注音
//
// 各 Span 的 Base 按序拼接恰好还原输入文本
func (a *Annotator) Annotate(tokens []tokenizer.Token, filterMode bool) []Span {
	spans := make([]Span, 0, len(tokens))
	for _, tok := range tokens {
		spans = append(spans, a.annotateToken(tok, filterMode))
	}
	return spans
}

func (a *Annotator) annotateToken(tok tokenizer.Token, filterMode bool) Span {
	if !jptext.HasKanji(tok.Surface) {
		return Span{Base: tok.Surface}
	}

	// 词典优先：保持人名、术语在全书范围内读音一致
	reading, fromDict := a.dict.Lookup(tok.Surface)
	if !fromDict {
		if tok.Reading == "" {
			// 分词器给不出读音，不注音也不报错
			return Span{Base: tok.Surface}
		}
		reading = jptext.ToHiragana(tok.Reading, a.preserveLongVowel)
	}

	if filterMode && !a.tables.HasAdvancedKanji(tok.Surface) {
		// 过滤模式下初级汉字词不注音
		return Span{Base: tok.Surface}
	}

	if fromDict {
		a.logger.Debug("词典读音命中", zap.String("surface", tok.Surface), zap.String("reading", reading))
	}
	return Span{Base: tok.Surface, Reading: reading}
}

// AnnotateText 对一段纯文本做分词并注音，返回带 ruby 标记的文本
// 空白文本原样返回
func (a *Annotator) AnnotateText(text string, tk tokenizer.Tokenizer, filterMode bool) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	spans := a.Annotate(tk.Tokenize(text), filterMode)
	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.HTML())
	}
	return sb.String()
}
