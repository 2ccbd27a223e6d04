// Package testutils 提供测试用的分词器替身
// 真实的 kagome 分词器结果依赖词典版本，测试里用预置表保证确定性
package testutils

import "github.com/kanatext/go-furigana-agent/pkg/tokenizer"

// FakeTokenizer 按预置表返回分词结果
// 未预置的文本整体作为一个无读音 token 返回
type FakeTokenizer struct {
	Responses map[string][]tokenizer.Token
}

// NewFakeTokenizer 创建空的分词器替身
func NewFakeTokenizer() *FakeTokenizer {
	return &FakeTokenizer{Responses: make(map[string][]tokenizer.Token)}
}

// Add 预置一段文本的分词结果，token 以 surface/reading 交替给出
func (f *FakeTokenizer) Add(text string, surfaceReading ...string) *FakeTokenizer {
	var toks []tokenizer.Token
	for i := 0; i+1 < len(surfaceReading); i += 2 {
		toks = append(toks, tokenizer.Token{
			Surface: surfaceReading[i],
			Reading: surfaceReading[i+1],
		})
	}
	f.Responses[text] = toks
	return f
}

// Tokenize 实现 tokenizer.Tokenizer
func (f *FakeTokenizer) Tokenize(text string) []tokenizer.Token {
	if toks, ok := f.Responses[text]; ok {
		return toks
	}
	return []tokenizer.Token{{Surface: text}}
}
