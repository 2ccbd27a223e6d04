// Package tokenizer 定义形态素分析器边界
// 注音引擎只依赖这里的接口，不关心分词器的内部实现
package tokenizer

// Token 表示分词器产出的一个形态素
type Token struct {
	// Surface 表层形，即原文中的片段
	Surface string
	// Reading 片假名读音，分词器给不出读音时为空字符串
	Reading string
}

// Tokenizer 将一段文本切分为形态素序列
// 实现必须是纯函数式的：同一输入总是产出同一 token 序列，且可并发调用
type Tokenizer interface {
	Tokenize(text string) []Token
}
