package furigana

import "regexp"

var (
	// 只匹配最内层的 ruby 标记，基底中不允许再出现尖括号
	innerRubyPattern = regexp.MustCompile(`<ruby>([^<>]*?)<rt>.*?</rt></ruby>`)
	rpPattern        = regexp.MustCompile(`<rp>.*?</rp>`)
)

// CleanRubyTags 去掉文本中所有 ruby 标记，只保留基底文本
// 由内向外逐层剥离，直到文本长度不再变化，以处理嵌套标记；
// 同时移除 <rp> 括号回退内容
func CleanRubyTags(text string) string {
	cleaned := text
	prevLen := -1
	for len(cleaned) != prevLen {
		prevLen = len(cleaned)
		cleaned = innerRubyPattern.ReplaceAllString(cleaned, "$1")
	}
	return rpPattern.ReplaceAllString(cleaned, "")
}
