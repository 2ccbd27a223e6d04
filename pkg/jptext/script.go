// Package jptext 提供日语文本的字符分类、假名转换和查找表支持
// 这是注音引擎的基础层，所有函数都是纯函数，可安全并发调用
package jptext

import "strings"

// 日语标点（全角/半角混用是电子书文本的常态）
const (
	closingPunctuation  = "。、」』）)！？…―"
	sentenceEndingMarks = "。」』）)！？"
)

// IsKanji 判断字符是否为汉字（CJK 统一表意文字区及扩展 A 区）
func IsKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF)
}

// IsHiragana 判断字符是否为平假名
func IsHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

// IsKatakana 判断字符是否为片假名（含长音符 ー）
func IsKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

// IsLongVowelMark 判断字符是否为长音符 ー（U+30FC）
func IsLongVowelMark(r rune) bool {
	return r == 'ー'
}

// IsRepetitionMark 判断字符是否为汉字叠字符号 々
func IsRepetitionMark(r rune) bool {
	return r == '々'
}

// IsSentenceEndPunctuation 判断字符是否为句末标点
func IsSentenceEndPunctuation(r rune) bool {
	return strings.ContainsRune(sentenceEndingMarks, r)
}

// IsClosingPunctuation 判断字符是否为闭合类标点（句读、引号闭合等）
func IsClosingPunctuation(r rune) bool {
	return strings.ContainsRune(closingPunctuation, r)
}

// HasKanji 判断字符串是否含有至少一个汉字
func HasKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}

// IsAllKanji 判断字符串是否全部由汉字（或叠字符号 々）构成
// 空字符串返回 false
func IsAllKanji(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKanji(r) && !IsRepetitionMark(r) {
			return false
		}
	}
	return true
}

// LeadingHiragana 返回字符串开头连续的平假名序列（长音符 ー 视为其一部分）
// 用于送假名捕获：注音基底之后紧跟的假名活用词尾
func LeadingHiragana(s string) string {
	end := 0
	for i, r := range s {
		if !IsHiragana(r) && !IsLongVowelMark(r) {
			break
		}
		end = i + len(string(r))
	}
	return s[:end]
}
