package document

import (
	"strings"

	"github.com/kanatext/go-furigana-agent/pkg/jptext"
	"go.uber.org/zap"
)

// maxRepairPasses 修复的迭代上限，正常文本一两轮即收敛
const maxRepairPasses = 5

// LineRepairer 修复在注音边界被错误断开的行
//
// 提取工具处理 ruby 元素时会把基底和后续文本拆成两行：
//
//	襖
//	を開け閉めする
//
// 这里按文字种类转移的启发式把这类断行合并回去。对已经干净的
// 文本是恒等变换（幂等）。启发式有过度合并的风险，换来的是对
// 常见断行缺陷的覆盖。
type LineRepairer struct {
	maxPasses int
	logger    *zap.Logger
}

// NewLineRepairer 创建断行修复器
func NewLineRepairer(logger *zap.Logger) *LineRepairer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LineRepairer{maxPasses: maxRepairPasses, logger: logger}
}

// Repair 修复整段文本中的注音断行
func (lr *LineRepairer) Repair(content string) string {
	lines := strings.Split(content, "\n")
	lines = lr.RepairLines(lines)
	return strings.Join(lines, "\n")
}

// RepairLines 迭代合并行，直到一轮扫描不再产生合并或达到迭代上限
func (lr *LineRepairer) RepairLines(lines []string) []string {
	for pass := 0; pass < lr.maxPasses; pass++ {
		var result []string
		changed := false

		i := 0
		for i < len(lines) {
			current := lines[i]

			// 向后合并：短汉字行并入上一行
			if i > 0 && len(result) > 0 && shouldMergeWithPrev(result[len(result)-1], current) {
				result[len(result)-1] += strings.TrimSpace(current)
				i++
				changed = true
				continue
			}

			// 向前合并：可以连续吞并多行
			for i+1 < len(lines) && shouldMergeWithNext(current, lines[i+1]) {
				current = strings.TrimRight(current, " \t\r\n") + strings.TrimSpace(lines[i+1])
				i++
				changed = true
			}

			result = append(result, current)
			i++
		}

		lines = result
		if !changed {
			break
		}
		lr.logger.Debug("断行修复完成一轮", zap.Int("pass", pass+1), zap.Int("lines", len(lines)))
	}
	return lines
}

// shouldMergeWithNext 判断当前行是否应与下一行合并
func shouldMergeWithNext(currentLine, nextLine string) bool {
	current := strings.TrimSpace(currentLine)
	next := strings.TrimSpace(nextLine)
	if current == "" || next == "" {
		return false
	}

	// 注音基底被拆成单独一行：1~3 个汉字，下一行以平假名续接或同为短汉字行
	if isShortKanjiRun(current) {
		if startsWithHiragana(next) || isShortKanjiRun(next) {
			return true
		}
	}

	// 下一行是短汉字行，且当前行没有以闭合标点收尾
	if isShortKanjiRun(next) && !endsWithClosingPunctuation(current) {
		if !startsWithMarkupMarker(next) {
			return true
		}
	}

	// 汉字结尾接平假名开头：词中被断开
	if endsWithKanji(current) && startsWithHiragana(next) {
		if !startsWithMarkupMarker(next) {
			return true
		}
	}

	// 当前行不是句末，下一行是短汉字行
	if !endsWithSentenceEnd(current) && isShortKanjiRun(next) {
		if !startsWithMarkupMarker(next) {
			return true
		}
	}

	// 读点结尾接汉字开头
	if strings.HasSuffix(current, "、") && startsWithKanji(next) {
		if !startsWithMarkupMarker(next) {
			return true
		}
	}

	return false
}

// shouldMergeWithPrev 判断当前行是否应并入上一行
func shouldMergeWithPrev(prevLine, currentLine string) bool {
	prev := strings.TrimSpace(prevLine)
	current := strings.TrimSpace(currentLine)
	if prev == "" || current == "" {
		return false
	}

	if isShortKanjiRun(current) && !endsWithClosingPunctuation(prev) {
		if !startsWithMarkupMarker(current) {
			return true
		}
	}
	return false
}

// isShortKanjiRun 判断整行是否为 1~3 个纯汉字
func isShortKanjiRun(s string) bool {
	runes := []rune(s)
	if len(runes) < 1 || len(runes) > 3 {
		return false
	}
	for _, r := range runes {
		if !jptext.IsKanji(r) {
			return false
		}
	}
	return true
}

func startsWithHiragana(s string) bool {
	for _, r := range s {
		return jptext.IsHiragana(r)
	}
	return false
}

func startsWithKanji(s string) bool {
	for _, r := range s {
		return jptext.IsKanji(r)
	}
	return false
}

func endsWithKanji(s string) bool {
	runes := []rune(s)
	return len(runes) > 0 && jptext.IsKanji(runes[len(runes)-1])
}

func endsWithClosingPunctuation(s string) bool {
	runes := []rune(s)
	return len(runes) > 0 && jptext.IsClosingPunctuation(runes[len(runes)-1])
}

func endsWithSentenceEnd(s string) bool {
	runes := []rune(s)
	return len(runes) > 0 && jptext.IsSentenceEndPunctuation(runes[len(runes)-1])
}

// startsWithMarkupMarker 判断行首是否为标记/标题符号（这类行不参与合并）
func startsWithMarkupMarker(s string) bool {
	return strings.HasPrefix(s, "<") || strings.HasPrefix(s, ">") ||
		strings.HasPrefix(s, "＜") || strings.HasPrefix(s, "＞")
}
