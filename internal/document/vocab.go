package document

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kanatext/go-furigana-agent/pkg/jptext"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/text/width"
)

// 词条来源标签，写入注音登记表时区分抽取方式
const (
	SourceEPUB      = "epub"
	SourceEPUBSmart = "epub_smart"
	SourceText      = "text"
)

// WordEntry 一条完整的词汇（可能合并了多个 ruby 标注和送假名词尾）
type WordEntry struct {
	Word    string
	Reading string
	Source  string
	Note    string
}

// VocabularyExtractor 从已注音文档中重建完整词汇
//
// 电子书往往逐字注音（留<rt>と</rt>守<rt>もり</rt>），这里用两条启发式
// 还原完整词条：相邻纯汉字基底合并为复合词；基底之后的活用词尾按
// 最长匹配并入词条（行<rt>い</rt>った → 行った）
type VocabularyExtractor struct {
	tables *jptext.TableSet
	logger *zap.Logger
}

// NewVocabularyExtractor 创建词汇抽取器
func NewVocabularyExtractor(tables *jptext.TableSet, logger *zap.Logger) *VocabularyExtractor {
	if tables == nil {
		tables = jptext.DefaultTables()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VocabularyExtractor{tables: tables, logger: logger}
}

// ExtractWords 抽取一篇文档中的全部词条，按词去重（先出现者保留）
func (e *VocabularyExtractor) ExtractWords(r io.Reader) (map[string]WordEntry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	words := make(map[string]WordEntry)
	processed := make(map[*html.Node]bool)

	doc.Find("ruby").Each(func(_ int, sel *goquery.Selection) {
		if len(sel.Nodes) == 0 {
			return
		}
		node := sel.Nodes[0]
		if processed[node] {
			return
		}

		base, reading, ok := rubyPairFromNode(node)
		if !ok {
			return
		}
		// 以叠字符号开头的基底无法确定原词，跳过
		if strings.HasPrefix(base, "々") {
			return
		}
		processed[node] = true

		// 复合词合并：相邻的纯汉字 ruby 逐个并入
		current := node
		for {
			next := nextSiblingRuby(current)
			if next == nil {
				break
			}
			nextBase, nextReading, nextOK := rubyPairFromNode(next)
			if !nextOK || !jptext.IsAllKanji(base) || !jptext.IsAllKanji(nextBase) {
				break
			}
			base += nextBase
			reading += nextReading
			processed[next] = true
			current = next
		}

		// 送假名捕获：基底之后紧跟的平假名按最长匹配并入
		if suffix := e.matchOkurigana(trailingText(current), base); suffix != "" {
			base += suffix
			reading += suffix
		}

		if base == reading {
			return
		}
		if _, exists := words[base]; !exists {
			words[base] = WordEntry{Word: base, Reading: reading, Source: SourceEPUBSmart}
		}
	})

	e.logger.Debug("词汇抽取完成", zap.Int("words", len(words)))
	return words, nil
}

// matchOkurigana 在基底后的文本里找最长的合法送假名词尾
//
// 取开头至多 4 个平假名作候选，按 4、3、2 的长度找词尾表；
// 都不中时退回单字检查（排除助词）。特例：基底以 こ/そ/よ/ろ 结尾时，
// 单独的 う 按意志形词尾接受（行こ+う → 行こう）
func (e *VocabularyExtractor) matchOkurigana(trailing, base string) string {
	run := []rune(jptext.LeadingHiragana(trailing))
	if len(run) == 0 {
		return ""
	}
	candidate := run
	if len(candidate) > 4 {
		candidate = candidate[:4]
	}

	for i := len(candidate); i >= 2; i-- {
		if sub := string(candidate[:i]); e.tables.IsValidOkurigana(sub) {
			return sub
		}
	}

	ch := string(candidate[0])
	if e.tables.IsValidOkurigana(ch) && !e.tables.IsParticle(ch) {
		return ch
	}
	if ch == "う" {
		baseRunes := []rune(base)
		if len(baseRunes) > 0 && strings.ContainsRune("こそよろ", baseRunes[len(baseRunes)-1]) {
			return ch
		}
	}
	return ""
}

// rubyPairFromNode 直接在节点树上取 ruby 的基底与读音
func rubyPairFromNode(n *html.Node) (base, reading string, ok bool) {
	var baseSB, readingSB strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.ElementNode && c.Data == "rt":
			readingSB.WriteString(nodeText(c))
		case c.Type == html.ElementNode && c.Data == "rp":
			// 括号回退不属于读音
		default:
			baseSB.WriteString(nodeText(c))
		}
	}
	base = strings.TrimSpace(width.Fold.String(baseSB.String()))
	reading = strings.TrimSpace(width.Fold.String(readingSB.String()))
	return base, reading, base != "" && reading != ""
}

// nodeText 收集子树的全部文本
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}

// nextSiblingRuby 返回下一个 ruby 兄弟节点，跳过纯空白文本节点
// 中间隔着任何实际内容都视为词条边界
func nextSiblingRuby(n *html.Node) *html.Node {
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		switch sib.Type {
		case html.TextNode:
			if strings.TrimSpace(sib.Data) != "" {
				return nil
			}
		case html.ElementNode:
			if sib.Data == "ruby" {
				return sib
			}
			return nil
		}
	}
	return nil
}

// trailingText 返回紧跟在节点之后的文本（全角空白折叠为半角）
func trailingText(n *html.Node) string {
	if sib := n.NextSibling; sib != nil && sib.Type == html.TextNode {
		return width.Fold.String(sib.Data)
	}
	return ""
}
