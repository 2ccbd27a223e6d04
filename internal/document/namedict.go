package document

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kanatext/go-furigana-agent/pkg/furigana"
	"go.uber.org/zap"
)

// DictionaryBuilder 从已注音的文档集合中统计构建读音词典
//
// 两遍式注音流程的第一遍：先收集作者在全书中给出的所有 ruby 标注
// （人名、专有名词），之后注音时全书统一采用这些读音
type DictionaryBuilder struct {
	logger *zap.Logger

	counts map[rubyPairKey]int
	order  map[rubyPairKey]int
	seen   int
}

type rubyPairKey struct {
	base    string
	reading string
}

// NewDictionaryBuilder 创建词典构建器
func NewDictionaryBuilder(logger *zap.Logger) *DictionaryBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DictionaryBuilder{
		logger: logger,
		counts: make(map[rubyPairKey]int),
		order:  make(map[rubyPairKey]int),
	}
}

// AddDocument 扫描一篇文档中的全部 ruby 标注并累计频次
// 解析失败只记警告不中断，坏文档不影响整体词典
func (b *DictionaryBuilder) AddDocument(r io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		b.logger.Warn("文档解析失败，跳过", zap.Error(err))
		return err
	}

	doc.Find("ruby").Each(func(_ int, sel *goquery.Selection) {
		base, reading, ok := rubyPairFromSelection(sel)
		if !ok || base == reading {
			// base 与读音相同的标注没有信息量
			return
		}
		key := rubyPairKey{base: base, reading: reading}
		if _, exists := b.counts[key]; !exists {
			b.order[key] = b.seen
			b.seen++
		}
		b.counts[key]++
	})
	return nil
}

// Build 按频次解决同词多读音的冲突，产出规范词典
// 频次最高的读音胜出，频次相同时先出现者胜出（保证结果确定）
func (b *DictionaryBuilder) Build() furigana.NameDictionary {
	type candidate struct {
		reading string
		count   int
		order   int
	}
	best := make(map[string]candidate)
	for key, count := range b.counts {
		cur, exists := best[key.base]
		if !exists || count > cur.count || (count == cur.count && b.order[key] < cur.order) {
			best[key.base] = candidate{reading: key.reading, count: count, order: b.order[key]}
		}
	}

	dict := make(furigana.NameDictionary, len(best))
	for base, c := range best {
		dict[base] = c.reading
	}
	b.logger.Info("读音词典构建完成",
		zap.Int("terms", len(dict)),
		zap.Int("pairs", len(b.counts)))
	return dict
}

// rubyPairFromSelection 从 ruby 节点取出基底与读音
// 基底是 ruby 下排除 rt/rp 之后的文本；<rp> 括号回退不进入读音
func rubyPairFromSelection(sel *goquery.Selection) (base, reading string, ok bool) {
	var sb strings.Builder
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		if name == "rt" || name == "rp" {
			return
		}
		sb.WriteString(c.Text())
	})
	base = strings.TrimSpace(sb.String())
	reading = strings.TrimSpace(sel.Find("rt").First().Text())
	return base, reading, base != "" && reading != ""
}
