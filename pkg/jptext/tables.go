package jptext

// defaultElementaryKanji 初级（N4 及以下）汉字表
// 启用过滤模式时，完全由这些汉字构成的词不再注音
const defaultElementaryKanji = "一二三四五六七八九十百千万" +
	"日月火水木金土年今毎先来何時分半" +
	"人男女子学生友私父母兄姉弟妹家族" +
	"本名前国語文字会社話読書見聞言食飲" +
	"行帰入出休立座歩走作使働買売" +
	"大小多少高安低長短新古若明暗白黒" +
	"赤青色好悪元気有無便利不正間違" +
	"右左上下中外内後東西南北近遠" +
	"山川田町村市駅校店車道門室開閉" +
	"天雨雪花草木林森犬猫魚鳥肉米茶" +
	"朝昼夜晩午早遅週円度回番方力勉強" +
	"思知考教習問答理解同意味物品者" +
	"手足目耳口体頭顔心声電写真切持" +
	"貸借送返起寝着脱洗待取付始終住"

// defaultOkurigana 送假名词尾表
// 混合了动词与形容词的各类活用词尾，按最长匹配使用；顺序无关，长度才是关键
var defaultOkurigana = []string{
	// 形容词词尾（い形、文语形、名词化）
	"しい", "かい", "がい", "さい", "ない", "らい", "ゆい", "くい", "ぐい",
	"き", "け",
	"さ", "み", "げ",
	// 动词辞书形词尾
	"る", "く", "ぐ", "す", "つ", "ぬ", "ぶ", "む", "う",
	// て形 / た形
	"った", "って", "んだ", "んで", "いた", "いて", "いだ", "いで",
	"した", "して", "きた", "きて",
	// ます形 / 意志形 / 可能形
	"ます", "ません", "ました", "ましょう",
	"れる", "られる", "せる", "させる",
	"ない", "なかった", "なく", "ず",
	"たい", "たく",
	"こう", "そう", "よう", "まい",
	// 一段 / 五段动词常见结尾
	"える", "ける", "てる", "ねる", "べる", "める", "げる", "でる",
	"いる", "きる", "じる", "ちる", "にる", "ひる", "びる", "みる", "りる",
	"わる", "ある", "うる", "おる",
	// 单字兜底（常见动词、形容词词尾）
	"い", "し", "ち", "り", "え", "れ",
	"め", "た", "て", "だ", "で", "せ", "べ", "ね",
	"ひ", "び", "ぎ", "じ", "ぴ", "ぢ",
}

// defaultParticles 助词表（单字与多字）
// 单字送假名兜底匹配时需要排除助词，否则「山は」会被误捕获为「山は」一词
var defaultParticles = []string{
	"は", "が", "を", "に", "で", "と", "も", "の", "へ", "や",
	"か", "ね", "よ", "わ", "ば", "ら", "ぜ", "ぞ", "さ",
	"より", "から", "など", "まで", "だけ", "ほど", "くらい", "ばかり",
}

// TableSet 汇集注音引擎依赖的三张查找表
// 构造后不可变，可安全并发读取
type TableSet struct {
	elementary map[rune]struct{}
	okurigana  map[string]struct{}
	particles  map[string]struct{}
}

// DefaultTables 返回内置的默认查找表
func DefaultTables() *TableSet {
	return NewTables(nil, nil, nil)
}

// NewTables 在默认表的基础上追加自定义条目，返回新的表集合
func NewTables(extraElementary []rune, extraOkurigana, extraParticles []string) *TableSet {
	t := &TableSet{
		elementary: make(map[rune]struct{}, len(defaultElementaryKanji)/3),
		okurigana:  make(map[string]struct{}, len(defaultOkurigana)),
		particles:  make(map[string]struct{}, len(defaultParticles)),
	}
	for _, r := range defaultElementaryKanji {
		t.elementary[r] = struct{}{}
	}
	for _, r := range extraElementary {
		t.elementary[r] = struct{}{}
	}
	for _, s := range defaultOkurigana {
		t.okurigana[s] = struct{}{}
	}
	for _, s := range extraOkurigana {
		t.okurigana[s] = struct{}{}
	}
	for _, s := range defaultParticles {
		t.particles[s] = struct{}{}
	}
	for _, s := range extraParticles {
		t.particles[s] = struct{}{}
	}
	return t
}

// IsElementaryKanji 判断汉字是否属于初级汉字表
func (t *TableSet) IsElementaryKanji(r rune) bool {
	_, ok := t.elementary[r]
	return ok
}

// IsAdvancedKanji 判断字符是否为初级表之外的汉字（N3 及以上）
func (t *TableSet) IsAdvancedKanji(r rune) bool {
	return IsKanji(r) && !t.IsElementaryKanji(r)
}

// HasAdvancedKanji 判断字符串是否含有初级表之外的汉字
func (t *TableSet) HasAdvancedKanji(s string) bool {
	for _, r := range s {
		if t.IsAdvancedKanji(r) {
			return true
		}
	}
	return false
}

// IsValidOkurigana 判断字符串是否为合法的送假名词尾
func (t *TableSet) IsValidOkurigana(s string) bool {
	_, ok := t.okurigana[s]
	return ok
}

// IsParticle 判断字符串是否为助词
func (t *TableSet) IsParticle(s string) bool {
	_, ok := t.particles[s]
	return ok
}
