// Package furigana 实现逐词注音决策引擎
// 输入是外部分词器产出的形态素序列，输出是带注音的片段序列
package furigana

// NameDictionary 人名、术语的规范读音词典
// 由 document 包从已注音文档中统计构建，构建完成后只读，
// 可安全并发查询。每个词条只保留一个读音（平假名）。
type NameDictionary map[string]string

// Lookup 查询词条的规范读音
func (d NameDictionary) Lookup(term string) (string, bool) {
	reading, ok := d[term]
	return reading, ok
}
