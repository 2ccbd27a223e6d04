package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// RegistryEntry 注音登记表的一条记录，以 kanji 为唯一键
type RegistryEntry struct {
	Kanji   string `json:"kanji"`
	Reading string `json:"reading"`
	Source  string `json:"source"`
	Note    string `json:"note"`
}

// Registry 一本书的注音登记表（ruby-registry.json）
type Registry struct {
	BookTitle string          `json:"bookTitle"`
	Entries   []RegistryEntry `json:"entries"`
}

// NewRegistry 由抽取的词条构建登记表，按 kanji 排序保证输出稳定
func NewRegistry(bookTitle string, words map[string]WordEntry) *Registry {
	keys := make([]string, 0, len(words))
	for k := range words {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]RegistryEntry, 0, len(keys))
	for _, k := range keys {
		w := words[k]
		entries = append(entries, RegistryEntry{
			Kanji:   w.Word,
			Reading: w.Reading,
			Source:  w.Source,
			Note:    w.Note,
		})
	}
	return &Registry{BookTitle: bookTitle, Entries: entries}
}

// Save 将登记表写入 JSON 文件
func (r *Registry) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}
	return nil
}

// 各版本书籍目录，新版本优先
var bookVersionDirs = []string{"bookv3-rephrase", "bookv2-furigana", "bookv1-rephrase"}

// FindBookDirectory 在 public 目录下为书名找到对应的输出目录
//
// 先做去空格后的包含匹配（书名与目录名互相包含都算命中），
// 再退回模糊匹配，处理文件名与目录名之间的细小差异
func FindBookDirectory(bookName, publicDir string) (string, bool) {
	fileNorm := strings.ReplaceAll(strings.TrimSpace(bookName), " ", "")

	var candidates []string
	for _, versionDir := range bookVersionDirs {
		base := filepath.Join(publicDir, versionDir)
		dirEntries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range dirEntries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(base, entry.Name())
			folderNorm := strings.ReplaceAll(entry.Name(), " ", "")
			if strings.Contains(fileNorm, folderNorm) || strings.Contains(folderNorm, fileNorm) {
				return dir, true
			}
			candidates = append(candidates, dir)
		}
	}

	// 模糊兜底
	best, bestRank := "", -1
	for _, dir := range candidates {
		folderNorm := strings.ReplaceAll(filepath.Base(dir), " ", "")
		rank := fuzzy.RankMatchNormalizedFold(folderNorm, fileNorm)
		if rank >= 0 && (bestRank < 0 || rank < bestRank) {
			best, bestRank = dir, rank
		}
	}
	if best != "" {
		return best, true
	}
	return "", false
}
