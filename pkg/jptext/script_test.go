package jptext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptPredicates(t *testing.T) {
	t.Run("Kanji", func(t *testing.T) {
		assert.True(t, IsKanji('漢'))
		assert.True(t, IsKanji('一'))
		// 扩展 A 区
		assert.True(t, IsKanji('㐀'))
		assert.False(t, IsKanji('あ'))
		assert.False(t, IsKanji('ア'))
		assert.False(t, IsKanji('A'))
		// 叠字符号不是汉字
		assert.False(t, IsKanji('々'))
	})

	t.Run("Hiragana", func(t *testing.T) {
		assert.True(t, IsHiragana('あ'))
		assert.True(t, IsHiragana('ん'))
		assert.False(t, IsHiragana('ア'))
		assert.False(t, IsHiragana('漢'))
	})

	t.Run("Katakana", func(t *testing.T) {
		assert.True(t, IsKatakana('ア'))
		assert.True(t, IsKatakana('ー'))
		assert.False(t, IsKatakana('あ'))
	})

	t.Run("Marks", func(t *testing.T) {
		assert.True(t, IsLongVowelMark('ー'))
		assert.False(t, IsLongVowelMark('一'))
		assert.True(t, IsRepetitionMark('々'))
		assert.False(t, IsRepetitionMark('ヶ'))
	})

	t.Run("Punctuation", func(t *testing.T) {
		assert.True(t, IsSentenceEndPunctuation('。'))
		assert.True(t, IsSentenceEndPunctuation('」'))
		assert.True(t, IsSentenceEndPunctuation('？'))
		// 读点是闭合标点但不是句末
		assert.False(t, IsSentenceEndPunctuation('、'))
		assert.True(t, IsClosingPunctuation('、'))
		assert.True(t, IsClosingPunctuation('…'))
		assert.False(t, IsClosingPunctuation('あ'))
	})
}

func TestStringHelpers(t *testing.T) {
	t.Run("HasKanji", func(t *testing.T) {
		assert.True(t, HasKanji("お茶"))
		assert.False(t, HasKanji("おちゃ"))
		assert.False(t, HasKanji(""))
	})

	t.Run("IsAllKanji", func(t *testing.T) {
		assert.True(t, IsAllKanji("留守"))
		// 叠字符号允许出现在纯汉字串里
		assert.True(t, IsAllKanji("人々"))
		assert.False(t, IsAllKanji("行く"))
		assert.False(t, IsAllKanji(""))
	})

	t.Run("LeadingHiragana", func(t *testing.T) {
		assert.Equal(t, "った", LeadingHiragana("った。そして"))
		assert.Equal(t, "", LeadingHiragana("漢字"))
		// 长音符计入平假名序列
		assert.Equal(t, "あー", LeadingHiragana("あーテスト"))
		assert.Equal(t, "", LeadingHiragana(""))
	})
}

func TestTableSet(t *testing.T) {
	tables := DefaultTables()

	t.Run("ElementaryKanji", func(t *testing.T) {
		assert.True(t, tables.IsElementaryKanji('学'))
		assert.True(t, tables.IsElementaryKanji('日'))
		assert.False(t, tables.IsElementaryKanji('襖'))

		assert.True(t, tables.IsAdvancedKanji('襖'))
		assert.False(t, tables.IsAdvancedKanji('学'))
		// 非汉字不属于任何级别
		assert.False(t, tables.IsAdvancedKanji('あ'))

		assert.True(t, tables.HasAdvancedKanji("襖を開ける"))
		assert.False(t, tables.HasAdvancedKanji("学生"))
	})

	t.Run("Okurigana", func(t *testing.T) {
		assert.True(t, tables.IsValidOkurigana("った"))
		assert.True(t, tables.IsValidOkurigana("ましょう"))
		assert.True(t, tables.IsValidOkurigana("う"))
		assert.False(t, tables.IsValidOkurigana("ぺら"))
	})

	t.Run("Particles", func(t *testing.T) {
		assert.True(t, tables.IsParticle("は"))
		assert.True(t, tables.IsParticle("ばかり"))
		assert.False(t, tables.IsParticle("った"))
	})

	t.Run("CustomTables", func(t *testing.T) {
		custom := NewTables([]rune("襖"), []string{"ぺら"}, []string{"っす"})
		assert.True(t, custom.IsElementaryKanji('襖'))
		assert.True(t, custom.IsValidOkurigana("ぺら"))
		assert.True(t, custom.IsParticle("っす"))
		// 默认表仍然生效
		assert.True(t, custom.IsElementaryKanji('学'))
		assert.True(t, custom.IsValidOkurigana("った"))
	})
}
