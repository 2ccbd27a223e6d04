package furigana

import (
	"strings"
	"testing"

	"github.com/kanatext/go-furigana-agent/internal/testutils"
	"github.com/kanatext/go-furigana-agent/pkg/jptext"
	"github.com/kanatext/go-furigana-agent/pkg/tokenizer"
	"github.com/stretchr/testify/assert"
)

func TestAnnotate(t *testing.T) {
	t.Run("NoKanjiPassthrough", func(t *testing.T) {
		a := NewAnnotator(nil, nil, false, nil)
		spans := a.Annotate([]tokenizer.Token{
			{Surface: "こんにちは", Reading: "コンニチハ"},
			{Surface: "ワン", Reading: "ワン"},
		}, false)

		for _, span := range spans {
			assert.Empty(t, span.Reading)
		}
	})

	t.Run("TokenizerReadingConverted", func(t *testing.T) {
		a := NewAnnotator(nil, nil, false, nil)
		spans := a.Annotate([]tokenizer.Token{{Surface: "学校", Reading: "ガッコウ"}}, false)

		assert.Len(t, spans, 1)
		assert.Equal(t, "がっこう", spans[0].Reading)
		assert.Equal(t, "<ruby>学校<rt>がっこう</rt></ruby>", spans[0].HTML())
	})

	t.Run("DictionaryWinsOverTokenizer", func(t *testing.T) {
		dict := NameDictionary{"神崎": "かんざき"}
		a := NewAnnotator(dict, nil, false, nil)
		spans := a.Annotate([]tokenizer.Token{{Surface: "神崎", Reading: "カミサキ"}}, false)

		assert.Equal(t, "かんざき", spans[0].Reading)
	})

	t.Run("MissingReadingEmittedUnglossed", func(t *testing.T) {
		a := NewAnnotator(nil, nil, false, nil)
		spans := a.Annotate([]tokenizer.Token{{Surface: "麤", Reading: ""}}, false)

		assert.Equal(t, "麤", spans[0].Base)
		assert.Empty(t, spans[0].Reading)
	})

	t.Run("PreserveLongVowel", func(t *testing.T) {
		a := NewAnnotator(nil, nil, true, nil)
		spans := a.Annotate([]tokenizer.Token{{Surface: "勝利", Reading: "ショーリ"}}, false)
		assert.Equal(t, "しょーり", spans[0].Reading)

		b := NewAnnotator(nil, nil, false, nil)
		spans = b.Annotate([]tokenizer.Token{{Surface: "勝利", Reading: "ショーリ"}}, false)
		assert.Equal(t, "しょうり", spans[0].Reading)
	})

	t.Run("LosslessConcatenation", func(t *testing.T) {
		a := NewAnnotator(nil, nil, false, nil)
		tokens := []tokenizer.Token{
			{Surface: "私", Reading: "ワタシ"},
			{Surface: "は", Reading: "ハ"},
			{Surface: "襖", Reading: "フスマ"},
			{Surface: "を", Reading: "ヲ"},
			{Surface: "開け", Reading: "アケ"},
			{Surface: "た", Reading: "タ"},
		}
		spans := a.Annotate(tokens, false)

		var sb strings.Builder
		for _, span := range spans {
			sb.WriteString(span.Base)
		}
		assert.Equal(t, "私は襖を開けた", sb.String())
	})
}

func TestAnnotateFilterMode(t *testing.T) {
	t.Run("ElementaryOnlyUnglossed", func(t *testing.T) {
		a := NewAnnotator(nil, nil, false, nil)
		// 学生 全部由初级汉字构成，过滤模式下不注音
		spans := a.Annotate([]tokenizer.Token{{Surface: "学生", Reading: "ガクセイ"}}, true)
		assert.Empty(t, spans[0].Reading)
		assert.Equal(t, "学生", spans[0].HTML())
	})

	t.Run("AdvancedKanjiGlossed", func(t *testing.T) {
		a := NewAnnotator(nil, nil, false, nil)
		spans := a.Annotate([]tokenizer.Token{{Surface: "襖", Reading: "フスマ"}}, true)
		assert.Equal(t, "ふすま", spans[0].Reading)
	})

	t.Run("FilterAppliesToDictionaryHits", func(t *testing.T) {
		dict := NameDictionary{"先生": "せんせい"}
		a := NewAnnotator(dict, nil, false, nil)
		spans := a.Annotate([]tokenizer.Token{{Surface: "先生", Reading: "センセイ"}}, true)
		assert.Empty(t, spans[0].Reading)
	})

	t.Run("CustomElementaryTable", func(t *testing.T) {
		tables := jptext.NewTables([]rune("襖"), nil, nil)
		a := NewAnnotator(nil, tables, false, nil)
		spans := a.Annotate([]tokenizer.Token{{Surface: "襖", Reading: "フスマ"}}, true)
		assert.Empty(t, spans[0].Reading)
	})
}

func TestAnnotateText(t *testing.T) {
	t.Run("WhitespaceUnchanged", func(t *testing.T) {
		a := NewAnnotator(nil, nil, false, nil)
		tk := testutils.NewFakeTokenizer()
		assert.Equal(t, "  ", a.AnnotateText("  ", tk, false))
		assert.Equal(t, "", a.AnnotateText("", tk, false))
	})

	t.Run("MixedText", func(t *testing.T) {
		a := NewAnnotator(nil, nil, false, nil)
		tk := testutils.NewFakeTokenizer().
			Add("東京で", "東京", "トウキョウ", "で", "デ")
		got := a.AnnotateText("東京で", tk, false)
		assert.Equal(t, "<ruby>東京<rt>とうきょう</rt></ruby>で", got)
	})

	t.Run("NoKanjiRoundTrip", func(t *testing.T) {
		a := NewAnnotator(nil, nil, false, nil)
		tk := testutils.NewFakeTokenizer().
			Add("ひらがなとカタカナ", "ひらがな", "ヒラガナ", "と", "ト", "カタカナ", "カタカナ")
		assert.Equal(t, "ひらがなとカタカナ", a.AnnotateText("ひらがなとカタカナ", tk, false))
	})
}
