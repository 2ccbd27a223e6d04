package document

import (
	"strings"
	"testing"

	"github.com/kanatext/go-furigana-agent/internal/testutils"
	"github.com/kanatext/go-furigana-agent/pkg/furigana"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWalker(tk *testutils.FakeTokenizer, filter bool) *Walker {
	annotator := furigana.NewAnnotator(nil, nil, false, nil)
	return NewWalker(annotator, tk, filter, nil)
}

func TestWalkerExtract(t *testing.T) {
	t.Run("PlainTextAnnotated", func(t *testing.T) {
		tk := testutils.NewFakeTokenizer().
			Add("東京で", "東京", "トウキョウ", "で", "デ")
		w := newTestWalker(tk, false)

		got, err := w.Extract(strings.NewReader("<p>東京で</p>"))
		require.NoError(t, err)
		assert.Equal(t, "<ruby>東京<rt>とうきょう</rt></ruby>で", got)
	})

	t.Run("ExistingRubyPreservedVerbatim", func(t *testing.T) {
		tk := testutils.NewFakeTokenizer()
		w := newTestWalker(tk, false)

		html := `<p>これは<ruby>襖<rt>ふすま</rt></ruby>です</p>`
		got, err := w.Extract(strings.NewReader(html))
		require.NoError(t, err)
		// 作者标注的 ruby 不重新分词、不改写
		assert.Contains(t, got, "<ruby>襖<rt>ふすま</rt></ruby>")
		assert.Equal(t, "これは<ruby>襖<rt>ふすま</rt></ruby>です", got)
	})

	t.Run("RubyWithRpPreserved", func(t *testing.T) {
		tk := testutils.NewFakeTokenizer()
		w := newTestWalker(tk, false)

		html := `<p><ruby>留<rp>（</rp><rt>と</rt><rp>）</rp></ruby></p>`
		got, err := w.Extract(strings.NewReader(html))
		require.NoError(t, err)
		assert.Equal(t, "<ruby>留<rp>（</rp><rt>と</rt><rp>）</rp></ruby>", got)
	})

	t.Run("ImagePlaceholder", func(t *testing.T) {
		tk := testutils.NewFakeTokenizer()
		w := newTestWalker(tk, false)

		html := `<p>前</p><img src="images/cover.jpg"/><p>後</p>`
		tkAdd(tk, "前", "マエ")
		tkAdd(tk, "後", "アト")
		got, err := w.Extract(strings.NewReader(html))
		require.NoError(t, err)
		assert.Contains(t, got, "[IMAGE:cover.jpg]")
		// 占位符独占一行
		assert.Contains(t, got, "\n[IMAGE:cover.jpg]\n")
	})

	t.Run("ImageWithoutSrcUsesCounter", func(t *testing.T) {
		tk := testutils.NewFakeTokenizer()
		w := newTestWalker(tk, false)

		got, err := w.Extract(strings.NewReader(`<img/><img/>`))
		require.NoError(t, err)
		assert.Contains(t, got, "[IMAGE:image-1]")
		assert.Contains(t, got, "[IMAGE:image-2]")
	})

	t.Run("BlockBoundariesBecomeBlankLines", func(t *testing.T) {
		tk := testutils.NewFakeTokenizer()
		w := newTestWalker(tk, false)

		html := `<h1>タイトル</h1><p>一段目</p><p>二段目</p>`
		tkAdd(tk, "タイトル", "タイトル")
		tkAdd(tk, "一段目", "イチダンメ")
		tkAdd(tk, "二段目", "ニダンメ")
		got, err := w.Extract(strings.NewReader(html))
		require.NoError(t, err)

		parts := strings.Split(got, "\n\n")
		require.Len(t, parts, 3)
	})

	t.Run("BrBecomesNewline", func(t *testing.T) {
		tk := testutils.NewFakeTokenizer()
		w := newTestWalker(tk, false)

		got, err := w.Extract(strings.NewReader("<p>あ<br/>い</p>"))
		require.NoError(t, err)
		assert.Equal(t, "あ\nい", got)
	})

	t.Run("ExcludedNodesDropped", func(t *testing.T) {
		tk := testutils.NewFakeTokenizer()
		w := newTestWalker(tk, false)

		html := `<head><style>p{}</style><script>var x=1;</script></head><body><nav>目次</nav><p>本文</p></body>`
		tkAdd(tk, "本文", "ホンブン")
		got, err := w.Extract(strings.NewReader(html))
		require.NoError(t, err)
		assert.Equal(t, "<ruby>本文<rt>ほんぶん</rt></ruby>", got)
	})

	t.Run("ExcessNewlinesCollapsed", func(t *testing.T) {
		tk := testutils.NewFakeTokenizer()
		w := newTestWalker(tk, false)

		html := `<p>一</p><p></p><p></p><p>二</p>`
		tkAdd(tk, "一", "イチ")
		tkAdd(tk, "二", "ニ")
		got, err := w.Extract(strings.NewReader(html))
		require.NoError(t, err)
		assert.NotContains(t, got, "\n\n\n")
		assert.False(t, strings.HasPrefix(got, "\n"))
		assert.False(t, strings.HasSuffix(got, "\n"))
	})

	t.Run("UnknownElementsStillYieldText", func(t *testing.T) {
		tk := testutils.NewFakeTokenizer()
		w := newTestWalker(tk, false)

		html := `<section><aside>外側</aside></section>`
		tkAdd(tk, "外側", "ソトガワ")
		got, err := w.Extract(strings.NewReader(html))
		require.NoError(t, err)
		assert.Contains(t, got, "外側")
	})
}

// tkAdd 预置一个整体作为单 token 的文本
func tkAdd(tk *testutils.FakeTokenizer, surface, reading string) {
	tk.Add(surface, surface, reading)
}
