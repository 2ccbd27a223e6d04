// Package document 实现标记树遍历、读音词典构建、词汇抽取与断行修复
// 这一层消费解析好的 HTML/XHTML 树，I/O（容器解包、文件读写）由更外层负责
package document

import (
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/kanatext/go-furigana-agent/pkg/furigana"
	"github.com/kanatext/go-furigana-agent/pkg/tokenizer"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// 不参与正文提取的元素
var excludedElements = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"meta":   true,
	"link":   true,
	// rt/rp 只会作为 ruby 的子节点被整体输出，游离在外时直接丢弃
	"rt": true,
	"rp": true,
}

// 块级元素内容前后各补一个换行，保持段落边界
var blockElements = map[string]bool{
	"p":  true,
	"h1": true,
	"h2": true,
	"h3": true,
	"h4": true,
	"h5": true,
	"h6": true,
}

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// Walker 遍历标记树，对裸文本注音，保留已有的 ruby 标记
type Walker struct {
	annotator  *furigana.Annotator
	tok        tokenizer.Tokenizer
	filterMode bool
	logger     *zap.Logger
}

// NewWalker 创建标记树遍历器
func NewWalker(annotator *furigana.Annotator, tok tokenizer.Tokenizer, filterMode bool, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		annotator:  annotator,
		tok:        tok,
		filterMode: filterMode,
		logger:     logger,
	}
}

// Extract 解析 HTML 并提取带注音的纯文本
func (w *Walker) Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	return w.Walk(doc), nil
}

// walkItem 遍历栈的一个元素：待处理的节点，或块级元素收尾时补写的文本
type walkItem struct {
	node *html.Node
	text string
}

// Walk 按文档顺序遍历节点树并返回提取结果
//
// 深度嵌套的电子书文档可能超出递归深度，这里用显式栈展开遍历。
// 规则：已有 ruby 节点原样输出；图片替换为占位符；文本叶子交给
// 注音引擎；块级元素前后补换行。收尾时把三个以上连续换行压成两个，
// 并去掉首尾空白。
func (w *Walker) Walk(root *html.Node) string {
	var sb strings.Builder
	imageCounter := 0

	stack := []walkItem{{node: root}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.node == nil {
			sb.WriteString(item.text)
			continue
		}
		n := item.node

		switch n.Type {
		case html.TextNode:
			text := strings.TrimSpace(n.Data)
			if text != "" {
				sb.WriteString(w.annotator.AnnotateText(text, w.tok, w.filterMode))
			}

		case html.ElementNode:
			switch {
			case excludedElements[n.Data]:
				// 整棵子树跳过

			case n.Data == "ruby":
				// 作者标注的读音是权威的，原样保留，绝不重新注音
				if err := html.Render(&sb, n); err != nil {
					w.logger.Warn("渲染 ruby 节点失败", zap.Error(err))
				}

			case n.Data == "img":
				imageCounter++
				sb.WriteString("\n[IMAGE:" + imageFilename(n, imageCounter) + "]\n")

			case n.Data == "br":
				sb.WriteString("\n")

			case blockElements[n.Data]:
				sb.WriteString("\n")
				pushChildren(&stack, n, "\n")

			default:
				pushChildren(&stack, n, "")
			}

		default:
			pushChildren(&stack, n, "")
		}
	}

	result := excessNewlines.ReplaceAllString(sb.String(), "\n\n")
	return strings.TrimSpace(result)
}

// pushChildren 将收尾文本与子节点逆序压栈，保证弹出顺序即文档顺序
func pushChildren(stack *[]walkItem, n *html.Node, closing string) {
	if closing != "" {
		*stack = append(*stack, walkItem{text: closing})
	}
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	for i := len(children) - 1; i >= 0; i-- {
		*stack = append(*stack, walkItem{node: children[i]})
	}
}

// imageFilename 从 src 属性推导占位符里的文件名，缺失时退回序号
func imageFilename(n *html.Node, counter int) string {
	for _, attr := range n.Attr {
		if attr.Key == "src" && attr.Val != "" {
			return path.Base(attr.Val)
		}
	}
	return fmt.Sprintf("image-%d", counter)
}
