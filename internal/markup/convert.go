package markup

import (
	"strings"

	"github.com/ShotaGhoona/starup-hp/internal/logging"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

const fence = "```"

// separatedKinds are followed by a blank line whenever another node comes
// after them. List items are handled by blankLineBetween.
var separatedKinds = map[NodeKind]bool{
	KindHeading1:  true,
	KindHeading2:  true,
	KindHeading3:  true,
	KindParagraph: true,
	KindCode:      true,
	KindQuote:     true,
	KindDivider:   true,
}

// Converter turns nodes into markdown. The zero value is not usable; build
// one with NewConverter.
type Converter struct {
	logger interfaces.Logger
}

// NewConverter returns a converter reporting unsupported nodes to logger.
func NewConverter(logger interfaces.Logger) *Converter {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Converter{logger: logger}
}

var defaultConverter = NewConverter(nil)

// Convert renders nodes with a converter that discards diagnostics.
func Convert(nodes []Node) string {
	return defaultConverter.Convert(nodes)
}

// Convert renders nodes in order. An empty input yields "".
func (c *Converter) Convert(nodes []Node) string {
	var b strings.Builder
	for i, node := range nodes {
		c.render(&b, node)
		if i+1 < len(nodes) && blankLineBetween(node.Kind, nodes[i+1].Kind) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// blankLineBetween keeps consecutive list items adjacent and closes a list
// run with a blank line.
func blankLineBetween(current, next NodeKind) bool {
	if current.ListItem() {
		return !next.ListItem()
	}
	return separatedKinds[current]
}

func (c *Converter) render(b *strings.Builder, node Node) {
	switch node.Kind {
	case KindHeading1:
		writeLine(b, "# ", node)
	case KindHeading2:
		writeLine(b, "## ", node)
	case KindHeading3:
		writeLine(b, "### ", node)
	case KindParagraph:
		writeLine(b, "", node)
	case KindBulletedItem:
		writeLine(b, "- ", node)
	case KindNumberedItem:
		// Always "1."; markdown renderers renumber ordered lists.
		writeLine(b, "1. ", node)
	case KindQuote:
		writeLine(b, "> ", node)
	case KindCode:
		var code Code
		if node.Code != nil {
			code = *node.Code
		}
		b.WriteString(fence)
		b.WriteString(code.Language)
		b.WriteByte('\n')
		b.WriteString(code.Text)
		b.WriteByte('\n')
		b.WriteString(fence)
		b.WriteByte('\n')
	case KindDivider:
		b.WriteString("---\n")
	case KindImage:
		if node.Image == nil || strings.TrimSpace(node.Image.URL) == "" {
			return
		}
		b.WriteString("![image](")
		b.WriteString(node.Image.URL)
		b.WriteString(")\n")
	default:
		c.logger.Warn("markup.node.unsupported",
			"kind", string(node.Kind),
			"node_id", node.ID,
		)
		b.WriteString("<!-- unsupported block: ")
		b.WriteString(string(node.Kind))
		b.WriteString(" -->\n")
	}
}

func writeLine(b *strings.Builder, prefix string, node Node) {
	b.WriteString(prefix)
	b.WriteString(RenderInline(node.Text))
	b.WriteByte('\n')
}
