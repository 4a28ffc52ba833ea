// Package markup flattens a workspace document (an ordered list of typed
// content blocks) into a single markdown string. Conversion is pure: the
// same nodes always produce the same bytes, and nothing is retained between
// calls.
package markup

import "github.com/ShotaGhoona/starup-hp/internal/property"

// NodeKind is the block type discriminator. Values outside the declared
// constants are kept as-is and rendered as an unsupported-block marker.
type NodeKind string

const (
	KindHeading1     NodeKind = "heading_1"
	KindHeading2     NodeKind = "heading_2"
	KindHeading3     NodeKind = "heading_3"
	KindParagraph    NodeKind = "paragraph"
	KindBulletedItem NodeKind = "bulleted_list_item"
	KindNumberedItem NodeKind = "numbered_list_item"
	KindCode         NodeKind = "code"
	KindQuote        NodeKind = "quote"
	KindDivider      NodeKind = "divider"
	KindImage        NodeKind = "image"
)

// Supported reports whether k has a dedicated renderer.
func (k NodeKind) Supported() bool {
	switch k {
	case KindHeading1, KindHeading2, KindHeading3, KindParagraph, KindBulletedItem,
		KindNumberedItem, KindCode, KindQuote, KindDivider, KindImage:
		return true
	default:
		return false
	}
}

// ListItem reports whether k is a bulleted or numbered list item.
func (k NodeKind) ListItem() bool {
	return k == KindBulletedItem || k == KindNumberedItem
}

// Code is the payload of a code block. Text is the concatenated plain text
// of the block; styling is not carried.
type Code struct {
	Language string
	Text     string
}

// Image is the payload of an image block. URL is empty when the block had
// no resolvable location.
type Image struct {
	URL string
}

// Node is one content block. Text holds the rich text of headings,
// paragraphs, list items and quotes.
type Node struct {
	ID          string
	Kind        NodeKind
	Text        []property.TextRun
	Code        *Code
	Image       *Image
	HasChildren bool
}
