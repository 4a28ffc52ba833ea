package workspace

import (
	"strings"

	"github.com/ShotaGhoona/starup-hp/internal/markup"
	"github.com/ShotaGhoona/starup-hp/internal/property"
)

type richTextBody struct {
	RichText []property.TextRun `json:"rich_text"`
}

type codeBody struct {
	RichText []property.TextRun `json:"rich_text"`
	Language string             `json:"language"`
}

// rawBlock mirrors the block object of the API. Only the payload matching
// Type is populated.
type rawBlock struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	HasChildren bool              `json:"has_children"`
	Heading1    *richTextBody     `json:"heading_1,omitempty"`
	Heading2    *richTextBody     `json:"heading_2,omitempty"`
	Heading3    *richTextBody     `json:"heading_3,omitempty"`
	Paragraph   *richTextBody     `json:"paragraph,omitempty"`
	Bulleted    *richTextBody     `json:"bulleted_list_item,omitempty"`
	Numbered    *richTextBody     `json:"numbered_list_item,omitempty"`
	Quote       *richTextBody     `json:"quote,omitempty"`
	Code        *codeBody         `json:"code,omitempty"`
	Image       *property.FileRef `json:"image,omitempty"`
}

func (b rawBlock) node() markup.Node {
	node := markup.Node{
		ID:          b.ID,
		Kind:        markup.NodeKind(b.Type),
		HasChildren: b.HasChildren,
	}

	switch node.Kind {
	case markup.KindHeading1:
		node.Text = runs(b.Heading1)
	case markup.KindHeading2:
		node.Text = runs(b.Heading2)
	case markup.KindHeading3:
		node.Text = runs(b.Heading3)
	case markup.KindParagraph:
		node.Text = runs(b.Paragraph)
	case markup.KindBulletedItem:
		node.Text = runs(b.Bulleted)
	case markup.KindNumberedItem:
		node.Text = runs(b.Numbered)
	case markup.KindQuote:
		node.Text = runs(b.Quote)
	case markup.KindCode:
		code := &markup.Code{}
		if b.Code != nil {
			code.Language = b.Code.Language
			code.Text = joinPlainText(b.Code.RichText)
		}
		node.Code = code
	case markup.KindImage:
		image := &markup.Image{}
		if b.Image != nil {
			image.URL = b.Image.ResolvedURL()
		}
		node.Image = image
	}
	return node
}

func runs(body *richTextBody) []property.TextRun {
	if body == nil {
		return nil
	}
	return body.RichText
}

func joinPlainText(runs []property.TextRun) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.PlainText)
	}
	return b.String()
}
