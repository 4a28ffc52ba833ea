package markup

import (
	"strings"

	"github.com/ShotaGhoona/starup-hp/internal/property"
)

// RenderInline renders runs back to back with no separator.
func RenderInline(runs []property.TextRun) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(RenderRun(run))
	}
	return b.String()
}

// RenderRun renders a single styled run. A linked run whose visible text
// equals its target becomes a bare <url> autolink and loses its styling.
func RenderRun(run property.TextRun) string {
	target, linked := run.Link()
	if !linked {
		return applyStyles(run.PlainText, run.Annotations)
	}
	if strings.TrimSpace(run.PlainText) == target {
		return "<" + *run.Href + ">"
	}
	return "[" + applyStyles(run.PlainText, run.Annotations) + "](" + *run.Href + ")"
}

// applyStyles wraps text in a fixed order: bold, italic, strikethrough,
// then code, each around the result of the previous step.
func applyStyles(text string, a property.Annotations) string {
	if a.Bold {
		text = "**" + text + "**"
	}
	if a.Italic {
		text = "*" + text + "*"
	}
	if a.Strikethrough {
		text = "~~" + text + "~~"
	}
	if a.Code {
		text = "`" + text + "`"
	}
	return text
}
