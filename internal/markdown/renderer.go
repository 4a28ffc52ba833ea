package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

// Renderer implements interfaces.MarkupRenderer with goldmark. It holds no
// per-call state and may be shared across goroutines.
type Renderer struct {
	defaults interfaces.RenderOptions
	policy   *bluemonday.Policy
}

var _ interfaces.MarkupRenderer = (*Renderer)(nil)

// NewRenderer returns a renderer using defaults for Render. Sanitised output
// goes through bluemonday's user-generated-content policy.
func NewRenderer(defaults interfaces.RenderOptions) *Renderer {
	return &Renderer{
		defaults: defaults,
		policy:   bluemonday.UGCPolicy(),
	}
}

// Render converts markup with the default options.
func (r *Renderer) Render(markup []byte) ([]byte, error) {
	return r.RenderWithOptions(markup, r.defaults)
}

// RenderWithOptions converts markup with opts. SafeMode drops raw HTML in
// the source; Sanitize keeps it and scrubs the final document instead.
func (r *Renderer) RenderWithOptions(markup []byte, opts interfaces.RenderOptions) ([]byte, error) {
	engine := newEngine(opts)
	var buf bytes.Buffer
	if err := engine.Convert(markup, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	if opts.Sanitize {
		return r.policy.SanitizeBytes(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

func newEngine(opts interfaces.RenderOptions) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"footnote":      extension.Footnote,
}

// collectExtensions resolves extension names, ignoring unknown ones. No
// names selects GFM with linkify.
func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM, extension.Linkify}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		extenders = append(extenders, ext)
	}
	return extenders
}
