package interfaces

import (
	"context"
	"time"
)

// MarkupRenderer converts markup text (as produced by the block converter or
// authored in local page files) into HTML.
type MarkupRenderer interface {
	// Render converts markup into HTML using the renderer's default settings.
	Render(markup []byte) ([]byte, error)
	// RenderWithOptions converts markup into HTML using the supplied overrides.
	RenderWithOptions(markup []byte, opts RenderOptions) ([]byte, error)
}

// RenderOptions customises rendering behaviour. Names stay readable so the
// struct can be filled from configuration files and CLI flags.
type RenderOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// PageLoader reads locally authored pages (front matter + markup body).
type PageLoader interface {
	Load(ctx context.Context, path string) (*Page, error)
	LoadDirectory(ctx context.Context, dir string) ([]*Page, error)
}

// Page represents a front-matter file with its parsed metadata and body.
type Page struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	Checksum     []byte
}

// FrontMatter models metadata extracted from page files. Custom keeps
// template- or section-specific values that have no dedicated field.
type FrontMatter struct {
	Title       string         `yaml:"title" json:"title"`
	Slug        string         `yaml:"slug" json:"slug"`
	Description string         `yaml:"description" json:"description"`
	Tags        []string       `yaml:"tags" json:"tags"`
	Thumbnail   string         `yaml:"thumbnail" json:"thumbnail"`
	Date        time.Time      `yaml:"date" json:"date"`
	Draft       bool           `yaml:"draft" json:"draft"`
	Custom      map[string]any `yaml:",inline" json:"custom"`
	Raw         map[string]any `yaml:"-" json:"raw"`
}
