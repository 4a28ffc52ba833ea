package markdown

import (
	"bytes"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

// ParseFrontMatter splits source into its metadata and the markup body
// without delimiters. Sources without front matter yield empty metadata
// and the whole input as body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta envelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta.frontMatter(), body, nil
}

// BuildPage parses source into a page. BodyHTML is left empty.
func BuildPage(path string, source []byte, modified time.Time) (*interfaces.Page, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &interfaces.Page{
		FilePath:     path,
		FrontMatter:  fm,
		Body:         body,
		LastModified: modified,
	}, nil
}

type envelope struct {
	Title       string         `yaml:"title"`
	Slug        string         `yaml:"slug"`
	Description string         `yaml:"description"`
	Tags        []string       `yaml:"tags"`
	Thumbnail   string         `yaml:"thumbnail"`
	Date        any            `yaml:"date"`
	Draft       bool           `yaml:"draft"`
	Custom      map[string]any `yaml:",inline"`
}

func (e envelope) frontMatter() interfaces.FrontMatter {
	date := parseDate(e.Date)
	custom := map[string]any{}
	maps.Copy(custom, e.Custom)

	raw := maps.Clone(custom)
	set := func(key string, value any, present bool) {
		if present {
			raw[key] = value
		}
	}
	set("title", e.Title, e.Title != "")
	set("slug", e.Slug, e.Slug != "")
	set("description", e.Description, e.Description != "")
	set("tags", append([]string(nil), e.Tags...), len(e.Tags) > 0)
	set("thumbnail", e.Thumbnail, e.Thumbnail != "")
	set("date", date, !date.IsZero())
	raw["draft"] = e.Draft

	return interfaces.FrontMatter{
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		Tags:        append([]string(nil), e.Tags...),
		Thumbnail:   e.Thumbnail,
		Date:        date,
		Draft:       e.Draft,
		Custom:      custom,
		Raw:         raw,
	}
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate accepts YAML timestamps as well as quoted date strings, which is
// how exported records carry their dates.
func parseDate(value any) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
