package markdown

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

// LoaderConfig configures page discovery.
type LoaderConfig struct {
	// Pattern filters file names (defaults to "*.md").
	Pattern string
	// Recursive walks sub-directories.
	Recursive bool
	// IncludeDrafts keeps pages whose front matter sets draft: true.
	IncludeDrafts bool
	// Renderer fills Page.BodyHTML when set.
	Renderer interfaces.MarkupRenderer
}

// Loader reads pages from an fs.FS. Paths are slash-separated and relative
// to the filesystem root.
type Loader struct {
	fs            fs.FS
	pattern       string
	recursive     bool
	includeDrafts bool
	renderer      interfaces.MarkupRenderer
}

var _ interfaces.PageLoader = (*Loader)(nil)

func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}
	return &Loader{
		fs:            filesystem,
		pattern:       pattern,
		recursive:     cfg.Recursive,
		includeDrafts: cfg.IncludeDrafts,
		renderer:      cfg.Renderer,
	}
}

// Load reads and parses a single page.
func (l *Loader) Load(ctx context.Context, name string) (*interfaces.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = path.Clean(strings.TrimPrefix(name, "/"))

	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", name, err)
	}
	info, err := fs.Stat(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("markdown loader stat %s: %w", name, err)
	}

	page, err := BuildPage(name, data, info.ModTime())
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	page.Checksum = sum[:]

	if l.renderer != nil {
		html, err := l.renderer.Render(page.Body)
		if err != nil {
			return nil, fmt.Errorf("markdown loader render %s: %w", name, err)
		}
		page.BodyHTML = html
	}
	return page, nil
}

// LoadDirectory loads every matching page under dir, sorted by path. Drafts
// are skipped unless the loader was configured to include them.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*interfaces.Page, error) {
	root := path.Clean(strings.TrimPrefix(dir, "/"))
	if root == "" {
		root = "."
	}

	var pages []*interfaces.Page
	err := fs.WalkDir(l.fs, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if p != root && !l.recursive {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if ok, _ := path.Match(l.pattern, d.Name()); !ok {
			return nil
		}

		page, err := l.Load(ctx, p)
		if err != nil {
			return err
		}
		if page.FrontMatter.Draft && !l.includeDrafts {
			return nil
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(pages, func(a, b *interfaces.Page) int {
		return strings.Compare(a.FilePath, b.FilePath)
	})
	return pages, nil
}
