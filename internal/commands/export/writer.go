package exportcmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// artifactWriter abstracts where exported files land.
type artifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, path string, data []byte) error
}

type dirWriter struct{}

func (dirWriter) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o755)
}

func (dirWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, string, []byte) error { return nil }

// Document renders meta as YAML front matter followed by body.
func Document(meta any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return nil, fmt.Errorf("export: encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("export: encode front matter: %w", err)
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteByte('\n')
		buf.WriteString(body)
	}
	return buf.Bytes(), nil
}

// uniquePath returns dir/slug.md, suffixing the record id when an earlier
// record of the same run already claimed the slug.
func uniquePath(dir, slug, id string, used map[string]struct{}) string {
	name := slug
	if _, taken := used[name]; taken {
		name = slug + "-" + id
	}
	used[name] = struct{}{}
	return filepath.Join(dir, name+".md")
}
