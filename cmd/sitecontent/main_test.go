package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ShotaGhoona/starup-hp/internal/catalog"
	"github.com/ShotaGhoona/starup-hp/internal/di"
	"github.com/ShotaGhoona/starup-hp/internal/markup"
	"github.com/ShotaGhoona/starup-hp/internal/property"
	"github.com/ShotaGhoona/starup-hp/internal/schema"
)

type stubSource struct {
	records map[string][]property.Record
	nodes   map[string][]markup.Node
	queries []string
}

func (s *stubSource) FetchRecords(_ context.Context, collectionID string, _ schema.Query) ([]property.Record, error) {
	s.queries = append(s.queries, collectionID)
	return s.records[collectionID], nil
}

func (s *stubSource) FetchRecordDetail(_ context.Context, recordID string) (property.Record, error) {
	for _, records := range s.records {
		for _, record := range records {
			if record.ID == recordID {
				return record, nil
			}
		}
	}
	return property.Record{}, errors.New("record not found")
}

func (s *stubSource) FetchContentNodes(_ context.Context, recordID string) ([]markup.Node, error) {
	return s.nodes[recordID], nil
}

func titleValue(text string) property.Value {
	return property.Value{Kind: property.KindTitle, Title: []property.TextRun{{PlainText: text}}}
}

func fixtureSource() *stubSource {
	return &stubSource{
		records: map[string][]property.Record{
			"news-db": {
				{ID: "n1", Properties: map[string]property.Value{"Name": titleValue("Office Opening")}},
			},
			"jobs-db": {
				{ID: "j1", Properties: map[string]property.Value{"Title": titleValue("Backend Engineer")}},
			},
		},
		nodes: map[string][]markup.Node{
			"n1": {
				{Kind: markup.KindHeading2, Text: []property.TextRun{{PlainText: "Intro"}}},
				{Kind: markup.KindParagraph, Text: []property.TextRun{{PlainText: "We moved."}}},
			},
		},
	}
}

func writeEnvFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	data := "WORKSPACE_NEWS_COLLECTION_ID=news-db\nWORKSPACE_JOBS_COLLECTION_ID=jobs-db\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	return path
}

func execute(t *testing.T, source *stubSource, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(newApp(&out, di.WithRecordSource(source)))
	root.SetArgs(append([]string{"--env-file", writeEnvFile(t)}, args...))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func TestNewsListJSON(t *testing.T) {
	source := fixtureSource()
	out, err := execute(t, source, "news", "list", "-o", "json")
	if err != nil {
		t.Fatalf("news list: %v", err)
	}

	var items []catalog.News
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(items) != 1 || items[0].Title != "Office Opening" || items[0].Slug != "office-opening" {
		t.Fatalf("unexpected items %+v", items)
	}
	if len(source.queries) != 1 || source.queries[0] != "news-db" {
		t.Fatalf("expected collection from env file, got %v", source.queries)
	}
}

func TestNewsShowYAMLPrintsFrontMatterDocument(t *testing.T) {
	out, err := execute(t, fixtureSource(), "news", "show", "n1")
	if err != nil {
		t.Fatalf("news show: %v", err)
	}
	if !strings.HasPrefix(out, "---\n") || !strings.Contains(out, "title: Office Opening\n") {
		t.Fatalf("expected front matter, got %q", out)
	}
	if !strings.HasSuffix(out, "---\n\n## Intro\n\nWe moved.\n") {
		t.Fatalf("expected markup body, got %q", out)
	}
}

func TestJobsListYAML(t *testing.T) {
	out, err := execute(t, fixtureSource(), "jobs", "list")
	if err != nil {
		t.Fatalf("jobs list: %v", err)
	}
	if !strings.Contains(out, "slug: backend-engineer") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestUnknownOutputFormatIsRejected(t *testing.T) {
	_, err := execute(t, fixtureSource(), "news", "list", "-o", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("expected output format error, got %v", err)
	}
}

func TestRenderBodyOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.md")
	if err := os.WriteFile(path, []byte("---\ntitle: About\n---\n# About\n\n<script>x</script>\n"), 0o600); err != nil {
		t.Fatalf("write page: %v", err)
	}

	out, err := execute(t, fixtureSource(), "render", path, "--body-only")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<h1") || strings.Contains(out, "<script>") {
		t.Fatalf("unexpected html %q", out)
	}
}

func TestExportDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	out, err := execute(t, fixtureSource(), "export", "--dir", dir, "--dry-run", "-o", "json")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var summary struct {
		DryRun bool     `json:"dry_run"`
		Files  []string `json:"files"`
	}
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if !summary.DryRun || len(summary.Files) != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create %s", dir)
	}
}

func TestExportRequiresDirectory(t *testing.T) {
	if _, err := execute(t, fixtureSource(), "export"); err == nil {
		t.Fatal("expected validation error without --dir")
	}
}

func TestLoadConfigReadsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitecontent.yaml")
	data := "workspace:\n  page_size: 25\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SITE_WORKSPACE_TOKEN", "from-env")

	a := newApp(&bytes.Buffer{})
	cfg, err := loadConfig(a.viper, path, nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Workspace.PageSize != 25 || cfg.Logging.Level != "debug" {
		t.Fatalf("expected file values, got %+v", cfg)
	}
	if cfg.Workspace.Token != "from-env" {
		t.Fatalf("expected env token, got %q", cfg.Workspace.Token)
	}
	if cfg.Workspace.APIVersion == "" {
		t.Fatal("expected defaults to survive")
	}
}
