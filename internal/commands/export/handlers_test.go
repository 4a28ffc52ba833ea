package exportcmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-command/dispatcher"
	goerrors "github.com/goliatone/go-errors"
	"gopkg.in/yaml.v3"

	"github.com/ShotaGhoona/starup-hp/internal/catalog"
	"github.com/ShotaGhoona/starup-hp/internal/identity"
	"github.com/ShotaGhoona/starup-hp/internal/markdown"
)

type stubReader struct {
	news    []catalog.News
	jobs    []catalog.JobPosting
	bodies  map[string]string
	listErr error
	gets    []string
}

func (s *stubReader) ListNews(context.Context) ([]catalog.News, error) {
	return s.news, s.listErr
}

func (s *stubReader) GetNews(_ context.Context, id string) (*catalog.News, error) {
	s.gets = append(s.gets, id)
	for _, item := range s.news {
		if item.RecordID == id {
			item.Body = s.bodies[id]
			item.BodyHTML = "<p>ignored</p>"
			return &item, nil
		}
	}
	return nil, errors.New("not found")
}

func (s *stubReader) ListJobs(context.Context) ([]catalog.JobPosting, error) {
	return s.jobs, s.listErr
}

func (s *stubReader) GetJob(_ context.Context, id string) (*catalog.JobPosting, error) {
	s.gets = append(s.gets, id)
	for _, item := range s.jobs {
		if item.RecordID == id {
			item.Body = s.bodies[id]
			return &item, nil
		}
	}
	return nil, errors.New("not found")
}

func fixtureReader() *stubReader {
	return &stubReader{
		news: []catalog.News{
			{ID: "1", RecordID: "r1", Slug: "office-opening", Title: "Office Opening", Tags: []string{"PR"}, Date: "2024-06-01"},
			{ID: "2", RecordID: "r2", Slug: "office-opening", Title: "Office Opening", Date: "2024-05-01"},
		},
		jobs: []catalog.JobPosting{
			{ID: "7", RecordID: "j7", Slug: "backend-engineer", Title: "Backend Engineer", Location: "Tokyo"},
		},
		bodies: map[string]string{
			"r1": "## Intro\n\nWe moved.\n",
			"j7": "- Go\n- SQL\n",
		},
	}
}

func TestExportCommandValidate(t *testing.T) {
	cases := []struct {
		name  string
		cmd   ExportCommand
		valid bool
	}{
		{"ok", ExportCommand{Directory: "out"}, true},
		{"subset", ExportCommand{Directory: "out", Collections: []string{CollectionJobs}}, true},
		{"blank dir", ExportCommand{Directory: "  "}, false},
		{"unknown collection", ExportCommand{Directory: "out", Collections: []string{"events"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestExportWritesFrontMatterFiles(t *testing.T) {
	dir := t.TempDir()
	reader := fixtureReader()
	handler, err := NewExportHandler(reader, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	if err := handler.Execute(context.Background(), ExportCommand{Directory: dir}); err != nil {
		t.Fatalf("execute: %v", err)
	}

	files := handler.Summary().Files
	want := []string{
		filepath.Join(dir, "news", "office-opening.md"),
		filepath.Join(dir, "news", "office-opening-2.md"),
		filepath.Join(dir, "jobs", "backend-engineer.md"),
	}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected files %v", files)
	}

	data, err := os.ReadFile(want[0])
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	fm, body, err := markdown.ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("exported file is not readable as a page: %v", err)
	}
	if fm.Title != "Office Opening" || fm.Slug != "office-opening" || fm.Date.Format("2006-01-02") != "2024-06-01" {
		t.Fatalf("unexpected front matter %+v", fm)
	}
	if fm.Custom["record_id"] != "r1" {
		t.Fatalf("expected record_id in custom keys, got %#v", fm.Custom)
	}
	if fm.Custom["uid"] != identity.RecordUUID(CollectionNews, "r1").String() {
		t.Fatalf("expected stable uid, got %#v", fm.Custom["uid"])
	}
	if strings.TrimSpace(string(body)) != "## Intro\n\nWe moved." {
		t.Fatalf("unexpected body %q", body)
	}
	if strings.Contains(string(data), "ignored") {
		t.Fatal("html body must not be exported")
	}
}

func TestExportDryRunWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	handler, err := NewExportHandler(fixtureReader(), nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	cmd := ExportCommand{Directory: dir, Collections: []string{CollectionJobs}, DryRun: true}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(handler.Summary().Files) != 1 {
		t.Fatalf("expected one planned file, got %v", handler.Summary().Files)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected no output directory, got %v", err)
	}
}

func TestExportPropagatesReaderErrors(t *testing.T) {
	reader := fixtureReader()
	reader.listErr = errors.New("workspace down")
	handler, err := NewExportHandler(reader, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	err = handler.Execute(context.Background(), ExportCommand{Directory: t.TempDir()})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestExportInvalidCommandIsRejected(t *testing.T) {
	reader := fixtureReader()
	handler, err := NewExportHandler(reader, nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	err = handler.Execute(context.Background(), ExportCommand{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(reader.gets) != 0 {
		t.Fatal("expected no reads for an invalid command")
	}
}

func TestExportThroughDispatcher(t *testing.T) {
	dir := t.TempDir()
	handler, err := NewExportHandler(fixtureReader(), nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	sub := dispatcher.SubscribeCommand(handler)
	t.Cleanup(sub.Unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), ExportCommand{Directory: dir, Collections: []string{CollectionJobs}}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "jobs", "backend-engineer.md")); err != nil {
		t.Fatalf("expected exported job: %v", err)
	}
}

func TestDocumentWithoutBody(t *testing.T) {
	data, err := Document(map[string]string{"title": "x"}, "")
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if string(data) != "---\ntitle: x\n---\n" {
		t.Fatalf("unexpected document %q", data)
	}

	var meta map[string]string
	if err := yaml.Unmarshal([]byte(strings.Trim(string(data), "-\n")), &meta); err != nil || meta["title"] != "x" {
		t.Fatalf("front matter not valid yaml: %v %v", meta, err)
	}
}
