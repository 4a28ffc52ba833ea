package exportcmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	command "github.com/goliatone/go-command"

	"github.com/ShotaGhoona/starup-hp/internal/catalog"
	"github.com/ShotaGhoona/starup-hp/internal/commands"
	"github.com/ShotaGhoona/starup-hp/internal/identity"
	"github.com/ShotaGhoona/starup-hp/internal/logging"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

const exportOperation = "content.export"

// ErrReaderRequired is returned when no content reader is supplied.
var ErrReaderRequired = errors.New("export command: content reader is nil")

// ContentReader is the subset of content.Service the export needs.
type ContentReader interface {
	ListNews(ctx context.Context) ([]catalog.News, error)
	GetNews(ctx context.Context, id string) (*catalog.News, error)
	ListJobs(ctx context.Context) ([]catalog.JobPosting, error)
	GetJob(ctx context.Context, id string) (*catalog.JobPosting, error)
}

// document is the front matter of an exported file: a stable uid followed
// by the record's own fields.
type document[T any] struct {
	UID    string `yaml:"uid"`
	Record T      `yaml:",inline"`
}

// Summary reports what the last execution wrote.
type Summary struct {
	Files []string
}

var _ command.Commander[ExportCommand] = (*ExportHandler)(nil)

// ExportHandler fetches every record with its body and writes one file per
// record.
type ExportHandler struct {
	inner   *commands.Handler[ExportCommand]
	reader  ContentReader
	logger  interfaces.Logger
	writer  artifactWriter
	summary Summary
}

// NewExportHandler binds the handler to reader.
func NewExportHandler(reader ContentReader, logger interfaces.Logger, opts ...commands.HandlerOption[ExportCommand]) (*ExportHandler, error) {
	if reader == nil {
		return nil, ErrReaderRequired
	}
	if logger == nil {
		logger = logging.NoOp()
	}

	h := &ExportHandler{reader: reader, logger: logger, writer: dirWriter{}}

	handlerOpts := []commands.HandlerOption[ExportCommand]{
		commands.WithLogger[ExportCommand](logger),
		commands.WithOperation[ExportCommand](exportOperation),
		commands.WithMessageFields[ExportCommand](func(msg ExportCommand) map[string]any {
			fields := map[string]any{"directory": msg.Directory}
			if len(msg.Collections) > 0 {
				fields["collections"] = msg.Collections
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportCommand](nil)),
	}
	handlerOpts = append(handlerOpts, opts...)
	h.inner = commands.NewHandler[ExportCommand](h.export, handlerOpts...)
	return h, nil
}

// Execute satisfies command.Commander[ExportCommand].
func (h *ExportHandler) Execute(ctx context.Context, msg ExportCommand) error {
	return h.inner.Execute(ctx, msg)
}

// Summary returns the files produced by the last execution.
func (h *ExportHandler) Summary() Summary {
	return Summary{Files: append([]string(nil), h.summary.Files...)}
}

func (h *ExportHandler) export(ctx context.Context, msg ExportCommand) error {
	writer := h.writer
	if msg.DryRun {
		writer = noopWriter{}
	}
	h.summary = Summary{}

	if msg.selected(CollectionNews) {
		if err := h.exportNews(ctx, writer, filepath.Join(msg.Directory, CollectionNews)); err != nil {
			return err
		}
	}
	if msg.selected(CollectionJobs) {
		if err := h.exportJobs(ctx, writer, filepath.Join(msg.Directory, CollectionJobs)); err != nil {
			return err
		}
	}

	logging.WithFields(h.logger, map[string]any{
		"file_count": len(h.summary.Files),
		"dry_run":    msg.DryRun,
	}).Info("export.command.completed")
	return nil
}

func (h *ExportHandler) exportNews(ctx context.Context, writer artifactWriter, dir string) error {
	items, err := h.reader.ListNews(ctx)
	if err != nil {
		return err
	}
	if err := writer.EnsureDir(ctx, dir); err != nil {
		return fmt.Errorf("export: create %s: %w", dir, err)
	}

	used := map[string]struct{}{}
	for _, item := range items {
		detail, err := h.reader.GetNews(ctx, item.RecordID)
		if err != nil {
			return err
		}
		meta := document[catalog.News]{UID: identity.RecordUUID(CollectionNews, detail.RecordID).String(), Record: *detail}
		if err := h.write(ctx, writer, uniquePath(dir, detail.Slug, detail.ID, used), meta, detail.Body); err != nil {
			return err
		}
	}
	return nil
}

func (h *ExportHandler) exportJobs(ctx context.Context, writer artifactWriter, dir string) error {
	items, err := h.reader.ListJobs(ctx)
	if err != nil {
		return err
	}
	if err := writer.EnsureDir(ctx, dir); err != nil {
		return fmt.Errorf("export: create %s: %w", dir, err)
	}

	used := map[string]struct{}{}
	for _, item := range items {
		detail, err := h.reader.GetJob(ctx, item.RecordID)
		if err != nil {
			return err
		}
		meta := document[catalog.JobPosting]{UID: identity.RecordUUID(CollectionJobs, detail.RecordID).String(), Record: *detail}
		if err := h.write(ctx, writer, uniquePath(dir, detail.Slug, detail.ID, used), meta, detail.Body); err != nil {
			return err
		}
	}
	return nil
}

func (h *ExportHandler) write(ctx context.Context, writer artifactWriter, path string, meta any, body string) error {
	data, err := Document(meta, body)
	if err != nil {
		return err
	}
	if err := writer.WriteFile(ctx, path, data); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	h.summary.Files = append(h.summary.Files, path)
	h.logger.Debug("export.file.written", "path", path)
	return nil
}
