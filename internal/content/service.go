package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ShotaGhoona/starup-hp/internal/catalog"
	"github.com/ShotaGhoona/starup-hp/internal/logging"
	"github.com/ShotaGhoona/starup-hp/internal/markup"
	"github.com/ShotaGhoona/starup-hp/internal/property"
	"github.com/ShotaGhoona/starup-hp/internal/schema"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

// Service exposes the site's read-only content use-cases.
type Service interface {
	ListNews(ctx context.Context) ([]catalog.News, error)
	GetNews(ctx context.Context, id string) (*catalog.News, error)
	ListJobs(ctx context.Context) ([]catalog.JobPosting, error)
	GetJob(ctx context.Context, id string) (*catalog.JobPosting, error)
}

// RecordSource is the remote store the service reads from.
type RecordSource interface {
	FetchRecords(ctx context.Context, collectionID string, q schema.Query) ([]property.Record, error)
	FetchRecordDetail(ctx context.Context, recordID string) (property.Record, error)
	FetchContentNodes(ctx context.Context, recordID string) ([]markup.Node, error)
}

var (
	ErrSourceRequired = errors.New("content: record source is required")
	ErrIDRequired     = errors.New("content: record id is required")
)

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithRenderer enables HTML rendering of detail bodies.
func WithRenderer(renderer interfaces.MarkupRenderer) ServiceOption {
	return func(s *service) {
		s.renderer = renderer
	}
}

// WithLogger overrides the logger used by the service and its converters.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
			s.schemaLogger = logger
			s.markupLogger = logger
		}
	}
}

// WithLoggerProvider derives the service, extractor and converter loggers
// from provider, each under its own module name.
func WithLoggerProvider(provider interfaces.LoggerProvider) ServiceOption {
	return func(s *service) {
		if provider == nil {
			return
		}
		s.logger = logging.ContentLogger(provider)
		s.schemaLogger = logging.SchemaLogger(provider)
		s.markupLogger = logging.MarkupLogger(provider)
	}
}

type collection struct {
	schema     schema.Schema
	extractors schema.Extractors
}

type service struct {
	source    RecordSource
	news      collection
	jobs      collection
	converter *markup.Converter
	renderer  interfaces.MarkupRenderer
	logger    interfaces.Logger

	schemaLogger interfaces.Logger
	markupLogger interfaces.Logger
}

// NewService compiles the extractors of both schemas once and returns a
// service safe for concurrent use.
func NewService(source RecordSource, news, jobs schema.Schema, opts ...ServiceOption) (Service, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	s := &service{
		source:       source,
		logger:       logging.NoOp(),
		schemaLogger: logging.NoOp(),
		markupLogger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.news = collection{schema: news, extractors: schema.NewExtractors(news, s.schemaLogger)}
	s.jobs = collection{schema: jobs, extractors: schema.NewExtractors(jobs, s.schemaLogger)}
	s.converter = markup.NewConverter(s.markupLogger)
	return s, nil
}

func (s *service) ListNews(ctx context.Context) ([]catalog.News, error) {
	records, err := s.list(ctx, s.news)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.News, 0, len(records))
	for _, record := range records {
		out = append(out, catalog.NewsFromValues(record.ID, s.news.extractors.Extract(record)))
	}
	return out, nil
}

func (s *service) GetNews(ctx context.Context, id string) (*catalog.News, error) {
	record, body, err := s.detail(ctx, s.news, id)
	if err != nil {
		return nil, err
	}
	news := catalog.NewsFromValues(record.ID, s.news.extractors.Extract(record))
	news.Body, news.BodyHTML, err = s.render(body)
	if err != nil {
		return nil, err
	}
	return &news, nil
}

func (s *service) ListJobs(ctx context.Context) ([]catalog.JobPosting, error) {
	records, err := s.list(ctx, s.jobs)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.JobPosting, 0, len(records))
	for _, record := range records {
		out = append(out, catalog.JobFromValues(record.ID, s.jobs.extractors.Extract(record)))
	}
	return out, nil
}

func (s *service) GetJob(ctx context.Context, id string) (*catalog.JobPosting, error) {
	record, body, err := s.detail(ctx, s.jobs, id)
	if err != nil {
		return nil, err
	}
	job := catalog.JobFromValues(record.ID, s.jobs.extractors.Extract(record))
	job.Body, job.BodyHTML, err = s.render(body)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// list returns a MissingConfigError untouched so callers can treat it as
// fatal.
func (s *service) list(ctx context.Context, c collection) ([]property.Record, error) {
	collectionID, err := schema.DatabaseID(c.schema)
	if err != nil {
		return nil, err
	}

	logger := logging.WithRecordContext(s.logger, c.schema.Name, "", "list")
	records, err := s.source.FetchRecords(ctx, collectionID, schema.DefaultQuery(c.schema))
	if err != nil {
		logger.Error("content.list.failed", "error", err)
		return nil, fmt.Errorf("content: list %s: %w", c.schema.Name, err)
	}
	logger.Debug("content.list.completed", "count", len(records))
	return records, nil
}

func (s *service) detail(ctx context.Context, c collection, id string) (property.Record, []markup.Node, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return property.Record{}, nil, ErrIDRequired
	}

	logger := logging.WithRecordContext(s.logger, c.schema.Name, id, "detail")
	record, err := s.source.FetchRecordDetail(ctx, id)
	if err != nil {
		logger.Error("content.detail.failed", "error", err)
		return property.Record{}, nil, fmt.Errorf("content: get %s %s: %w", c.schema.Name, id, err)
	}
	nodes, err := s.source.FetchContentNodes(ctx, id)
	if err != nil {
		logger.Error("content.body.failed", "error", err)
		return property.Record{}, nil, fmt.Errorf("content: get %s %s body: %w", c.schema.Name, id, err)
	}
	logger.Debug("content.detail.completed", "nodes", len(nodes))
	return record, nodes, nil
}

func (s *service) render(nodes []markup.Node) (string, string, error) {
	body := s.converter.Convert(nodes)
	if s.renderer == nil || body == "" {
		return body, "", nil
	}
	html, err := s.renderer.Render([]byte(body))
	if err != nil {
		return "", "", fmt.Errorf("content: render body: %w", err)
	}
	return body, string(html), nil
}
