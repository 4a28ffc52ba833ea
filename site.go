package site

import (
	"context"

	"github.com/ShotaGhoona/starup-hp/internal/catalog"
	exportcmd "github.com/ShotaGhoona/starup-hp/internal/commands/export"
	"github.com/ShotaGhoona/starup-hp/internal/content"
	"github.com/ShotaGhoona/starup-hp/internal/di"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

// ContentService exports the news and job postings contract.
type ContentService = content.Service

// News exports the rendered news post.
type News = catalog.News

// JobPosting exports the rendered job posting.
type JobPosting = catalog.JobPosting

// ExportCommand exports the command that writes collections to disk.
type ExportCommand = exportcmd.ExportCommand

// ExportSummary lists the files written by the last export.
type ExportSummary = exportcmd.Summary

// Module is the top level runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a Module from cfg and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container.
func (m *Module) Container() *di.Container {
	return m.container
}

// Content returns the configured content service.
func (m *Module) Content() ContentService {
	return m.container.Content()
}

// Renderer returns the markup renderer shared by content and pages.
func (m *Module) Renderer() interfaces.MarkupRenderer {
	return m.container.Renderer()
}

// Pages returns the local page loader, nil when markdown pages are disabled.
func (m *Module) Pages() interfaces.PageLoader {
	return m.container.Pages()
}

// Export returns the export command handler, ready for dispatcher
// subscription.
func (m *Module) Export() *exportcmd.ExportHandler {
	return m.container.Export()
}

// RunExport executes cmd directly and returns the files it produced.
func (m *Module) RunExport(ctx context.Context, cmd ExportCommand) (ExportSummary, error) {
	handler := m.container.Export()
	if err := handler.Execute(ctx, cmd); err != nil {
		return ExportSummary{}, err
	}
	return handler.Summary(), nil
}
