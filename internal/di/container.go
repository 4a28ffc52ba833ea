package di

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/ShotaGhoona/starup-hp/internal/catalog"
	"github.com/ShotaGhoona/starup-hp/internal/commands"
	exportcmd "github.com/ShotaGhoona/starup-hp/internal/commands/export"
	"github.com/ShotaGhoona/starup-hp/internal/content"
	"github.com/ShotaGhoona/starup-hp/internal/logging"
	"github.com/ShotaGhoona/starup-hp/internal/logging/console"
	"github.com/ShotaGhoona/starup-hp/internal/logging/gologger"
	"github.com/ShotaGhoona/starup-hp/internal/markdown"
	"github.com/ShotaGhoona/starup-hp/internal/runtimeconfig"
	"github.com/ShotaGhoona/starup-hp/internal/schema"
	"github.com/ShotaGhoona/starup-hp/internal/workspace"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

// Container wires the content pipeline from configuration. Every
// collaborator is built once in NewContainer and shared afterwards.
type Container struct {
	cfg runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	lookup         schema.LookupFunc
	source         content.RecordSource
	pagesFS        fs.FS

	renderer *markdown.Renderer
	pages    *markdown.Loader
	content  content.Service
	export   *exportcmd.ExportHandler
}

// Option overrides a collaborator before wiring.
type Option func(*Container)

// WithLoggerProvider replaces the provider selected by cfg.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithLookup replaces the process environment as the source of collection
// ids.
func WithLookup(lookup schema.LookupFunc) Option {
	return func(c *Container) {
		if lookup != nil {
			c.lookup = lookup
		}
	}
}

// WithRecordSource replaces the HTTP workspace client.
func WithRecordSource(source content.RecordSource) Option {
	return func(c *Container) {
		if source != nil {
			c.source = source
		}
	}
}

// WithPagesFS replaces the directory named by cfg.Markdown.ContentDir.
func WithPagesFS(fsys fs.FS) Option {
	return func(c *Container) {
		if fsys != nil {
			c.pagesFS = fsys
		}
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	c := &Container{cfg: cfg, lookup: os.LookupEnv}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	// A caller-provided source makes the token irrelevant.
	if c.source != nil && cfg.Workspace.Token == "" {
		cfg.Workspace.Token = "unused"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureSource(); err != nil {
		return nil, err
	}
	c.configureMarkdown()

	news, jobs, err := c.collectionSchemas()
	if err != nil {
		return nil, err
	}

	service, err := content.NewService(c.source, news, jobs,
		content.WithRenderer(c.renderer),
		content.WithLoggerProvider(c.loggerProvider),
	)
	if err != nil {
		return nil, err
	}
	c.content = service

	export, err := exportcmd.NewExportHandler(service, commands.CommandLogger(c.loggerProvider, "export"))
	if err != nil {
		return nil, err
	}
	c.export = export

	logging.ModuleLogger(c.loggerProvider, "site").Debug("container.configured",
		"logging_provider", runtimeconfig.NormalizeProvider(cfg.Logging.Provider),
		"markdown_pages", cfg.Markdown.Enabled,
	)
	return c, nil
}

func (c *Container) collectionSchemas() (schema.Schema, schema.Schema, error) {
	news := catalog.NewsSchema(c.lookup)
	jobs := catalog.JobSchema(c.lookup)
	news.CollectionID = schema.FromEnv(c.lookup, c.cfg.Collections.NewsKey)
	jobs.CollectionID = schema.FromEnv(c.lookup, c.cfg.Collections.JobsKey)

	path := c.cfg.Collections.MappingFile
	if path == "" {
		return news, jobs, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return news, jobs, fmt.Errorf("site collections: %w", err)
	}
	mapping, err := catalog.ParseMapping(data)
	if err != nil {
		return news, jobs, err
	}
	return mapping.News.Apply(news, c.lookup), mapping.Jobs.Apply(jobs, c.lookup), nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	switch runtimeconfig.NormalizeProvider(c.cfg.Logging.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.cfg.Logging.Level,
			Format:    c.cfg.Logging.Format,
			AddSource: c.cfg.Logging.AddSource,
			Focus:     c.cfg.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("site logging: %w", err)
		}
		c.loggerProvider = provider
	default:
		level := console.ParseLevel(c.cfg.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{Writer: os.Stderr, MinLevel: &level})
	}
	return nil
}

func (c *Container) configureSource() error {
	if c.source != nil {
		return nil
	}
	ws := c.cfg.Workspace
	client, err := workspace.NewClient(workspace.Config{
		BaseURL:     ws.BaseURL,
		Token:       ws.Token,
		APIVersion:  ws.APIVersion,
		PageSize:    ws.PageSize,
		Timeout:     ws.Timeout,
		MaxAttempts: ws.MaxAttempts,
		RetryDelay:  ws.RetryDelay,
		Logger:      logging.WorkspaceLogger(c.loggerProvider),
	})
	if err != nil {
		return err
	}
	c.source = client
	return nil
}

func (c *Container) configureMarkdown() {
	r := c.cfg.Markdown.Renderer
	c.renderer = markdown.NewRenderer(interfaces.RenderOptions{
		Extensions: r.Extensions,
		Sanitize:   r.Sanitize,
		HardWraps:  r.HardWraps,
		SafeMode:   r.SafeMode,
	})

	if !c.cfg.Markdown.Enabled {
		return
	}
	if c.pagesFS == nil {
		c.pagesFS = os.DirFS(c.cfg.Markdown.ContentDir)
	}
	c.pages = markdown.NewLoader(c.pagesFS, markdown.LoaderConfig{
		Pattern:       c.cfg.Markdown.Pattern,
		Recursive:     c.cfg.Markdown.Recursive,
		IncludeDrafts: c.cfg.Markdown.IncludeDrafts,
		Renderer:      c.renderer,
	})
}

// Content returns the news and job postings service.
func (c *Container) Content() content.Service { return c.content }

// Renderer returns the shared markup renderer.
func (c *Container) Renderer() interfaces.MarkupRenderer { return c.renderer }

// Pages returns the local page loader, or nil when markdown pages are
// disabled.
func (c *Container) Pages() interfaces.PageLoader {
	if c.pages == nil {
		return nil
	}
	return c.pages
}

// Export returns the export command handler.
func (c *Container) Export() *exportcmd.ExportHandler { return c.export }

// LoggerProvider returns the configured provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }
