package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var ErrWorkspaceTokenRequired = errors.New("site config: workspace token is required")
var ErrWorkspaceInvalid = errors.New("site config: workspace settings are invalid")
var ErrCollectionKeyRequired = errors.New("site config: collection environment keys are required")
var ErrMarkdownContentDirRequired = errors.New("site config: markdown content directory is required when markdown pages are enabled")
var ErrLoggingProviderUnknown = errors.New("site config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("site config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("site config: logging format is invalid")

// Config aggregates everything needed to wire the content pipeline.
type Config struct {
	Workspace   WorkspaceConfig
	Collections CollectionsConfig
	Markdown    MarkdownConfig
	Logging     LoggingConfig
}

// WorkspaceConfig configures the remote workspace client.
type WorkspaceConfig struct {
	BaseURL     string
	Token       string
	APIVersion  string
	PageSize    int
	Timeout     time.Duration
	MaxAttempts uint
	RetryDelay  time.Duration
}

// CollectionsConfig names the environment keys holding collection ids.
// The ids themselves are resolved lazily at fetch time.
type CollectionsConfig struct {
	NewsKey string
	JobsKey string
	// MappingFile optionally points at a YAML document overriding the
	// built-in property mapping.
	MappingFile string
}

// MarkdownConfig covers HTML rendering and locally authored pages.
type MarkdownConfig struct {
	Enabled       bool
	ContentDir    string
	Pattern       string
	Recursive     bool
	IncludeDrafts bool
	Renderer      MarkdownRendererConfig
}

// MarkdownRendererConfig mirrors interfaces.RenderOptions.
type MarkdownRendererConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns defaults for a read-only site build. The workspace
// token has no default and must be supplied.
func DefaultConfig() Config {
	return Config{
		Workspace: WorkspaceConfig{
			BaseURL:     "https://api.notion.com/v1",
			APIVersion:  "2022-06-28",
			PageSize:    100,
			Timeout:     30 * time.Second,
			MaxAttempts: 3,
			RetryDelay:  500 * time.Millisecond,
		},
		Collections: CollectionsConfig{
			NewsKey: "WORKSPACE_NEWS_COLLECTION_ID",
			JobsKey: "WORKSPACE_JOBS_COLLECTION_ID",
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
			Renderer: MarkdownRendererConfig{
				Sanitize: true,
			},
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Workspace.Token) == "" {
		return ErrWorkspaceTokenRequired
	}
	if err := cfg.Workspace.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrWorkspaceInvalid, err)
	}
	if strings.TrimSpace(cfg.Collections.NewsKey) == "" || strings.TrimSpace(cfg.Collections.JobsKey) == "" {
		return ErrCollectionKeyRequired
	}
	if cfg.Markdown.Enabled && strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
		return ErrMarkdownContentDirRequired
	}

	provider := NormalizeProvider(cfg.Logging.Provider)
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// Validate checks the client settings field by field. Zero values are
// accepted and replaced by client defaults.
func (w WorkspaceConfig) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.BaseURL, is.URL),
		validation.Field(&w.PageSize, validation.Min(0), validation.Max(100)),
		validation.Field(&w.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&w.RetryDelay, validation.Min(time.Duration(0))),
	)
}

// NormalizeProvider lower-cases the provider name; blank means console.
func NormalizeProvider(provider string) string {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		return "console"
	}
	return provider
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
