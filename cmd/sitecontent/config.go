package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	site "github.com/ShotaGhoona/starup-hp"
	"github.com/ShotaGhoona/starup-hp/internal/runtimeconfig"
)

const (
	envPrefix = "SITE"
	tokenKey  = "SITE_WORKSPACE_TOKEN"
)

func setDefaults(v *viper.Viper, cfg site.Config) {
	v.SetDefault("workspace.base_url", cfg.Workspace.BaseURL)
	v.SetDefault("workspace.api_version", cfg.Workspace.APIVersion)
	v.SetDefault("workspace.page_size", cfg.Workspace.PageSize)
	v.SetDefault("workspace.timeout", cfg.Workspace.Timeout)
	v.SetDefault("workspace.max_attempts", cfg.Workspace.MaxAttempts)
	v.SetDefault("workspace.retry_delay", cfg.Workspace.RetryDelay)
	v.SetDefault("collections.news_key", cfg.Collections.NewsKey)
	v.SetDefault("collections.jobs_key", cfg.Collections.JobsKey)
	v.SetDefault("collections.mapping_file", cfg.Collections.MappingFile)
	v.SetDefault("markdown.enabled", cfg.Markdown.Enabled)
	v.SetDefault("markdown.content_dir", cfg.Markdown.ContentDir)
	v.SetDefault("markdown.pattern", cfg.Markdown.Pattern)
	v.SetDefault("markdown.recursive", cfg.Markdown.Recursive)
	v.SetDefault("markdown.include_drafts", cfg.Markdown.IncludeDrafts)
	v.SetDefault("markdown.renderer.extensions", cfg.Markdown.Renderer.Extensions)
	v.SetDefault("markdown.renderer.sanitize", cfg.Markdown.Renderer.Sanitize)
	v.SetDefault("markdown.renderer.hard_wraps", cfg.Markdown.Renderer.HardWraps)
	v.SetDefault("markdown.renderer.safe_mode", cfg.Markdown.Renderer.SafeMode)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)
}

// loadConfig layers the optional config file and SITE_* variables over the
// defaults. The workspace token may also come from the dotenv files.
func loadConfig(v *viper.Viper, cfgFile string, env *runtimeconfig.Env) (site.Config, error) {
	cfg := site.DefaultConfig()
	setDefaults(v, cfg)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("sitecontent")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg.Workspace.BaseURL = v.GetString("workspace.base_url")
	cfg.Workspace.Token = v.GetString("workspace.token")
	cfg.Workspace.APIVersion = v.GetString("workspace.api_version")
	cfg.Workspace.PageSize = v.GetInt("workspace.page_size")
	cfg.Workspace.Timeout = v.GetDuration("workspace.timeout")
	cfg.Workspace.MaxAttempts = v.GetUint("workspace.max_attempts")
	cfg.Workspace.RetryDelay = v.GetDuration("workspace.retry_delay")
	if cfg.Workspace.Token == "" {
		if token, ok := env.Lookup(tokenKey); ok {
			cfg.Workspace.Token = token
		}
	}

	cfg.Collections.NewsKey = v.GetString("collections.news_key")
	cfg.Collections.JobsKey = v.GetString("collections.jobs_key")
	cfg.Collections.MappingFile = v.GetString("collections.mapping_file")

	cfg.Markdown.Enabled = v.GetBool("markdown.enabled")
	cfg.Markdown.ContentDir = v.GetString("markdown.content_dir")
	cfg.Markdown.Pattern = v.GetString("markdown.pattern")
	cfg.Markdown.Recursive = v.GetBool("markdown.recursive")
	cfg.Markdown.IncludeDrafts = v.GetBool("markdown.include_drafts")
	cfg.Markdown.Renderer.Extensions = v.GetStringSlice("markdown.renderer.extensions")
	cfg.Markdown.Renderer.Sanitize = v.GetBool("markdown.renderer.sanitize")
	cfg.Markdown.Renderer.HardWraps = v.GetBool("markdown.renderer.hard_wraps")
	cfg.Markdown.Renderer.SafeMode = v.GetBool("markdown.renderer.safe_mode")

	cfg.Logging.Provider = v.GetString("logging.provider")
	cfg.Logging.Level = v.GetString("logging.level")
	cfg.Logging.Format = v.GetString("logging.format")
	cfg.Logging.AddSource = v.GetBool("logging.add_source")
	cfg.Logging.Focus = v.GetStringSlice("logging.focus")

	return cfg, nil
}
