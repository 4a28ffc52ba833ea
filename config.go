package site

import "github.com/ShotaGhoona/starup-hp/internal/runtimeconfig"

var (
	ErrWorkspaceTokenRequired     = runtimeconfig.ErrWorkspaceTokenRequired
	ErrWorkspaceInvalid           = runtimeconfig.ErrWorkspaceInvalid
	ErrCollectionKeyRequired      = runtimeconfig.ErrCollectionKeyRequired
	ErrMarkdownContentDirRequired = runtimeconfig.ErrMarkdownContentDirRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config                 = runtimeconfig.Config
	WorkspaceConfig        = runtimeconfig.WorkspaceConfig
	CollectionsConfig      = runtimeconfig.CollectionsConfig
	MarkdownConfig         = runtimeconfig.MarkdownConfig
	MarkdownRendererConfig = runtimeconfig.MarkdownRendererConfig
	LoggingConfig          = runtimeconfig.LoggingConfig
	Env                    = runtimeconfig.Env
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadEnv reads dotenv files; see runtimeconfig.LoadEnv for precedence.
func LoadEnv(files ...string) (*Env, error) {
	return runtimeconfig.LoadEnv(files...)
}
