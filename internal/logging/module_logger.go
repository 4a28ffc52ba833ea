package logging

import (
	"context"
	"strings"

	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

const (
	rootModule      = "site"
	schemaModule    = "site.schema"
	markupModule    = "site.markup"
	workspaceModule = "site.workspace"
	contentModule   = "site.content"
)

const (
	fieldCollection = "collection"
	fieldRecordID   = "record_id"
	fieldOperation  = "operation"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// SchemaLogger returns the logger namespace reserved for extractor compilation.
func SchemaLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, schemaModule)
}

// MarkupLogger returns the logger namespace reserved for block conversion.
func MarkupLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markupModule)
}

// WorkspaceLogger returns the logger namespace reserved for the remote client.
func WorkspaceLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, workspaceModule)
}

// ContentLogger returns the logger namespace reserved for content services.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// WithRecordContext enriches the logger with collection, record and
// operation fields. Empty values are ignored.
func WithRecordContext(logger interfaces.Logger, collection, recordID, operation string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(collection); trimmed != "" {
		fields[fieldCollection] = trimmed
	}
	if trimmed := strings.TrimSpace(recordID); trimmed != "" {
		fields[fieldRecordID] = trimmed
	}
	if trimmed := strings.TrimSpace(operation); trimmed != "" {
		fields[fieldOperation] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
