package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/ShotaGhoona/starup-hp/internal/logging"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

// TelemetryStatus is the outcome class of one execution.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// TelemetryInfo describes a finished execution.
type TelemetryInfo struct {
	Command   string
	Operation string
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
	Logger    interfaces.Logger
}

// Telemetry is invoked once after every execution that passed validation.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry logs outcomes with their duration. When logger is nil the
// execution-scoped logger from TelemetryInfo is used.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	return func(_ context.Context, _ T, info TelemetryInfo) {
		entry := logger
		if entry == nil {
			entry = info.Logger
		} else {
			entry = logging.WithFields(entry, info.Fields)
		}
		if entry == nil {
			entry = logging.NoOp()
		}

		args := []any{"duration_ms", info.Duration.Milliseconds()}
		switch info.Status {
		case TelemetryStatusSuccess:
			entry.Info("command.execute.success", args...)
		case TelemetryStatusContextError:
			entry.Error("command.execute.context_error", append(args, "error", info.Error)...)
		default:
			entry.Error("command.execute.failed", append(args, "error", info.Error)...)
		}
	}
}
