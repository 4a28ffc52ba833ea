package commands

import (
	"strings"

	"github.com/ShotaGhoona/starup-hp/internal/logging"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

const commandModuleRoot = "site.commands"

// CommandLogger returns a logger scoped to one command module, e.g.
// "site.commands.export".
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
