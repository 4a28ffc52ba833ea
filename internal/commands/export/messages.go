package exportcmd

import (
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const exportMessageType = "site.content.export"

const (
	CollectionNews = "news"
	CollectionJobs = "jobs"
)

// ExportCommand writes every record of the selected collections as a
// front-matter markup file under Directory/<collection>/<slug>.md.
type ExportCommand struct {
	// Directory is the output root; it is created when missing.
	Directory string `json:"directory"`
	// Collections limits the export; empty selects news and jobs.
	Collections []string `json:"collections,omitempty"`
	// DryRun fetches and renders without touching the filesystem.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ExportCommand) Type() string { return exportMessageType }

// Validate ensures a directory is present and collection names are known.
func (cmd ExportCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("site.export.directory_required", "directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.Collections, validation.Each(validation.In(CollectionNews, CollectionJobs))),
	)
}

func (cmd ExportCommand) selected(collection string) bool {
	return len(cmd.Collections) == 0 || slices.Contains(cmd.Collections, collection)
}
