package catalog

import (
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/ShotaGhoona/starup-hp/internal/schema"
)

// News is a news post as the site renders it.
type News struct {
	ID          string   `json:"id" yaml:"id"`
	RecordID    string   `json:"recordId" yaml:"record_id"`
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	Tags        []string `json:"tags" yaml:"tags"`
	Date        string   `json:"date" yaml:"date"`
	Description string   `json:"description" yaml:"description"`
	Thumbnail   string   `json:"thumbnail" yaml:"thumbnail"`
	Body        string   `json:"body,omitempty" yaml:"-"`
	BodyHTML    string   `json:"bodyHtml,omitempty" yaml:"-"`
}

// JobPosting is a job posting as the site renders it.
type JobPosting struct {
	ID             string `json:"id" yaml:"id"`
	RecordID       string `json:"recordId" yaml:"record_id"`
	Slug           string `json:"slug" yaml:"slug"`
	Title          string `json:"title" yaml:"title"`
	Category       string `json:"category" yaml:"category"`
	Date           string `json:"date" yaml:"date"`
	Summary        string `json:"summary" yaml:"summary"`
	JobType        string `json:"jobType" yaml:"job_type"`
	Location       string `json:"location" yaml:"location"`
	EmploymentType string `json:"employmentType" yaml:"employment_type"`
	Thumbnail      string `json:"thumbnail" yaml:"thumbnail"`
	Body           string `json:"body,omitempty" yaml:"-"`
	BodyHTML       string `json:"bodyHtml,omitempty" yaml:"-"`
}

// NewsFromValues builds a News from extracted values. recordID is the
// workspace id of the source record; it backs ID when the identifier
// property is empty.
func NewsFromValues(recordID string, v schema.Values) News {
	id := fallback(v.String(FieldID), recordID)
	title := v.String(FieldTitle)
	return News{
		ID:          id,
		RecordID:    recordID,
		Slug:        Slugify(title, id),
		Title:       title,
		Tags:        v.Strings(FieldTags),
		Date:        v.String(FieldDate),
		Description: v.String(FieldDescription),
		Thumbnail:   v.String(FieldThumbnail),
	}
}

// JobFromValues builds a JobPosting from extracted values.
func JobFromValues(recordID string, v schema.Values) JobPosting {
	id := fallback(v.String(FieldID), recordID)
	title := v.String(FieldTitle)
	return JobPosting{
		ID:             id,
		RecordID:       recordID,
		Slug:           Slugify(title, id),
		Title:          title,
		Category:       v.String(FieldCategory),
		Date:           v.String(FieldDate),
		Summary:        v.String(FieldSummary),
		JobType:        v.String(FieldJobType),
		Location:       v.String(FieldLocation),
		EmploymentType: v.String(FieldEmploymentType),
		Thumbnail:      v.String(FieldThumbnail),
	}
}

// Slugify normalizes title into a URL slug. Titles that normalize to
// nothing (for example non-Latin text) fall back to the id.
func Slugify(title, id string) string {
	if normalized, err := slug.Normalize(title); err == nil && normalized != "" {
		return normalized
	}
	if normalized, err := slug.Normalize(id); err == nil && normalized != "" {
		return normalized
	}
	return strings.TrimSpace(id)
}

func fallback(value, alt string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return alt
}
