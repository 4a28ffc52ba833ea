package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/ShotaGhoona/starup-hp/internal/property"
	"github.com/ShotaGhoona/starup-hp/internal/schema"
)

func envLookup(env map[string]string) schema.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func strPtr(s string) *string { return &s }

func TestSchemasAreValidAndDeclareExpectedFields(t *testing.T) {
	lookup := envLookup(nil)
	cases := []struct {
		schema schema.Schema
		fields []string
	}{
		{NewsSchema(lookup), []string{FieldID, FieldTitle, FieldTags, FieldDate, FieldDescription, FieldThumbnail}},
		{JobSchema(lookup), []string{FieldID, FieldTitle, FieldCategory, FieldDate, FieldSummary, FieldJobType, FieldLocation, FieldEmploymentType, FieldThumbnail}},
	}
	for _, tc := range cases {
		t.Run(tc.schema.Name, func(t *testing.T) {
			if err := tc.schema.Validate(); err != nil {
				t.Fatalf("expected valid schema, got %v", err)
			}
			if len(tc.schema.Properties) != len(tc.fields) {
				t.Fatalf("expected %d fields, got %d", len(tc.fields), len(tc.schema.Properties))
			}
			for _, name := range tc.fields {
				field, ok := tc.schema.Properties[name]
				if !ok || !field.Kind.Valid() {
					t.Fatalf("field %s missing or invalid: %+v", name, field)
				}
			}
			order := schema.DefaultSortOrder(tc.schema)
			if len(order) != 1 || order[0].Direction != schema.Descending {
				t.Fatalf("unexpected sort order %+v", order)
			}
		})
	}
}

func TestCollectionIDsComeFromEnvironment(t *testing.T) {
	lookup := envLookup(map[string]string{NewsCollectionKey: "news-db"})

	id, err := schema.DatabaseID(NewsSchema(lookup))
	if err != nil || id != "news-db" {
		t.Fatalf("expected news-db, got %q (%v)", id, err)
	}

	_, err = schema.DatabaseID(JobSchema(lookup))
	var missing *schema.MissingConfigError
	if !errors.As(err, &missing) || missing.Key != JobsCollectionKey {
		t.Fatalf("expected missing %s, got %v", JobsCollectionKey, err)
	}
}

func TestNewsFromRecord(t *testing.T) {
	seven := int64(7)
	record := property.Record{
		ID: "rec-1",
		Properties: map[string]property.Value{
			"ID":          {Kind: property.KindUniqueID, UniqueID: &property.UniqueID{Number: &seven}},
			"Name":        {Kind: property.KindTitle, Title: []property.TextRun{{PlainText: "Office Opening"}}},
			"Tags":        {Kind: property.KindMultiSelect, MultiSelect: []property.Choice{{Name: "PR"}}},
			"Date":        {Kind: property.KindDate, Date: &property.DateRange{Start: strPtr("2024-06-01")}},
			"Description": {Kind: property.KindRichText, RichText: []property.TextRun{{PlainText: "We moved."}}},
			"Thumbnail": {Kind: property.KindFiles, Files: []property.FileRef{
				{Type: property.FileTypeExternal, External: &property.FileLocation{URL: "https://cdn.test/office.jpg"}},
			}},
		},
	}

	values := schema.NewExtractors(NewsSchema(envLookup(nil)), nil).Extract(record)
	news := NewsFromValues(record.ID, values)

	if news.ID != "7" || news.RecordID != "rec-1" || news.Title != "Office Opening" {
		t.Fatalf("unexpected identity fields %+v", news)
	}
	if len(news.Tags) != 1 || news.Tags[0] != "PR" {
		t.Fatalf("unexpected tags %v", news.Tags)
	}
	if news.Date != "2024-06-01" || news.Description != "We moved." || news.Thumbnail != "https://cdn.test/office.jpg" {
		t.Fatalf("unexpected content fields %+v", news)
	}
	if news.Slug == "" || strings.Contains(news.Slug, " ") {
		t.Fatalf("unexpected slug %q", news.Slug)
	}
}

func TestJobFromSparseRecordDegrades(t *testing.T) {
	record := property.Record{ID: "rec-9"}
	values := schema.NewExtractors(JobSchema(envLookup(nil)), nil).Extract(record)
	job := JobFromValues(record.ID, values)

	if job.ID != "rec-9" {
		t.Fatalf("expected record id fallback, got %q", job.ID)
	}
	if job.Title != "" || job.Category != "" || job.Location != "" || job.Thumbnail != "" {
		t.Fatalf("expected blank fields, got %+v", job)
	}
	if job.Slug == "" {
		t.Fatal("expected slug fallback to the id")
	}
}
