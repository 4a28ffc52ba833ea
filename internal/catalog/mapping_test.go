package catalog

import (
	"errors"
	"testing"

	"github.com/ShotaGhoona/starup-hp/internal/property"
	"github.com/ShotaGhoona/starup-hp/internal/schema"
	"github.com/ShotaGhoona/starup-hp/internal/validation"
)

func TestParseMappingAppliesOverrides(t *testing.T) {
	doc := []byte(`
news:
  collection_key: SITE_NEWS_DB
  properties:
    title: {source: Headline, kind: title}
  default_sort:
    - {property: Published, direction: ascending}
`)
	m, err := ParseMapping(doc)
	if err != nil {
		t.Fatalf("parse mapping: %v", err)
	}
	if m.Jobs != nil {
		t.Fatal("expected no jobs override")
	}

	lookup := func(key string) (string, bool) {
		if key == "SITE_NEWS_DB" {
			return "news-db", true
		}
		return "", false
	}
	base := NewsSchema(lookup)
	got := m.News.Apply(base, lookup)

	if got.Properties[FieldTitle] != (schema.Field{Source: "Headline", Kind: property.KindTitle}) {
		t.Fatalf("expected title override, got %+v", got.Properties[FieldTitle])
	}
	if got.Properties[FieldDate].Source != "Date" {
		t.Fatal("expected untouched properties to keep their defaults")
	}
	if base.Properties[FieldTitle].Source != "Name" {
		t.Fatal("apply must not modify the base schema")
	}
	if id, err := schema.DatabaseID(got); err != nil || id != "news-db" {
		t.Fatalf("expected overridden collection key, got %q %v", id, err)
	}
	if len(got.DefaultSort) != 1 || got.DefaultSort[0].Direction != schema.Ascending {
		t.Fatalf("unexpected sort %+v", got.DefaultSort)
	}
}

func TestParseMappingRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"unknown collection": "events: {}\n",
		"unknown field":      "news:\n  properties:\n    salary: {source: Pay, kind: number}\n",
		"unknown kind":       "jobs:\n  properties:\n    title: {source: Title, kind: heading}\n",
		"missing source":     "jobs:\n  properties:\n    title: {kind: title}\n",
		"bad direction":      "news:\n  default_sort:\n    - {property: Date, direction: up}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMapping([]byte(doc))
			if !errors.Is(err, validation.ErrDocumentInvalid) {
				t.Fatalf("expected document error, got %v", err)
			}
			if len(validation.Issues(err)) == 0 {
				t.Fatal("expected at least one issue")
			}
		})
	}
}

func TestNilMappingKeepsBase(t *testing.T) {
	var m *CollectionMapping
	base := JobSchema(nil)
	if got := m.Apply(base, nil); got.Name != base.Name || len(got.Properties) != len(base.Properties) {
		t.Fatalf("unexpected schema %+v", got)
	}
}
