// Package catalog declares the two content categories the site pulls from
// the workspace (news and job postings) and the typed records built from
// their extracted values.
package catalog

import (
	"github.com/ShotaGhoona/starup-hp/internal/property"
	"github.com/ShotaGhoona/starup-hp/internal/schema"
)

// Environment keys holding the workspace collection ids.
const (
	NewsCollectionKey = "WORKSPACE_NEWS_COLLECTION_ID"
	JobsCollectionKey = "WORKSPACE_JOBS_COLLECTION_ID"
)

// Application field names shared by the schemas and the record mappers.
const (
	FieldID             = "id"
	FieldTitle          = "title"
	FieldTags           = "tags"
	FieldDate           = "date"
	FieldDescription    = "description"
	FieldThumbnail      = "thumbnail"
	FieldCategory       = "category"
	FieldSummary        = "summary"
	FieldJobType        = "jobType"
	FieldLocation       = "location"
	FieldEmploymentType = "employmentType"
)

// NewsSchema maps the news collection.
func NewsSchema(lookup schema.LookupFunc) schema.Schema {
	return schema.Schema{
		Name:         "news",
		CollectionID: schema.FromEnv(lookup, NewsCollectionKey),
		Properties: map[string]schema.Field{
			FieldID:          {Source: "ID", Kind: property.KindUniqueID},
			FieldTitle:       {Source: "Name", Kind: property.KindTitle},
			FieldTags:        {Source: "Tags", Kind: property.KindMultiSelect},
			FieldDate:        {Source: "Date", Kind: property.KindDate},
			FieldDescription: {Source: "Description", Kind: property.KindRichText},
			FieldThumbnail:   {Source: "Thumbnail", Kind: property.KindFiles},
		},
		DefaultSort: []schema.Sort{
			{Property: "Date", Direction: schema.Descending},
		},
	}
}

// JobSchema maps the job posting collection.
func JobSchema(lookup schema.LookupFunc) schema.Schema {
	return schema.Schema{
		Name:         "jobs",
		CollectionID: schema.FromEnv(lookup, JobsCollectionKey),
		Properties: map[string]schema.Field{
			FieldID:             {Source: "ID", Kind: property.KindUniqueID},
			FieldTitle:          {Source: "Title", Kind: property.KindTitle},
			FieldCategory:       {Source: "Category", Kind: property.KindSelect},
			FieldDate:           {Source: "Date", Kind: property.KindDate},
			FieldSummary:        {Source: "Summary", Kind: property.KindRichText},
			FieldJobType:        {Source: "JobType", Kind: property.KindSelect},
			FieldLocation:       {Source: "Location", Kind: property.KindRichText},
			FieldEmploymentType: {Source: "EmploymentType", Kind: property.KindSelect},
			FieldThumbnail:      {Source: "Thumbnail", Kind: property.KindFiles},
		},
		DefaultSort: []schema.Sort{
			{Property: "Date", Direction: schema.Descending},
		},
	}
}
