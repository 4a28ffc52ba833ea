package property

import (
	"strings"
	"time"
)

// Annotations carries the inline styling flags of a text run.
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color,omitempty"`
}

// TextRun is one styled segment of rich text. Href is the link target, when
// the segment is a link.
type TextRun struct {
	PlainText   string      `json:"plain_text"`
	Annotations Annotations `json:"annotations"`
	Href        *string     `json:"href,omitempty"`
}

// Link returns the trimmed link target and whether the run has one.
func (r TextRun) Link() (string, bool) {
	if r.Href == nil {
		return "", false
	}
	target := strings.TrimSpace(*r.Href)
	if target == "" {
		return "", false
	}
	return target, true
}

// Choice is a select or multi-select option.
type Choice struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateRange holds ISO-8601 date strings as returned by the workspace.
type DateRange struct {
	Start    *string `json:"start"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// UniqueID is an auto-incrementing record identifier with an optional prefix.
type UniqueID struct {
	Prefix *string `json:"prefix,omitempty"`
	Number *int64  `json:"number"`
}

// FileLocation points at the bytes of a file reference.
type FileLocation struct {
	URL        string     `json:"url"`
	ExpiryTime *time.Time `json:"expiry_time,omitempty"`
}

// FileRef is one entry of a files property. File is set for hosted files,
// External for linked ones.
type FileRef struct {
	Name     string        `json:"name,omitempty"`
	Type     FileType      `json:"type"`
	File     *FileLocation `json:"file,omitempty"`
	External *FileLocation `json:"external,omitempty"`
}

// ResolvedURL returns the locator matching the reference type.
func (f FileRef) ResolvedURL() string {
	switch f.Type {
	case FileTypeFile:
		if f.File != nil {
			return f.File.URL
		}
	case FileTypeExternal:
		if f.External != nil {
			return f.External.URL
		}
	}
	return ""
}

// Value is a tagged property value. Kind decides which payload field is
// meaningful; the others are ignored even when populated.
type Value struct {
	ID          string     `json:"id,omitempty"`
	Kind        Kind       `json:"type"`
	Title       []TextRun  `json:"title,omitempty"`
	RichText    []TextRun  `json:"rich_text,omitempty"`
	Number      *float64   `json:"number,omitempty"`
	UniqueID    *UniqueID  `json:"unique_id,omitempty"`
	Select      *Choice    `json:"select,omitempty"`
	MultiSelect []Choice   `json:"multi_select,omitempty"`
	Date        *DateRange `json:"date,omitempty"`
	Checkbox    *bool      `json:"checkbox,omitempty"`
	URL         *string    `json:"url,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone_number,omitempty"`
	Files       []FileRef  `json:"files,omitempty"`
}

// Record is a single database row as returned by the workspace.
type Record struct {
	ID             string           `json:"id"`
	CreatedTime    time.Time        `json:"created_time"`
	LastEditedTime time.Time        `json:"last_edited_time"`
	URL            string           `json:"url,omitempty"`
	Archived       bool             `json:"archived,omitempty"`
	Properties     map[string]Value `json:"properties"`
}

// Property looks up a property by its source field name.
func (r Record) Property(name string) (Value, bool) {
	if r.Properties == nil {
		return Value{}, false
	}
	value, ok := r.Properties[name]
	return value, ok
}
