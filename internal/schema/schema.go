package schema

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ShotaGhoona/starup-hp/internal/property"
)

// ErrMissingConfig is matched by every error reporting an unset collection id.
var ErrMissingConfig = errors.New("schema config: collection id is not configured")

// MissingConfigError names the configuration key whose value was absent.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("schema config: %s is not set", e.Key)
}

// Is lets errors.Is(err, ErrMissingConfig) match any missing key.
func (e *MissingConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// Direction orders query results.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Sort is one entry of a default sort order.
type Sort struct {
	Property  string    `json:"property" yaml:"property"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// Validate implements validation.Validatable.
func (s Sort) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Property, validation.Required),
		validation.Field(&s.Direction, validation.Required, validation.In(Ascending, Descending)),
	)
}

// Field maps one application field onto a source property.
type Field struct {
	Source string        `json:"source" yaml:"source"`
	Kind   property.Kind `json:"kind" yaml:"kind"`
}

// Validate implements validation.Validatable. Kind is intentionally not
// checked: unknown kinds degrade to a nil extractor instead of failing.
func (f Field) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Source, validation.Required),
	)
}

// LookupFunc resolves configuration keys, matching os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Schema declares how records of one collection map onto application fields.
// Properties is keyed by application field name.
type Schema struct {
	Name         string
	CollectionID func() (string, error)
	Properties   map[string]Field
	DefaultSort  []Sort
}

// Validate checks the declaration itself, not any record.
func (s Schema) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.CollectionID, validation.By(func(value any) error {
			if fn, _ := value.(func() (string, error)); fn == nil {
				return validation.NewError("schema.collection_id_required", "collection id accessor is required")
			}
			return nil
		})),
		validation.Field(&s.Properties, validation.Required),
		validation.Field(&s.DefaultSort),
	)
}

// FromEnv builds a collection id accessor reading key through lookup. Blank
// values count as unset.
func FromEnv(lookup LookupFunc, key string) func() (string, error) {
	return func() (string, error) {
		if lookup == nil {
			return "", &MissingConfigError{Key: key}
		}
		value, ok := lookup(key)
		if !ok || strings.TrimSpace(value) == "" {
			return "", &MissingConfigError{Key: key}
		}
		return strings.TrimSpace(value), nil
	}
}

// Static returns an accessor that always yields id.
func Static(id string) func() (string, error) {
	return func() (string, error) {
		if strings.TrimSpace(id) == "" {
			return "", &MissingConfigError{Key: "collection id"}
		}
		return id, nil
	}
}

// DatabaseID resolves the collection id of s.
func DatabaseID(s Schema) (string, error) {
	if s.CollectionID == nil {
		return "", fmt.Errorf("%w: schema %q has no collection accessor", ErrMissingConfig, s.Name)
	}
	return s.CollectionID()
}

// DefaultSortOrder returns a copy of the declared sort order.
func DefaultSortOrder(s Schema) []Sort {
	return append([]Sort(nil), s.DefaultSort...)
}

// Query carries the sort and filter of a collection fetch. Filter is passed
// to the workspace untouched.
type Query struct {
	Sorts  []Sort
	Filter map[string]any
}

// DefaultQuery returns a Query using the schema's default sort order.
func DefaultQuery(s Schema) Query {
	return Query{Sorts: DefaultSortOrder(s)}
}
