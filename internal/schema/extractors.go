package schema

import (
	"maps"
	"slices"

	"github.com/ShotaGhoona/starup-hp/internal/logging"
	"github.com/ShotaGhoona/starup-hp/internal/property"
	"github.com/ShotaGhoona/starup-hp/pkg/interfaces"
)

// Extractor pulls one application value out of a record. Extractors never
// panic on missing properties; they return the kind's neutral value.
type Extractor func(record property.Record) any

// Extractors holds one compiled extractor per declared application field.
type Extractors map[string]Extractor

// NewExtractors compiles an extractor for every property of s. A property
// with an unsupported kind gets an extractor returning nil and a warning is
// logged; the remaining fields are unaffected.
func NewExtractors(s Schema, logger interfaces.Logger) Extractors {
	if logger == nil {
		logger = logging.NoOp()
	}
	out := make(Extractors, len(s.Properties))
	for name, field := range s.Properties {
		out[name] = compile(s.Name, name, field, logger)
	}
	return out
}

func compile(schemaName, name string, field Field, logger interfaces.Logger) Extractor {
	switch field.Kind {
	case property.KindTitle, property.KindRichText:
		return bind(field.Source, property.PlainText)
	case property.KindNumber:
		return bind(field.Source, property.Number)
	case property.KindUniqueID:
		return bind(field.Source, property.UniqueIDString)
	case property.KindSelect:
		return bind(field.Source, property.SelectName)
	case property.KindMultiSelect:
		return bind(field.Source, property.MultiSelectNames)
	case property.KindDate:
		return bind(field.Source, property.DateStart)
	case property.KindCheckbox:
		return bind(field.Source, property.Checkbox)
	case property.KindURL:
		return bind(field.Source, property.URL)
	case property.KindEmail:
		return bind(field.Source, property.Email)
	case property.KindPhone:
		return bind(field.Source, property.Phone)
	case property.KindFiles:
		return bind(field.Source, property.FirstFileURL)
	default:
		logger.Warn("schema.extractor.unknown_kind",
			"schema", schemaName,
			"field", name,
			"kind", string(field.Kind),
		)
		return func(property.Record) any { return nil }
	}
}

func bind[T any](source string, access func(property.Value) T) Extractor {
	return func(record property.Record) any {
		value, _ := record.Property(source)
		return access(value)
	}
}

// Names returns the application field names in sorted order.
func (e Extractors) Names() []string {
	return slices.Sorted(maps.Keys(e))
}

// Extract applies every extractor to record.
func (e Extractors) Extract(record property.Record) Values {
	values := make(Values, len(e))
	for name, extract := range e {
		values[name] = extract(record)
	}
	return values
}

// Values is the flat result of Extract, keyed by application field name.
type Values map[string]any

// String returns the value of a text-like field, "" when absent.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Strings returns the value of a multi-select field, never nil.
func (v Values) Strings(name string) []string {
	if s, ok := v[name].([]string); ok && s != nil {
		return s
	}
	return []string{}
}

// Bool returns the value of a checkbox field.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Number returns the value of a number field, nil when absent.
func (v Values) Number(name string) *float64 {
	n, _ := v[name].(*float64)
	return n
}
