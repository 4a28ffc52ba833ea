package property

import "strconv"

// Every accessor checks the value's Kind before touching its payload and
// returns the kind's neutral value on a mismatch or an empty payload.

// PlainText returns the plain text of the first run of a title or rich text
// value.
func PlainText(v Value) string {
	var runs []TextRun
	switch v.Kind {
	case KindTitle:
		runs = v.Title
	case KindRichText:
		runs = v.RichText
	default:
		return ""
	}
	if len(runs) == 0 {
		return ""
	}
	return runs[0].PlainText
}

// Number returns the numeric payload, or nil when absent. A present zero is
// returned as a non-nil pointer.
func Number(v Value) *float64 {
	if v.Kind != KindNumber || v.Number == nil {
		return nil
	}
	n := *v.Number
	return &n
}

// UniqueIDString returns the identifier number in decimal form. Zero is
// rendered as "0" so it is never confused with a missing identifier.
func UniqueIDString(v Value) string {
	if v.Kind != KindUniqueID || v.UniqueID == nil || v.UniqueID.Number == nil {
		return ""
	}
	return strconv.FormatInt(*v.UniqueID.Number, 10)
}

// SelectName returns the display name of the selected option.
func SelectName(v Value) string {
	if v.Kind != KindSelect || v.Select == nil {
		return ""
	}
	return v.Select.Name
}

// MultiSelectNames returns the option names in source order. The result is
// never nil.
func MultiSelectNames(v Value) []string {
	if v.Kind != KindMultiSelect || len(v.MultiSelect) == 0 {
		return []string{}
	}
	names := make([]string, 0, len(v.MultiSelect))
	for _, choice := range v.MultiSelect {
		names = append(names, choice.Name)
	}
	return names
}

// DateStart returns the ISO-8601 start of a date value.
func DateStart(v Value) string {
	if v.Kind != KindDate || v.Date == nil || v.Date.Start == nil {
		return ""
	}
	return *v.Date.Start
}

// Checkbox returns the boolean payload, false when absent.
func Checkbox(v Value) bool {
	if v.Kind != KindCheckbox || v.Checkbox == nil {
		return false
	}
	return *v.Checkbox
}

// URL returns the raw url payload.
func URL(v Value) string {
	if v.Kind != KindURL {
		return ""
	}
	return deref(v.URL)
}

// Email returns the raw email payload.
func Email(v Value) string {
	if v.Kind != KindEmail {
		return ""
	}
	return deref(v.Email)
}

// Phone returns the raw phone number payload.
func Phone(v Value) string {
	if v.Kind != KindPhone {
		return ""
	}
	return deref(v.Phone)
}

// FirstFileURL resolves the first file reference only; any further
// references are ignored.
func FirstFileURL(v Value) string {
	if v.Kind != KindFiles || len(v.Files) == 0 {
		return ""
	}
	return v.Files[0].ResolvedURL()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
