package property

// Kind tags a property value and decides which payload field of Value is
// populated. The wire names match the workspace API's "type" discriminator.
type Kind string

const (
	KindTitle       Kind = "title"
	KindRichText    Kind = "rich_text"
	KindNumber      Kind = "number"
	KindUniqueID    Kind = "unique_id"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multi_select"
	KindDate        Kind = "date"
	KindCheckbox    Kind = "checkbox"
	KindURL         Kind = "url"
	KindEmail       Kind = "email"
	KindPhone       Kind = "phone_number"
	KindFiles       Kind = "files"
)

var kinds = []Kind{
	KindTitle,
	KindRichText,
	KindNumber,
	KindUniqueID,
	KindSelect,
	KindMultiSelect,
	KindDate,
	KindCheckbox,
	KindURL,
	KindEmail,
	KindPhone,
	KindFiles,
}

// Kinds returns the closed set of supported kinds in declaration order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// Valid reports whether k belongs to the supported set.
func (k Kind) Valid() bool {
	switch k {
	case KindTitle, KindRichText, KindNumber, KindUniqueID, KindSelect, KindMultiSelect,
		KindDate, KindCheckbox, KindURL, KindEmail, KindPhone, KindFiles:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}

// FileType distinguishes hosted files from externally linked ones.
type FileType string

const (
	FileTypeFile     FileType = "file"
	FileTypeExternal FileType = "external"
)
