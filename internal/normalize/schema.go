package normalize

// Kind classifies a declared field.
type Kind string

const (
	KindDate   Kind = "date"
	KindNumber Kind = "number"
	KindString Kind = "string"
)

// Field declares one expected column of a record type.
type Field struct {
	Name    string
	Kind    Kind
	Default string // raw value used when the column is absent
}

// Schema declares the expected columns of one record type. Columns not
// declared here pass through Normalize untouched; declared columns are
// always present on the resulting Row so later stages never test for
// existence.
type Schema struct {
	RecordType string
	Fields     []Field
}

// Date declares a date field.
func Date(name string) Field { return Field{Name: name, Kind: KindDate} }

// Number declares a numeric field.
func Number(name string) Field { return Field{Name: name, Kind: KindNumber} }

// String declares a string field.
func String(name string) Field { return Field{Name: name, Kind: KindString} }
