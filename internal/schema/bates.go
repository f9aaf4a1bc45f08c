// Package schema describes the Bates production metadata fields: their
// canonical order, display typing, and which of them are promoted to
// dedicated database columns.
package schema

import "github.com/JonMunkholm/BatesView/internal/loadfile"

// FieldType is the display/storage typing for a metadata field. Load-file
// cells are always strings; the type drives post-load coercion and the
// documents table column types, never parsing.
type FieldType int

const (
	FieldText FieldType = iota
	FieldDate
	FieldNumeric
)

// FieldSpec describes one canonical Bates metadata field.
type FieldSpec struct {
	Name string
	Type FieldType
}

// fieldTypes assigns non-text types to the canonical fields that carry them.
// Everything absent from this map is FieldText.
var fieldTypes = map[string]FieldType{
	"Pages":              FieldNumeric,
	"File Size":          FieldNumeric,
	"Date Created":       FieldDate,
	"Date Last Modified": FieldDate,
	"Date Received":      FieldDate,
	"Date Sent":          FieldDate,
}

// BatesFieldSpecs lists the canonical fields in load-file order.
var BatesFieldSpecs = buildSpecs()

func buildSpecs() []FieldSpec {
	specs := make([]FieldSpec, len(loadfile.CanonicalColumns))
	for i, name := range loadfile.CanonicalColumns {
		specs[i] = FieldSpec{Name: name, Type: fieldTypes[name]}
	}
	return specs
}

// TypeOf returns the field type for a column name, defaulting to text for
// names outside the canonical schema (synthetic letter columns included).
func TypeOf(name string) FieldType {
	return fieldTypes[name]
}

// PagesColumn is the one field the viewer coerces to numeric after load.
const PagesColumn = "Pages"
