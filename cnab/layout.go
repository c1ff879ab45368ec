package cnab

import "strings"

// Field is a named column range of a record. Start and End are 1-indexed and inclusive.
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Len returns the width of the field in characters.
func (f Field) Len() int {
	return f.End - f.Start + 1
}

// Validate reports whether the field describes a usable range.
func (f Field) Validate() error {
	return validateRange(f.Start, f.End)
}

// Extract returns the field's characters in r, trimmed of surrounding spaces.
// A record shorter than the field yields the available part.
func (f Field) Extract(r Record) string {
	return strings.TrimSpace(r.Slice(f.Start, f.End))
}

// SegmentField is the record type discriminator column.
var SegmentField = Field{Name: "segmento", Start: 14, End: 14}

// Address fields read from records matched by QueryByName.
var (
	AddressField = Field{Name: "endereco", Start: 44, End: 73}
	ZipField     = Field{Name: "cep", Start: 74, End: 81}
	CityField    = Field{Name: "cidade", Start: 82, End: 96}
	StateField   = Field{Name: "estado", Start: 97, End: 98}
)

// AddressLayout lists the fields of a NameMatch in column order.
var AddressLayout = []Field{AddressField, ZipField, CityField, StateField}

// Layout returns every named field known to the package, in column order.
func Layout() []Field {
	fields := make([]Field, 0, len(AddressLayout)+1)
	fields = append(fields, SegmentField)
	return append(fields, AddressLayout...)
}
