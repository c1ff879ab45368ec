package cnab

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SegmentFieldResult is a field extracted from a record of the queried segment.
type SegmentFieldResult struct {
	Segment string `json:"segment" yaml:"segment"` // Segment code as stored in the record.
	Info    string `json:"info" yaml:"info"`       // The extracted [from,to] field, untrimmed.
	Line    Record `json:"line" yaml:"line"`       // The full record.
}

// NameMatch is the address block of a record containing the queried name.
type NameMatch struct {
	Nome     string `json:"nome" yaml:"nome"`
	Endereco string `json:"endereco" yaml:"endereco"`
	Cep      string `json:"cep" yaml:"cep"`
	Cidade   string `json:"cidade" yaml:"cidade"`
	Estado   string `json:"estado" yaml:"estado"`
	Linha    Record `json:"linha" yaml:"linha"`
}

// SegmentCode returns the record's segment code.
// ok is false for records shorter than the segment column.
func SegmentCode(r Record) (code rune, ok bool) {
	return r.At(SegmentField.Start)
}

// QuerySegment extracts columns from..to of every record whose segment code
// equals segment, ignoring case. Results keep the order of records.
//
// When from and to are both zero the whole record is returned as the field.
// A to beyond the end of a record is truncated; records too short to carry a
// segment code never match.
func QuerySegment(records []Record, segment string, from, to int) ([]SegmentFieldResult, error) {
	if utf8.RuneCountInString(segment) != 1 {
		return nil, ErrInvalidSegment
	}

	wholeLine := from == 0 && to == 0
	if !wholeLine {
		if err := validateRange(from, to); err != nil {
			return nil, err
		}
	}

	want, _ := utf8.DecodeRuneInString(segment)
	want = unicode.ToLower(want)

	results := []SegmentFieldResult{}
	for _, record := range records {
		code, ok := SegmentCode(record)
		if !ok || unicode.ToLower(code) != want {
			continue
		}

		info := string(record)
		if !wholeLine {
			info = record.Slice(from, to)
		}

		results = append(results, SegmentFieldResult{
			Segment: string(code),
			Info:    info,
			Line:    record,
		})
	}
	return results, nil
}

// QueryByName returns the address block of every record containing name.
//
// Only the needle is upper-cased: a record holding the name in lower case
// does not match. CNAB writers emit names in upper case.
func QueryByName(records []Record, name string) ([]NameMatch, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	needle := strings.ToUpper(name)

	matches := []NameMatch{}
	for _, record := range records {
		if !strings.Contains(string(record), needle) {
			continue
		}

		matches = append(matches, NameMatch{
			Nome:     needle,
			Endereco: AddressField.Extract(record),
			Cep:      ZipField.Extract(record),
			Cidade:   CityField.Extract(record),
			Estado:   StateField.Extract(record),
			Linha:    record,
		})
	}
	return matches, nil
}
