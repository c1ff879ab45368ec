// Package cnab loads CNAB remittance files and extracts positional fields
// from their fixed-width records.
package cnab

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Record is one non-blank line of a CNAB file.
// Positions are 1-indexed characters, matching the column numbers of the layout manuals.
type Record string

// Len returns the number of characters in the record.
func (r Record) Len() int {
	return utf8.RuneCountInString(string(r))
}

// At returns the character at 1-indexed position pos.
// ok is false when the record is shorter than pos.
func (r Record) At(pos int) (c rune, ok bool) {
	if pos < 1 {
		return 0, false
	}
	i := 1
	for _, ch := range string(r) {
		if i == pos {
			return ch, true
		}
		i++
	}
	return 0, false
}

// Slice returns the characters at positions from..to inclusive.
// to is truncated to the record length and a from past the end yields "".
// Callers validate the range.
func (r Record) Slice(from, to int) string {
	s := string(r)
	start, end := -1, len(s)

	i := 1
	for byteIdx := range s {
		if i == from {
			start = byteIdx
		}
		if i == to+1 {
			end = byteIdx
			break
		}
		i++
	}

	if start < 0 {
		return ""
	}
	return s[start:end]
}

// Load splits text into records. Blank and whitespace-only lines are dropped,
// a trailing carriage return is removed and source order is kept.
func Load(text string) []Record {
	lines := strings.Split(text, "\n")
	records := make([]Record, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, Record(line))
	}
	return records
}

// Encodings supported by Decode. The empty name means utf-8.
var encodings = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// Decode converts raw file bytes into text.
// For utf-8 an invalid byte sequence is an error rather than being replaced.
func Decode(raw []byte, enc string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(enc))
	if name == "" || name == "utf-8" || name == "utf8" {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("invalid utf-8 byte sequence")
		}
		return string(raw), nil
	}

	e, ok := encodings[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, enc)
	}

	out, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// LoadFile reads, decodes and loads the CNAB file at path.
// Read and decode failures wrap ErrSourceUnavailable; no records are returned with an error.
// The read is abandoned when ctx is done, which bounds reads from slow or blocking files.
func LoadFile(ctx context.Context, path string, enc string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}

	type readResult struct {
		raw []byte
		err error
	}

	// Buffered so the reader goroutine can exit after ctx is done.
	done := make(chan readResult, 1)
	go func() {
		raw, err := os.ReadFile(path)
		done <- readResult{raw: raw, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, res.err)
		}
		return LoadBytes(res.raw, enc, path)
	}
}

// LoadBytes decodes raw and loads its records. name is only used in errors.
func LoadBytes(raw []byte, enc string, name string) ([]Record, error) {
	text, err := Decode(raw, enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, name, err)
	}
	return Load(text), nil
}
