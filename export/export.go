// Package export writes name search results to a file and reads them back.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiiranathan/cnabsearch/cnab"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an export file.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	XLSX Format = "xlsx"
)

// DefaultBaseName is the export file name used when none is given.
const DefaultBaseName = "cnab_output"

var (
	ErrUnknownFormat  = errors.New("export: unknown format")
	ErrFormatMismatch = errors.New("export: format does not match the file extension")
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "xlsx":
		return XLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// DefaultFilename returns cnab_output with the extension of f.
func (f Format) DefaultFilename() string {
	return DefaultBaseName + "." + string(f)
}

// Resolve picks the format and destination of an export.
// An explicit format is used when output has no extension or a matching one;
// otherwise the extension of output decides, then JSON.
// An empty output becomes the default file name for the format.
func Resolve(format, output string) (Format, string, error) {
	var (
		f   Format
		err error
	)

	ext := filepath.Ext(output)
	switch {
	case format != "":
		f, err = ParseFormat(format)
		if err == nil && ext != "" {
			if extFormat, extErr := ParseFormat(ext); extErr != nil || extFormat != f {
				err = fmt.Errorf("%w: %s written to %q", ErrFormatMismatch, f, output)
			}
		}
	case ext != "":
		f, err = ParseFormat(ext)
	default:
		f = JSON
	}
	if err != nil {
		return "", "", err
	}

	if output == "" {
		output = f.DefaultFilename()
	}
	return f, output, nil
}

// Encode serializes matches in format f. The JSON form is indented with two spaces.
func Encode(f Format, matches []cnab.NameMatch) ([]byte, error) {
	if matches == nil {
		matches = []cnab.NameMatch{}
	}

	switch f {
	case JSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(matches); err != nil {
			return nil, err
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(matches); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case XLSX:
		return encodeSheet(matches)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Decode parses data produced by Encode.
func Decode(f Format, data []byte) ([]cnab.NameMatch, error) {
	matches := []cnab.NameMatch{}

	switch f {
	case JSON:
		if err := json.Unmarshal(data, &matches); err != nil {
			return nil, err
		}
	case YAML:
		if err := yaml.Unmarshal(data, &matches); err != nil {
			return nil, err
		}
	case XLSX:
		return decodeSheet(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return matches, nil
}

// Write encodes matches and stores them at path, replacing the file atomically.
// An empty result set still produces a valid file.
func Write(path string, f Format, matches []cnab.NameMatch) error {
	data, err := Encode(f, matches)
	if err != nil {
		return fmt.Errorf("unable to encode %s: %w", f, err)
	}
	return writeAtomic(path, data)
}

// Read loads an export file, choosing the format from its extension.
func Read(path string) ([]cnab.NameMatch, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	return ReadFormat(path, f)
}

// ReadFormat loads an export file written in format f.
func ReadFormat(path string, f Format) ([]cnab.NameMatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(f, data)
}

// writeAtomic writes data to a temporary file next to dest and renames it into place.
func writeAtomic(dest string, data []byte) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, dest)
}
