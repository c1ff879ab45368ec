package export_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abiiranathan/cnabsearch/cnab"
	"github.com/abiiranathan/cnabsearch/export"
)

func sampleMatches() []cnab.NameMatch {
	line := "0010001300001Q 01" + strings.Repeat(" ", 26) + "RUA DAS FLORES 100" + strings.Repeat(" ", 12) + "01310100SAO PAULO      SP  "
	return []cnab.NameMatch{
		{
			Nome:     "EMPRESA XYZ",
			Endereco: "RUA DAS FLORES 100",
			Cep:      "01310100",
			Cidade:   "SAO PAULO",
			Estado:   "SP",
			Linha:    cnab.Record(line),
		},
		{
			Nome:     "EMPRESA XYZ",
			Endereco: "",
			Cep:      "",
			Cidade:   "",
			Estado:   "",
			Linha:    "EMPRESA XYZ",
		},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		output     string
		wantFormat export.Format
		wantPath   string
		wantErr    error
	}{
		{name: "defaults", wantFormat: export.JSON, wantPath: "cnab_output.json"},
		{name: "format only", format: "yaml", wantFormat: export.YAML, wantPath: "cnab_output.yaml"},
		{name: "yml alias", format: "YML", wantFormat: export.YAML, wantPath: "cnab_output.yaml"},
		{name: "from extension", output: "out/result.xlsx", wantFormat: export.XLSX, wantPath: "out/result.xlsx"},
		{name: "format matches extension", format: "yml", output: "result.yaml", wantFormat: export.YAML, wantPath: "result.yaml"},
		{name: "format without extension", format: "xlsx", output: "result", wantFormat: export.XLSX, wantPath: "result"},
		{name: "format conflicts with extension", format: "xlsx", output: "out.json", wantErr: export.ErrFormatMismatch},
		{name: "format with unknown extension", format: "json", output: "out.txt", wantErr: export.ErrFormatMismatch},
		{name: "no extension", output: "result", wantFormat: export.JSON, wantPath: "result"},
		{name: "unknown format", format: "csv", wantErr: export.ErrUnknownFormat},
		{name: "unknown extension", output: "result.txt", wantErr: export.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, path, err := export.Resolve(tt.format, tt.output)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if f != tt.wantFormat || path != tt.wantPath {
				t.Errorf("Resolve() = %s, %s; want %s, %s", f, path, tt.wantFormat, tt.wantPath)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := sampleMatches()

	for _, f := range []export.Format{export.JSON, export.YAML, export.XLSX} {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(dir, f.DefaultFilename())
			if err := export.Write(path, f, want); err != nil {
				t.Fatal(err)
			}

			got, err := export.Read(path)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(want) {
				t.Fatalf("read %d matches, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("match %d:\n got %+v\nwant %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestWriteEmpty(t *testing.T) {
	dir := t.TempDir()

	for _, f := range []export.Format{export.JSON, export.YAML, export.XLSX} {
		t.Run(string(f), func(t *testing.T) {
			path := filepath.Join(dir, f.DefaultFilename())
			if err := export.Write(path, f, nil); err != nil {
				t.Fatal(err)
			}

			got, err := export.Read(path)
			if err != nil {
				t.Fatal(err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("expected an empty slice, got %#v", got)
			}
		})
	}

	data, err := os.ReadFile(filepath.Join(dir, "cnab_output.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("empty JSON export = %q, want %q", data, "[]")
	}
}

func TestJSONShape(t *testing.T) {
	data, err := export.Encode(export.JSON, sampleMatches()[:1])
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(string(data), "[\n  {\n    \"nome\": \"EMPRESA XYZ\",") {
		t.Errorf("unexpected JSON layout:\n%s", data)
	}

	var generic []map[string]string
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatal(err)
	}
	keys := []string{"nome", "endereco", "cep", "cidade", "estado", "linha"}
	if len(generic[0]) != len(keys) {
		t.Errorf("expected exactly %d keys, got %v", len(keys), generic[0])
	}
	for _, k := range keys {
		if _, ok := generic[0][k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
}

func TestWriteReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	if err := export.Write(path, export.JSON, sampleMatches()); err != nil {
		t.Fatal(err)
	}
	if err := export.Write(path, export.JSON, sampleMatches()[:1]); err != nil {
		t.Fatal(err)
	}

	got, err := export.Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("expected the file to be replaced, got %d matches", len(got))
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestRoundTripWithoutExtension(t *testing.T) {
	f, path, err := export.Resolve("yaml", filepath.Join(t.TempDir(), "result"))
	if err != nil {
		t.Fatal(err)
	}
	if err := export.Write(path, f, sampleMatches()); err != nil {
		t.Fatal(err)
	}

	got, err := export.ReadFormat(path, f)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != sampleMatches()[0] {
		t.Errorf("unexpected round trip %+v", got)
	}
}

func TestJSONKeepsHTMLCharacters(t *testing.T) {
	matches := []cnab.NameMatch{{Nome: "A & B <LTDA>", Linha: "A & B <LTDA>"}}

	data, err := export.Encode(export.JSON, matches)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"nome": "A & B <LTDA>"`) {
		t.Errorf("special characters were escaped:\n%s", data)
	}
	if strings.HasSuffix(string(data), "\n") {
		t.Error("unexpected trailing newline")
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := export.Write(path, export.JSON, matches); err != nil {
		t.Fatal(err)
	}
	got, err := export.Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != matches[0] {
		t.Errorf("round trip changed the match: %+v", got)
	}
}
