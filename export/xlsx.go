package export

import (
	"bytes"
	"fmt"

	"github.com/abiiranathan/cnabsearch/cnab"
	"github.com/xuri/excelize/v2"
)

const sheetName = "cnab"

// Column order of the sheet. Matches the JSON keys of cnab.NameMatch.
var sheetHeader = []any{"nome", "endereco", "cep", "cidade", "estado", "linha"}

func encodeSheet(matches []cnab.NameMatch) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetName, "A1", &sheetHeader); err != nil {
		return nil, err
	}

	for i, m := range matches {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		row := []any{m.Nome, m.Endereco, m.Cep, m.Cidade, m.Estado, string(m.Linha)}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeSheet(data []byte) ([]cnab.NameMatch, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}

	matches := []cnab.NameMatch{}
	if len(rows) < 2 {
		return matches, nil
	}

	// First row is header
	for _, row := range rows[1:] {
		// GetRows drops trailing empty cells
		cells := make([]string, len(sheetHeader))
		copy(cells, row)

		matches = append(matches, cnab.NameMatch{
			Nome:     cells[0],
			Endereco: cells[1],
			Cep:      cells[2],
			Cidade:   cells[3],
			Estado:   cells[4],
			Linha:    cnab.Record(cells[5]),
		})
	}
	return matches, nil
}
