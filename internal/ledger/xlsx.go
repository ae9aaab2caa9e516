package ledger

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"refile/internal/domain"
)

const sheetName = "Ledger"

// WriteXLSX renders the ledger as an XLSX workbook and returns its bytes.
func WriteXLSX(records []domain.ResultRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, err
	}

	for i, h := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx := range records {
		row := recordToRow(&records[rowIdx])
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
