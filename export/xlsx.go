package export

import (
	"fmt"
	"io"

	"licencas/report"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX grava a visão numa planilha com o nome da visão; a coluna de dias fica numérica.
func WriteXLSX(w io.Writer, v report.View) error {
	if v.Empty() {
		return report.ErrEmptyResult
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(v.Title())
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	header := make([]any, 0, len(v.Columns))
	for _, c := range v.Columns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(v.Columns), 1)
		_ = f.SetCellStyle(sheet, "A1", last, bold)
	}

	for i, r := range v.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.Number,
			r.Activity,
			r.CompanyName,
			r.Type,
			r.IssuedAt.String(),
			r.ValidUntil.String(),
			r.Status,
			r.Days,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx: row %d: %w", i, err)
		}
	}

	return f.Write(w)
}

// limite do Excel: 31 caracteres
func sheetName(title string) string {
	runes := []rune(title)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	if len(runes) == 0 {
		return "Sheet1"
	}
	return string(runes)
}
