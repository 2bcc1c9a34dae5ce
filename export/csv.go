package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"licencas/report"
)

// CSVOptions configures CSV writing behavior
type CSVOptions struct {
	BOMPrefix bool // UTF-8 BOM para o Excel reconhecer acentos
	Comma     rune
}

// WriteCSV escreve cabeçalho + linhas da visão, sem coluna de índice.
func WriteCSV(w io.Writer, v report.View, opts CSVOptions) error {
	if v.Empty() {
		return report.ErrEmptyResult
	}

	if opts.BOMPrefix {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	if opts.Comma != 0 {
		writer.Comma = opts.Comma
	}

	if err := writer.Write(v.Columns); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, record := range v.Records() {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSV devolve o conteúdo em memória, pronto para um download.
func CSV(v report.View) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, v, CSVOptions{}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
