package export

import (
	"image"
	"image/png"
	"io"

	"licencas/report"
)

const (
	TABLE_ROW_LIMIT = 10
	cellPadding     = 8
	cellMaxChars    = 40
)

// WriteTablePNG desenha as primeiras TABLE_ROW_LIMIT linhas da visão como uma tabela
// com bordas. A imagem tem o tamanho exato do conteúdo.
func WriteTablePNG(w io.Writer, v report.View) error {
	if v.Empty() {
		return report.ErrEmptyResult
	}
	v = v.Head(TABLE_ROW_LIMIT)

	grid := make([][]string, 0, v.Len()+1)
	grid = append(grid, v.Columns)
	for _, rec := range v.Records() {
		cells := make([]string, len(rec))
		for i, c := range rec {
			cells[i] = truncateText(c, cellMaxChars)
		}
		grid = append(grid, cells)
	}

	widths := make([]int, len(v.Columns))
	for _, row := range grid {
		for i, cell := range row {
			if cw := textWidth(cell) + 2*cellPadding; cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	rowHeight := textHeight() + 2*cellPadding

	total := 1
	for _, cw := range widths {
		total += cw
	}
	img := image.NewRGBA(image.Rect(0, 0, total, rowHeight*len(grid)+1))
	fillRect(img, img.Bounds(), colorWhite)

	for r, row := range grid {
		x := 0
		y := r * rowHeight
		for i, cell := range row {
			rect := image.Rect(x, y, x+widths[i]+1, y+rowHeight+1)
			if r == 0 {
				fillRect(img, rect, colorHeader)
			}
			strokeRect(img, rect, colorBorder)
			drawCentered(img, rect, cell, colorText)
			x += widths[i]
		}
	}

	return png.Encode(w, img)
}
