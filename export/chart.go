package export

import (
	"image"
	"image/png"
	"io"
	"strconv"

	"licencas/report"
)

// ChartOptions controla o gráfico de barras de tipos de licença.
type ChartOptions struct {
	Title  string
	XLabel string
	YLabel string
	Height int
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Title == "" {
		o.Title = "Tipos de Licenças"
	}
	if o.XLabel == "" {
		o.XLabel = "Tipos de Licença"
	}
	if o.YLabel == "" {
		o.YLabel = "Quantidade"
	}
	if o.Height <= 0 {
		o.Height = 400
	}
	return o
}

const (
	chartSlot     = 90
	chartMargin   = 50
	chartMinWidth = 480
	chartTicks    = 5
)

// WriteBarChartPNG desenha uma barra por tipo, na ordem de tc, com o total em cima de cada barra.
func WriteBarChartPNG(w io.Writer, tc report.TypeCount, opts ChartOptions) error {
	if len(tc) == 0 {
		return report.ErrEmptyResult
	}
	opts = opts.withDefaults()

	width := 2*chartMargin + chartSlot*len(tc)
	if width < chartMinWidth {
		width = chartMinWidth
	}
	img := image.NewRGBA(image.Rect(0, 0, width, opts.Height))
	fillRect(img, img.Bounds(), colorWhite)

	line := textHeight()
	plot := image.Rect(chartMargin, chartMargin, width-chartMargin/2, opts.Height-chartMargin-line)

	drawCentered(img, image.Rect(0, 0, width, chartMargin), opts.Title, colorText)
	drawText(img, 4, plot.Min.Y-line/2, opts.YLabel, colorText)
	drawCentered(img, image.Rect(0, opts.Height-line-8, width, opts.Height), opts.XLabel, colorText)

	top := tc.Max()
	// linhas de grade e marcas do eixo y
	for i := 0; i <= chartTicks; i++ {
		y := plot.Max.Y - i*plot.Dy()/chartTicks
		fillRect(img, image.Rect(plot.Min.X, y, plot.Max.X, y+1), colorGrid)
		label := strconv.Itoa((top*i + chartTicks/2) / chartTicks)
		drawText(img, plot.Min.X-textWidth(label)-6, y+line/3, label, colorText)
	}
	fillRect(img, image.Rect(plot.Min.X, plot.Min.Y, plot.Min.X+1, plot.Max.Y+1), colorBorder)
	fillRect(img, image.Rect(plot.Min.X, plot.Max.Y, plot.Max.X, plot.Max.Y+1), colorBorder)

	slot := plot.Dx() / len(tc)
	barWidth := slot * 4 / 10 // largura 0.4 do espaço de cada tipo
	if barWidth < 4 {
		barWidth = 4
	}
	for i, t := range tc {
		h := 0
		if top > 0 {
			h = t.Count * (plot.Dy() - line - 4) / top
		}
		cx := plot.Min.X + i*slot + slot/2
		bar := image.Rect(cx-barWidth/2, plot.Max.Y-h, cx+barWidth/2, plot.Max.Y)
		fillRect(img, bar, colorBar)
		strokeRect(img, bar, colorBarBorder)

		count := strconv.Itoa(t.Count)
		drawText(img, cx-textWidth(count)/2, bar.Min.Y-4, count, colorText)

		label := truncateText(t.Type, slot/7)
		drawText(img, cx-textWidth(label)/2, plot.Max.Y+line+2, label, colorText)
	}

	return png.Encode(w, img)
}
