package controllers

import (
	"bytes"
	"errors"
	"fmt"

	"licencas/dashboard"
	"licencas/export"
	"licencas/report"

	"github.com/gin-gonic/gin"
)

const (
	MIME_CSV  = "text/csv; charset=utf-8"
	MIME_PNG  = "image/png"
	MIME_XLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func emptyWarning(kind report.Kind) string {
	if kind == report.KindExpired {
		return dashboard.WARNING_NO_EXPIRED
	}
	return dashboard.WARNING_NO_UPCOMING
}

func sendFile(c *gin.Context, name, mime string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(200, mime, body)
}

// GET /api/licencas/proximos-vencimentos/export.csv
// GET /api/licencas/vencidas/export.csv
// A visão vai inteira; PNG leva só as 10 primeiras linhas.
func ExportView(kind report.Kind, format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc, ok := dashboardOrAbort(c)
		if !ok {
			return
		}
		view, err := svc.View(c.Request.Context(), Session(c), kind)
		if err != nil {
			respondRenderError(c, err)
			return
		}

		var (
			buf  bytes.Buffer
			mime string
		)
		switch format {
		case "csv":
			mime = MIME_CSV
			err = export.WriteCSV(&buf, view, export.CSVOptions{})
		case "png":
			mime = MIME_PNG
			err = export.WriteTablePNG(&buf, view)
		case "xlsx":
			mime = MIME_XLSX
			err = export.WriteXLSX(&buf, view)
		default:
			RespondError(c, "formato inválido", 400)
			return
		}
		if errors.Is(err, report.ErrEmptyResult) {
			RespondWarning(c, emptyWarning(kind))
			return
		}
		if err != nil {
			respondRenderError(c, err)
			return
		}

		sendFile(c, string(kind)+"."+format, mime, buf.Bytes())
	}
}

// GET /api/licencas/tipos/grafico.png
// Query params:
// - height (optional, default: 400)
func GetTypeChart(c *gin.Context) {
	svc, ok := dashboardOrAbort(c)
	if !ok {
		return
	}
	types, err := svc.TypeCounts(c.Request.Context(), Session(c))
	if err != nil {
		respondRenderError(c, err)
		return
	}

	var buf bytes.Buffer
	opts := export.ChartOptions{Height: clampInt(queryInt(c, "height", 400), 200, 2000)}
	if err := export.WriteBarChartPNG(&buf, types, opts); err != nil {
		if errors.Is(err, report.ErrEmptyResult) {
			RespondWarning(c, "Não há licenças cadastradas.")
			return
		}
		respondRenderError(c, err)
		return
	}
	c.Data(200, MIME_PNG, buf.Bytes())
}
