package controllers

import (
	"licencas/report"

	"github.com/gin-gonic/gin"
)

// GET /api/licencas/painel
// Mesmos query params de /filtradas; devolve a página inteira do painel.
func GetPanel(c *gin.Context) {
	svc, ok := dashboardOrAbort(c)
	if !ok {
		return
	}
	page, err := svc.Render(c.Request.Context(), dashboardRequest(c))
	if err != nil {
		respondRenderError(c, err)
		return
	}
	RespondSuccess(c, page)
}

// GET /api/licencas/resumo
// Total de registros, próximos vencimentos, vencidas e a contagem por tipo.
func GetSummary(c *gin.Context) {
	svc, ok := dashboardOrAbort(c)
	if !ok {
		return
	}
	summary, types, err := svc.Summary(c.Request.Context(), Session(c))
	if err != nil {
		respondRenderError(c, err)
		return
	}
	RespondSuccess(c, gin.H{
		"hoje":   svc.Today().Format("2006-01-02"),
		"resumo": summary,
		"tipos":  types,
	})
}

// GET /api/licencas/filtros
// Valores distintos de tipo e status (o padrão dos filtros é todos marcados).
func GetFilterOptions(c *gin.Context) {
	svc, ok := dashboardOrAbort(c)
	if !ok {
		return
	}
	_, opts, err := svc.Filtered(c.Request.Context(), dashboardRequest(c))
	if err != nil {
		respondRenderError(c, err)
		return
	}
	RespondSuccess(c, opts)
}

// GET /api/licencas/filtradas
// Query params:
// - tipo=LO&tipo=LP (ou tipo=LO,LP)   (optional, default: todos)
// - status=Vigente                    (optional, default: todos)
// - filtro=1                          (optional: sem tipo/status passa a significar "nenhum")
func GetFilteredLicenses(c *gin.Context) {
	svc, ok := dashboardOrAbort(c)
	if !ok {
		return
	}
	req := dashboardRequest(c)
	table, _, err := svc.Filtered(c.Request.Context(), req)
	if err != nil {
		respondRenderError(c, err)
		return
	}

	avisos := []string{}
	if len(table) == 0 {
		avisos = append(avisos, "Nenhuma licença corresponde aos filtros selecionados.")
	}
	RespondSuccess(c, gin.H{
		"total":    len(table),
		"selecao":  req.Filter,
		"licencas": table,
		"avisos":   avisos,
	})
}

// GET /api/licencas/proximos-vencimentos
// GET /api/licencas/vencidas
// Query params:
// - limit (optional, default: TABLE_LIMIT, max: 1000, 0 = todas)
func GetView(kind report.Kind) gin.HandlerFunc {
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

		total := view.Len()
		limit := clampInt(queryInt(c, "limit", svc.Limit()), 0, 1000)
		view = view.Head(limit)

		avisos := []string{}
		if view.Empty() {
			avisos = append(avisos, emptyWarning(kind))
		}
		RespondSuccess(c, gin.H{
			"total":  total,
			"visao":  view,
			"avisos": avisos,
		})
	}
}
