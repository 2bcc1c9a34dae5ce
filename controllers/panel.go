package controllers

import (
	"net/http"

	"licencas/dashboard"

	"github.com/gin-gonic/gin"
)

type panelView struct {
	Page  *dashboard.Page
	Error string
}

// GET /
// Cada envio do formulário de filtros é um novo request: recalcula e renderiza tudo.
func ShowPanel(c *gin.Context) {
	svc, ok := dashboardOrAbort(c)
	if !ok {
		return
	}

	req := dashboard.Request{Session: ensureSession(c), Filter: parseFilter(c)}
	page, err := svc.Render(c.Request.Context(), req)
	if err != nil {
		c.HTML(statusFor(err), "painel.html", panelView{Error: messageFor(err)})
		return
	}
	c.HTML(http.StatusOK, "painel.html", panelView{Page: page})
}

// POST /api/sessoes/invalidar
// Descarta o snapshot da sessão; a próxima leitura consulta o banco.
// Com ?redirect=1 volta para o painel (usado pelo botão "Recarregar dados").
func InvalidateSession(c *gin.Context) {
	svc, ok := dashboardOrAbort(c)
	if !ok {
		return
	}
	session := Session(c)
	if err := svc.Invalidate(c.Request.Context(), session); err != nil {
		respondRenderError(c, err)
		return
	}
	if c.Query("redirect") == "1" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	RespondSuccess(c, gin.H{"sessao": session, "invalidada": true})
}
