package controllers

import (
	"fmt"
	"strings"

	"licencas/cache"
	"licencas/dashboard"
	"licencas/report"
	"licencas/tools"

	"github.com/gin-gonic/gin"
)

const (
	SESSION_HEADER = "X-Session-ID"
	SESSION_COOKIE = "sessao"
)

// Session identifica a sessão de renderização: header, depois cookie, depois "default".
func Session(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(SESSION_HEADER)); v != "" {
		return v
	}
	if v, err := c.Cookie(SESSION_COOKIE); err == nil && strings.TrimSpace(v) != "" {
		return v
	}
	return cache.DEFAULT_SESSION
}

// ensureSession garante um cookie de sessão para o navegador.
func ensureSession(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(SESSION_HEADER)); v != "" {
		return v
	}
	if v, err := c.Cookie(SESSION_COOKIE); err == nil && strings.TrimSpace(v) != "" {
		return v
	}
	session := tools.RandomString(24)
	c.SetCookie(SESSION_COOKIE, session, 0, "/", "", false, true)
	return session
}

// parseFilter lê tipo/status (repetidos ou separados por vírgula).
// Sem parâmetro = todos; com "filtro" presente e sem valores = nenhum.
func parseFilter(c *gin.Context) report.Filter {
	_, explicit := c.GetQuery("filtro")
	return report.Filter{
		Types:    queryList(c, "tipo", explicit),
		Statuses: queryList(c, "status", explicit),
	}
}

func queryList(c *gin.Context, key string, explicit bool) []string {
	raw, ok := c.GetQueryArray(key)
	if !ok {
		if explicit {
			return []string{}
		}
		return nil
	}
	out := []string{}
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func dashboardRequest(c *gin.Context) dashboard.Request {
	return dashboard.Request{Session: Session(c), Filter: parseFilter(c)}
}

func queryInt(c *gin.Context, key string, def int) int {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def
	}
	var n int
	_, err := fmt.Sscanf(v, "%d", &n)
	if err != nil {
		return def
	}
	return n
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
