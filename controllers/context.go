package controllers

import (
	"licencas/dashboard"

	"github.com/gin-gonic/gin"
)

const dashboardKey = "dashboard"

// Use este middleware no setup do gin
func SetDashboardToContext(svc *dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dashboardKey, svc)
		c.Next()
	}
}

func DashboardInstance(c *gin.Context) *dashboard.Service {
	v, ok := c.Get(dashboardKey)
	if !ok {
		return nil
	}
	svc, _ := v.(*dashboard.Service)
	return svc
}

// dashboardOrAbort responde 500 quando o serviço não foi configurado.
func dashboardOrAbort(c *gin.Context) (*dashboard.Service, bool) {
	svc := DashboardInstance(c)
	if svc == nil {
		RespondError(c, "painel não configurado no contexto", 500)
		return nil, false
	}
	return svc, true
}
