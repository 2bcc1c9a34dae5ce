package router

import (
	"licencas/config"
	"licencas/controllers"
	"licencas/dashboard"
	"licencas/middleware"
	"licencas/report"
	"licencas/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Initialize liga middlewares e rotas: painel HTML, API JSON e exportações.
func Initialize(r *gin.Engine, cfg config.Configuration, database controllers.Pinger, svc *dashboard.Service) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(controllers.SetDashboardToContext(svc))
	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", controllers.Health(database))
	r.GET("/", Logger(), controllers.ShowPanel)

	api := r.Group("/api")
	api.Use(Logger())

	licencas := api.Group("/licencas")
	licencas.GET("/painel", controllers.GetPanel)
	licencas.GET("/resumo", controllers.GetSummary)
	licencas.GET("/filtros", controllers.GetFilterOptions)
	licencas.GET("/filtradas", controllers.GetFilteredLicenses)
	licencas.GET("/tipos/grafico.png", controllers.GetTypeChart)

	// Próximos vencimentos
	licencas.GET("/proximos-vencimentos", controllers.GetView(report.KindUpcoming))
	licencas.GET("/proximos-vencimentos/export.csv", controllers.ExportView(report.KindUpcoming, "csv"))
	licencas.GET("/proximos-vencimentos/export.png", controllers.ExportView(report.KindUpcoming, "png"))
	licencas.GET("/proximos-vencimentos/export.xlsx", controllers.ExportView(report.KindUpcoming, "xlsx"))

	// Vencidas
	licencas.GET("/vencidas", controllers.GetView(report.KindExpired))
	licencas.GET("/vencidas/export.csv", controllers.ExportView(report.KindExpired, "csv"))
	licencas.GET("/vencidas/export.png", controllers.ExportView(report.KindExpired, "png"))
	licencas.GET("/vencidas/export.xlsx", controllers.ExportView(report.KindExpired, "xlsx"))

	api.POST("/sessoes/invalidar", controllers.InvalidateSession)

	zap.L().Info("Routes initialized")
}
