package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/controllers"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/middleware"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
)

func SetupReportRoutes(rg *gin.RouterGroup, reportController *controllers.ReportController) {
	reports := rg.Group("/reports")
	{
		reports.POST("", reportController.SubmitReport)
		reports.GET("", reportController.ListReports)
		reports.GET("/statistics", reportController.ReportStatistics)
		reports.PUT("/:id", middleware.RequireRoles(models.RoleAdmin), reportController.UpdateReport)
		reports.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), reportController.DeleteReport)
	}
}
