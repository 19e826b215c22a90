package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/controllers"
)

func SetupPollutionRoutes(rg *gin.RouterGroup, pollutionController *controllers.PollutionController) {
	rg.GET("/pollution-points", pollutionController.PollutionPoints)
	rg.GET("/pollution-zones", pollutionController.PollutionZones)
}
