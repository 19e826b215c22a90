package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/config"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/geo"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
	"gorm.io/gorm"
)

// PollutionController serves read-only queries over the externally populated
// mesures_pollution table.
type PollutionController struct {
	DB     *gorm.DB
	Config *config.AppConfig
}

func NewPollutionController(db *gorm.DB, cfg *config.AppConfig) *PollutionController {
	return &PollutionController{DB: db, Config: cfg}
}

func (pc *PollutionController) PollutionPoints(c *gin.Context) {
	var points []models.PollutionMeasurement
	if err := pc.DB.Find(&points).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch pollution points"})
		return
	}

	c.JSON(http.StatusOK, points)
}

// PollutionZones clusters the measurements with DBSCAN and returns, per
// cluster, the centroid, the mean pollution value and the point count.
// Isolated points are noise and appear in no zone.
func (pc *PollutionController) PollutionZones(c *gin.Context) {
	var measurements []models.PollutionMeasurement
	if err := pc.DB.Find(&measurements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch pollution measurements"})
		return
	}

	points := make([]geo.Point, len(measurements))
	for i, m := range measurements {
		points[i] = geo.Point{
			ID:        m.ID,
			Longitude: m.Longitude,
			Latitude:  m.Latitude,
			Value:     m.Value,
		}
	}

	clusters := geo.ClusterDBSCAN(points, pc.Config.ClusterEps, pc.Config.ClusterMinPoints)
	if clusters == nil {
		clusters = []geo.Cluster{}
	}

	c.JSON(http.StatusOK, clusters)
}
