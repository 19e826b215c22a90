package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/config"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/utils"
	"gorm.io/gorm"
)

type ReportController struct {
	DB     *gorm.DB
	Config *config.AppConfig
}

func NewReportController(db *gorm.DB, cfg *config.AppConfig) *ReportController {
	return &ReportController{DB: db, Config: cfg}
}

// SubmitReport accepts multipart form data: description and location are
// required, the image file is optional and lands in the uploads directory
// under a uuid name.
func (rc *ReportController) SubmitReport(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	description := c.PostForm("description")
	location := c.PostForm("location")
	if description == "" || location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description and location are required"})
		return
	}

	var imageURL string
	if file, err := c.FormFile("image"); err == nil {
		if err := os.MkdirAll(rc.Config.UploadDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store image"})
			return
		}
		filename := uuid.New().String() + filepath.Ext(file.Filename)
		dst := filepath.Join(rc.Config.UploadDir, filename)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store image"})
			return
		}
		imageURL = "/uploads/" + filename
	}

	report := models.Report{
		Description: description,
		Location:    location,
		ImageURL:    imageURL,
		Status:      models.StatusSubmitted,
		UserID:      user.ID,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Report submitted successfully", "report": report})
}

func (rc *ReportController) ListReports(c *gin.Context) {
	var reports []models.Report
	if err := rc.DB.Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch reports"})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// UpdateReport lets an admin change a report's status and optionally its
// description. The status value must be one of the known states.
func (rc *ReportController) UpdateReport(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Description string `json:"description"`
		Status      string `json:"status"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidReportStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Status is required and must be one of: %s, %s, %s, %s",
			models.StatusSubmitted, models.StatusPending, models.StatusInProgress, models.StatusResolved)})
		return
	}

	updates := map[string]interface{}{"status": input.Status}
	if input.Description != "" {
		updates["description"] = input.Description
	}

	result := rc.DB.Model(&models.Report{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update report"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	var report models.Report
	rc.DB.First(&report, id)
	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) DeleteReport(c *gin.Context) {
	id := c.Param("id")

	result := rc.DB.Delete(&models.Report{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete report"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}

// ReportStatistics returns the total report count and a per-status breakdown.
func (rc *ReportController) ReportStatistics(c *gin.Context) {
	var total, resolved, pending, inProgress int64

	if err := rc.DB.Model(&models.Report{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch statistics"})
		return
	}
	rc.DB.Model(&models.Report{}).Where("status = ?", models.StatusResolved).Count(&resolved)
	rc.DB.Model(&models.Report{}).Where("status = ?", models.StatusPending).Count(&pending)
	rc.DB.Model(&models.Report{}).Where("status = ?", models.StatusInProgress).Count(&inProgress)

	c.JSON(http.StatusOK, gin.H{
		"totalReports": total,
		"resolved":     resolved,
		"pending":      pending,
		"inProgress":   inProgress,
	})
}
