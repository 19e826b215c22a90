package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
	"gorm.io/gorm"
)

type DiscussionController struct {
	DB *gorm.DB
}

func NewDiscussionController(db *gorm.DB) *DiscussionController {
	return &DiscussionController{DB: db}
}

func (dc *DiscussionController) CreateDiscussion(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Category    string `json:"category" binding:"required"`
		Content     string `json:"content" binding:"required"`
		UserID      uint   `json:"userId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, description, category, content and user are required"})
		return
	}

	discussion := models.Discussion{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Content:     input.Content,
		UserID:      input.UserID,
	}

	if err := dc.DB.Create(&discussion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create discussion"})
		return
	}

	c.JSON(http.StatusCreated, discussion)
}

func (dc *DiscussionController) ListDiscussions(c *gin.Context) {
	var discussions []models.Discussion
	if err := dc.DB.Find(&discussions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch discussions"})
		return
	}

	c.JSON(http.StatusOK, discussions)
}
