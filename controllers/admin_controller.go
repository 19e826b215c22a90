package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

func (ac *AdminController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := ac.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (ac *AdminController) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Role     string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Role != models.RoleCitizen && input.Role != models.RoleAdmin && input.Role != models.RoleUrbanist {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	result := ac.DB.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"username": input.Username,
		"email":    input.Email,
		"role":     input.Role,
	})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var user models.User
	ac.DB.First(&user, "id = ?", id)
	c.JSON(http.StatusOK, user)
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	result := ac.DB.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// UserStats counts users per role plus the overall total.
func (ac *AdminController) UserStats(c *gin.Context) {
	var citizens, admins, urbanists, total int64

	if err := ac.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch user statistics"})
		return
	}
	ac.DB.Model(&models.User{}).Where("role = ?", models.RoleCitizen).Count(&citizens)
	ac.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins)
	ac.DB.Model(&models.User{}).Where("role = ?", models.RoleUrbanist).Count(&urbanists)

	c.JSON(http.StatusOK, gin.H{
		"citizen_count":  citizens,
		"admin_count":    admins,
		"urbanist_count": urbanists,
		"total_users":    total,
	})
}
