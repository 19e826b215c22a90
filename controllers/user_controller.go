package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (uc *UserController) GetUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                user.ID,
		"username":          user.Username,
		"email":             user.Email,
		"phone_number":      user.PhoneNumber,
		"address":           user.Address,
		"dateOfBirth":       user.DateOfBirth,
		"profilePictureUrl": user.ProfilePictureURL,
		"role":              user.Role,
	})
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Username          string `json:"username" binding:"required"`
		Email             string `json:"email" binding:"required,email"`
		PhoneNumber       string `json:"phoneNumber"`
		Address           string `json:"address"`
		DateOfBirth       string `json:"dateOfBirth"`
		ProfilePictureURL string `json:"profilePictureUrl"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"username":            input.Username,
		"email":               input.Email,
		"phone_number":        input.PhoneNumber,
		"address":             input.Address,
		"profile_picture_url": input.ProfilePictureURL,
	}

	if input.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dateOfBirth must be in YYYY-MM-DD format"})
			return
		}
		updates["date_of_birth"] = parsed
	}

	result := uc.DB.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update user"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var user models.User
	uc.DB.First(&user, "id = ?", id)
	c.JSON(http.StatusOK, user)
}

// UpdateProfilePicture stores the base64 payload the frontend sends as the
// user's profile picture value.
func (uc *UserController) UpdateProfilePicture(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		ProfilePictureBase64 string `json:"profilePictureBase64" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Base64 image is required"})
		return
	}

	result := uc.DB.Model(&models.User{}).Where("id = ?", id).
		Update("profile_picture_url", input.ProfilePictureBase64)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update profile picture"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated successfully"})
}
