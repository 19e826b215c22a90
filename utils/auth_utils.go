package utils

import (
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
	"github.com/gin-gonic/gin"
)

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the account attached by the auth middleware, or nil when
// the request was not authenticated.
func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if u, ok := user.(*models.User); ok {
		return u
	}
	return nil
}
