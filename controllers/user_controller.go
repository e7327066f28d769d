package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salahezzat120/task-manager-pro/config"
	"github.com/salahezzat120/task-manager-pro/models"
)

// UserController exposes the user directory.
type UserController struct{}

// Index lists all users (id and email only) for the assignment dropdown.
func (uc *UserController) Index(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("email ASC").Find(&users).Error; err != nil {
		config.Logger.Errorw("user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load users"})
		return
	}

	out := make([]models.UserResponse, len(users))
	for i, u := range users {
		out[i] = models.NewUserResponse(u)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    out,
	})
}
