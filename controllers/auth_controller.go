package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salahezzat120/task-manager-pro/config"
	"github.com/salahezzat120/task-manager-pro/middleware"
	"github.com/salahezzat120/task-manager-pro/models"
	"github.com/salahezzat120/task-manager-pro/utils"
)

// AuthController handles signup, login and identity lookup.
type AuthController struct{}

// Signup registers a new account and returns a token for it.
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please enter a valid email address and password"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "An account with this email already exists. Please sign in instead."})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		config.Logger.Errorw("signup lookup failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Registration failed"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		config.Logger.Errorw("password hashing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Registration failed"})
		return
	}

	user := models.User{Email: req.Email, Password: hash}
	if err := config.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("user creation failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Registration failed"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		config.Logger.Errorw("token generation failed", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Token generation failed"})
		return
	}

	config.Logger.Infow("user registered", "userID", user.ID, "email", user.Email)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data": gin.H{
			"user":  models.NewUserResponse(user),
			"token": token,
		},
	})
}

// Login verifies credentials and returns a token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		config.Logger.Errorw("token generation failed", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Token generation failed"})
		return
	}

	config.Logger.Infow("user logged in", "userID", user.ID, "email", user.Email)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"user":  models.NewUserResponse(user),
			"token": token,
		},
	})
}

// Me returns the identity behind the presented token.
func (ac *AuthController) Me(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.NewUserResponse(user),
	})
}
