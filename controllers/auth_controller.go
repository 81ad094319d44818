package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-booking-api/middleware"
	"hotel-booking-api/models"
	"hotel-booking-api/services"
	"hotel-booking-api/utils"
)

type AuthController struct {
	Service   *services.AuthService
	JWTSecret []byte
}

func NewAuthController(service *services.AuthService, jwtSecret []byte) *AuthController {
	return &AuthController{Service: service, JWTSecret: jwtSecret}
}

type signupRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role"`
	Phone    *string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// validRole accepts CUSTOMER and OWNER in any casing. The empty string is
// valid too and defaults to CUSTOMER downstream.
func validRole(raw string) bool {
	role := strings.TrimSpace(raw)
	return role == "" ||
		strings.EqualFold(role, string(models.RoleCustomer)) ||
		strings.EqualFold(role, string(models.RoleOwner))
}

// Signup handles POST /api/auth/signup.
func (ac *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FlattenValidationError(err))
		return
	}

	if !validRole(req.Role) {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FieldError("role", "role must be one of: CUSTOMER OWNER"))
		return
	}

	user, err := ac.Service.Signup(req.Name, req.Email, req.Password, req.Role, req.Phone)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  user.Role,
	})
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, http.StatusBadRequest, utils.FlattenValidationError(err))
		return
	}

	user, err := ac.Service.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user, ac.JWTSecret)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
