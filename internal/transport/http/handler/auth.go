package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"accountsvc/internal/app"
	"accountsvc/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type SignupRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Password  string  `json:"password" binding:"required"`
	AvatarURL *string `json:"avatar_url"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, response.DetailInvalidPayload)
		return
	}

	profile, err := h.authService.Signup(c.Request.Context(), app.SignupInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrDatabaseUnavailable):
			response.Detail(c, http.StatusInternalServerError, response.DetailDatabaseUnavailable)
		case errors.Is(err, app.ErrAccountExists):
			response.Detail(c, http.StatusBadRequest, response.DetailAccountExists)
		case errors.Is(err, app.ErrInvalidInput):
			response.Detail(c, http.StatusBadRequest, response.DetailInvalidPayload)
		default:
			response.Detail(c, http.StatusInternalServerError, "signup failed")
		}
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, response.DetailInvalidPayload)
		return
	}

	profile, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrDatabaseUnavailable):
			response.Detail(c, http.StatusInternalServerError, response.DetailDatabaseUnavailable)
		case errors.Is(err, app.ErrInvalidCredential):
			response.Detail(c, http.StatusUnauthorized, response.DetailInvalidCredentials)
		default:
			response.Detail(c, http.StatusInternalServerError, "login failed")
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}
