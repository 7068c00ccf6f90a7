// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"lichess-gateway/internal/services"
	"lichess-gateway/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup registers a new account and returns a token for it. Every failure
// path, including a taken email, answers the flat {"success":false} body.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req httpdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, httpdto.Failure)
		return
	}

	token, err := h.service.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusOK, httpdto.Failure)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewTokenResponse(token))
}

// Login verifies credentials and returns a token. A wrong password and an
// unknown email produce byte-identical responses.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, httpdto.Failure)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusOK, httpdto.Failure)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewTokenResponse(token))
}
