package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/placementportal/internal/app/models/dto"
	"github.com/yigit/placementportal/internal/app/services"
	"github.com/yigit/placementportal/internal/middleware"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

// AuthController handles the shared login endpoint
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Log in
// @Description Checks faculty, student and company credentials in that order
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Username and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIErrorWithFallback(ctx, err, "Server error")
		return
	}

	logger.Info().Str("userType", string(resp.UserType)).Msg("Login successful")
	ctx.JSON(http.StatusOK, resp)
}
