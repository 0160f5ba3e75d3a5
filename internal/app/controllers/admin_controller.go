// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devang/profmatch/internal/app/models/dto"
	"github.com/devang/profmatch/internal/app/services"
	"github.com/devang/profmatch/internal/middleware"
	"github.com/devang/profmatch/internal/pkg/auth"
)

// AdminController handles admin account operations
type AdminController struct {
	adminService services.AdminService
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, jwtService *auth.JWTService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Register handles admin registration
// @Summary Register a new admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.AdminRegisterRequest true "Admin credentials"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Duplicate email or weak password"
// @Router /admin/register [post]
func (c *AdminController) Register(ctx *gin.Context) {
	var req dto.AdminRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("please fill all fields"))
		return
	}

	if err := c.adminService.Register(ctx.Request.Context(), &req); err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Admin registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "user registered successfully"})
}

// Login handles admin login
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AdminLoginResponse "Session cookie set"
// @Failure 400 {object} dto.ErrorResponse "Bad credentials"
// @Router /admin/login [post]
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("please fill all fields"))
		return
	}

	user, token, err := c.adminService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Admin login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	auth.SetSessionCookie(ctx.Writer, token, c.jwtService.TokenExpiry())
	ctx.JSON(http.StatusOK, dto.AdminLoginResponse{
		Message: "logged in successfully",
		User:    *user,
	})
}
