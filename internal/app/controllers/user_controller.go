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

// UserController serves the role-agnostic session endpoints.
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile returns the caller's own record for whichever role the session
// carries, with the role attached.
// @Summary Current user
// @Tags user
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /user [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, role := middleware.Identity(ctx)

	user, err := c.userService.GetProfile(ctx.Request.Context(), userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserResponse{User: user})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side session state to revoke.
// @Summary Logout
// @Tags user
// @Success 200 {object} dto.MessageResponse
// @Router /logout [get]
func (c *UserController) Logout(ctx *gin.Context) {
	auth.ClearSessionCookie(ctx.Writer)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "logged out successfully"})
}
