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

// StudentController handles student accounts and the wishlist
type StudentController struct {
	studentService services.StudentService
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, jwtService *auth.JWTService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Register creates a student account (admin only).
// @Summary Register a new student
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.StudentRegisterRequest true "Student fields"
// @Success 200 {object} dto.StudentMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Duplicate email/roll or validation failure"
// @Failure 403 {object} dto.ErrorResponse
// @Router /student/register [post]
func (c *StudentController) Register(ctx *gin.Context) {
	var req dto.StudentRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("please fill all fields"))
		return
	}

	students, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Student registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentMutationResponse{
		Message:  "user registered successfully",
		Students: students,
	})
}

// Login authenticates a student and sets the session cookie.
// @Summary Student login
// @Tags student
// @Success 200 {object} dto.StudentLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /student/login [post]
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("please fill all fields"))
		return
	}

	user, token, err := c.studentService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Student login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	auth.SetSessionCookie(ctx.Writer, token, c.jwtService.TokenExpiry())
	ctx.JSON(http.StatusOK, dto.StudentLoginResponse{
		Message: "logged in successfully",
		User:    *user,
	})
}

// UpdateWishlist bulk-replaces the authenticated student's professor set.
// The subject id comes from the session token.
// @Summary Replace wishlist
// @Tags student
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/update [patch]
func (c *StudentController) UpdateWishlist(ctx *gin.Context) {
	var req dto.WishlistUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
		return
	}

	userID, _ := middleware.Identity(ctx)
	if err := c.studentService.UpdateWishlist(ctx.Request.Context(), userID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "wishlist updated successfully"})
}

// GetWishlist resolves the authenticated student's wishlist to professor
// records.
// @Summary Read wishlist
// @Tags student
// @Success 200 {object} dto.WishlistResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/wishlist [get]
func (c *StudentController) GetWishlist(ctx *gin.Context) {
	userID, _ := middleware.Identity(ctx)
	professors, err := c.studentService.GetWishlist(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WishlistResponse{Wishlist: professors})
}

// List returns all students sorted by name (admin only).
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.studentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{Students: students})
}

// GetByID returns one student (admin only).
func (c *StudentController) GetByID(ctx *gin.Context) {
	student, err := c.studentService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentResponse{Student: *student})
}

// AdminUpdate applies an admin's partial update to any student.
func (c *StudentController) AdminUpdate(ctx *gin.Context) {
	var req dto.StudentAdminUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
		return
	}

	student, err := c.studentService.AdminUpdate(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentUpdateResponse{
		Message: "user updated successfully",
		Student: *student,
	})
}

// Delete removes a student (admin only).
func (c *StudentController) Delete(ctx *gin.Context) {
	students, err := c.studentService.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentMutationResponse{
		Message:  "user deleted successfully",
		Students: students,
	})
}
