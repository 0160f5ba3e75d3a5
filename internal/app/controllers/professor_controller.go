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

// ProfessorController handles professor accounts and publications
type ProfessorController struct {
	professorService services.ProfessorService
	jwtService       *auth.JWTService
	logger           zerolog.Logger
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService, jwtService *auth.JWTService, logger zerolog.Logger) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
		jwtService:       jwtService,
		logger:           logger,
	}
}

// Register creates a professor account (admin only).
// @Summary Register a new professor
// @Tags professor
// @Accept json
// @Produce json
// @Param request body dto.ProfessorRegisterRequest true "Professor fields"
// @Success 200 {object} dto.ProfessorMutationResponse
// @Failure 400 {object} dto.ErrorResponse "Duplicate email or validation failure"
// @Failure 403 {object} dto.ErrorResponse
// @Router /professor/register [post]
func (c *ProfessorController) Register(ctx *gin.Context) {
	var req dto.ProfessorRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("please fill all fields"))
		return
	}

	professors, err := c.professorService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Professor registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfessorMutationResponse{
		Message:    "user added successfully",
		Professors: professors,
	})
}

// Login authenticates a professor and sets the session cookie.
// @Summary Professor login
// @Tags professor
// @Success 200 {object} dto.ProfessorLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /professor/login [post]
func (c *ProfessorController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("please fill all fields"))
		return
	}

	user, token, err := c.professorService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Professor login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	auth.SetSessionCookie(ctx.Writer, token, c.jwtService.TokenExpiry())
	ctx.JSON(http.StatusOK, dto.ProfessorLoginResponse{
		Message: "logged in successfully",
		User:    *user,
	})
}

// UpdateSelf applies the authenticated professor's partial update, relaying
// an inbound image to the asset host when present.
// @Summary Update own professor profile
// @Tags professor
// @Success 200 {object} dto.ProfessorUpdateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /professor/update [patch]
func (c *ProfessorController) UpdateSelf(ctx *gin.Context) {
	var req dto.ProfessorUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
		return
	}

	userID, _ := middleware.Identity(ctx)
	professor, err := c.professorService.UpdateSelf(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfessorUpdateResponse{
		Message: "user updated successfully",
		User:    *professor,
	})
}

// AdminUpdate applies an admin's partial update to any professor.
// @Summary Update a professor (admin)
// @Tags professor
// @Param id path string true "Professor id"
// @Success 200 {object} dto.ProfessorUpdateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /professor/update/{id} [put]
func (c *ProfessorController) AdminUpdate(ctx *gin.Context) {
	var req dto.ProfessorAdminUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
		return
	}

	professor, err := c.professorService.AdminUpdate(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfessorUpdateResponse{
		Message: "user updated successfully",
		User:    *professor,
	})
}

// Delete removes a professor and cleans student wishlists (admin only).
// @Summary Delete a professor (admin)
// @Tags professor
// @Param id path string true "Professor id"
// @Success 200 {object} dto.ProfessorMutationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /professor/delete/{id} [delete]
func (c *ProfessorController) Delete(ctx *gin.Context) {
	professors, err := c.professorService.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfessorMutationResponse{
		Message:    "user deleted successfully",
		Professors: professors,
	})
}

// List returns all professors sorted by name, password-redacted.
// @Summary List professors
// @Tags professor
// @Success 200 {object} dto.ProfessorListResponse
// @Router /professor/all [get]
func (c *ProfessorController) List(ctx *gin.Context) {
	professors, err := c.professorService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfessorListResponse{Professors: professors})
}

// GetByID returns one professor, password-redacted.
// @Summary Get a professor
// @Tags professor
// @Param id path string true "Professor id"
// @Success 200 {object} dto.ProfessorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /professor/{id} [get]
func (c *ProfessorController) GetByID(ctx *gin.Context) {
	professor, err := c.professorService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfessorResponse{Professor: *professor})
}

// ListPublications returns the authenticated professor's publications.
func (c *ProfessorController) ListPublications(ctx *gin.Context) {
	userID, _ := middleware.Identity(ctx)
	publications, err := c.professorService.ListPublications(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PublicationListResponse{Publications: publications})
}

// AddPublication appends a publication to the authenticated professor's list
// and returns it with its generated id.
func (c *ProfessorController) AddPublication(ctx *gin.Context) {
	var req dto.PublicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("please fill all fields"))
		return
	}

	userID, _ := middleware.Identity(ctx)
	publication, err := c.professorService.AddPublication(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PublicationMutationResponse{
		Message:     "publication added successfully",
		Publication: *publication,
	})
}

// GetPublication returns one of the authenticated professor's publications.
func (c *ProfessorController) GetPublication(ctx *gin.Context) {
	userID, _ := middleware.Identity(ctx)
	publication, err := c.professorService.GetPublication(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PublicationResponse{Publication: *publication})
}

// UpdatePublication replaces one of the authenticated professor's
// publications; a missing id is a 404.
func (c *ProfessorController) UpdatePublication(ctx *gin.Context) {
	var req dto.PublicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("please fill all fields"))
		return
	}

	userID, _ := middleware.Identity(ctx)
	publication, err := c.professorService.UpdatePublication(ctx.Request.Context(), userID, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PublicationMutationResponse{
		Message:     "publication updated successfully",
		Publication: *publication,
	})
}

// DeletePublication removes one of the authenticated professor's
// publications; a missing id is a 404.
func (c *ProfessorController) DeletePublication(ctx *gin.Context) {
	userID, _ := middleware.Identity(ctx)
	if err := c.professorService.DeletePublication(ctx.Request.Context(), userID, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "publication deleted successfully"})
}
