package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/app/models/dto"
	"github.com/devang/profmatch/internal/app/repositories"
	"github.com/devang/profmatch/internal/pkg/apperrors"
	"github.com/devang/profmatch/internal/pkg/auth"
)

// AdminService handles admin enrollment and login.
type AdminService interface {
	Register(ctx context.Context, req *dto.AdminRegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AdminWithRole, string, error)
}

type adminService struct {
	adminRepo  repositories.AdminRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(adminRepo repositories.AdminRepository, jwtService *auth.JWTService, logger zerolog.Logger) AdminService {
	return &adminService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *adminService) Register(ctx context.Context, req *dto.AdminRegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return err
	}

	existing, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.NewConflictError("user already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Email:        req.Email,
		PasswordHash: hash,
	}
	if _, err := s.adminRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info().Str("email", req.Email).Msg("Admin registered")
	return nil
}

// Login verifies credentials and mints a session token for the admin role.
func (s *adminService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AdminWithRole, string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", apperrors.ErrUserNotFound
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.ID.Hex(), models.RoleAdmin)
	if err != nil {
		return nil, "", err
	}

	return &dto.AdminWithRole{Admin: *admin, Role: models.RoleAdmin}, token, nil
}
