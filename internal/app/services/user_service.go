package services

import (
	"context"

	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/app/models/dto"
	"github.com/devang/profmatch/internal/app/repositories"
	"github.com/devang/profmatch/internal/pkg/apperrors"
)

// UserService resolves the record behind a session's (subject id, role) pair
// for the shared profile endpoint.
type UserService interface {
	GetProfile(ctx context.Context, userID string, role models.Role) (interface{}, error)
}

type userService struct {
	adminRepo     repositories.AdminRepository
	professorRepo repositories.ProfessorRepository
	studentRepo   repositories.StudentRepository
}

// NewUserService creates a new UserService
func NewUserService(
	adminRepo repositories.AdminRepository,
	professorRepo repositories.ProfessorRepository,
	studentRepo repositories.StudentRepository,
) UserService {
	return &userService{
		adminRepo:     adminRepo,
		professorRepo: professorRepo,
		studentRepo:   studentRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string, role models.Role) (interface{}, error) {
	id, err := parseObjectID(userID, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError("user not found")
	}

	switch role {
	case models.RoleAdmin:
		admin, err := s.adminRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, apperrors.NewResourceNotFoundError("user not found")
		}
		return dto.AdminWithRole{Admin: *admin, Role: role}, nil

	case models.RoleProfessor:
		professor, err := s.professorRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if professor == nil {
			return nil, apperrors.NewResourceNotFoundError("user not found")
		}
		return dto.ProfessorWithRole{Professor: *professor, Role: role}, nil

	case models.RoleStudent:
		student, err := s.studentRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if student == nil {
			return nil, apperrors.NewResourceNotFoundError("user not found")
		}
		return dto.StudentWithRole{Student: *student, Role: role}, nil
	}

	return nil, apperrors.NewResourceNotFoundError("user not found")
}
