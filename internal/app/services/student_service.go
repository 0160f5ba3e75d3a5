package services

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/app/models/dto"
	"github.com/devang/profmatch/internal/app/repositories"
	"github.com/devang/profmatch/internal/pkg/apperrors"
	"github.com/devang/profmatch/internal/pkg/auth"
)

// StudentService handles student accounts and the professor wishlist.
type StudentService interface {
	Register(ctx context.Context, req *dto.StudentRegisterRequest) ([]models.Student, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.StudentWithRole, string, error)
	UpdateWishlist(ctx context.Context, studentID string, req *dto.WishlistUpdateRequest) error
	GetWishlist(ctx context.Context, studentID string) ([]models.Professor, error)
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	AdminUpdate(ctx context.Context, id string, req *dto.StudentAdminUpdateRequest) (*models.Student, error)
	Delete(ctx context.Context, id string) ([]models.Student, error)
}

type studentService struct {
	studentRepo   repositories.StudentRepository
	professorRepo repositories.ProfessorRepository
	jwtService    *auth.JWTService
	logger        zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.StudentRepository,
	professorRepo repositories.ProfessorRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) StudentService {
	return &studentService{
		studentRepo:   studentRepo,
		professorRepo: professorRepo,
		jwtService:    jwtService,
		logger:        logger,
	}
}

func (s *studentService) Register(ctx context.Context, req *dto.StudentRegisterRequest) ([]models.Student, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.studentRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("user already exists")
	}

	byRoll, err := s.studentRepo.FindByRoll(ctx, req.Roll)
	if err != nil {
		return nil, err
	}
	if byRoll != nil {
		return nil, apperrors.NewConflictError("roll number already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         models.Name{FirstName: req.Name.FirstName, LastName: req.Name.LastName},
		Roll:         req.Roll,
		Department:   req.Department,
		Professors:   []primitive.ObjectID{},
	}
	if _, err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", req.Email).Str("roll", req.Roll).Msg("Student registered")
	return s.studentRepo.FindAll(ctx)
}

// Login verifies credentials and mints a session token for the student role.
func (s *studentService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.StudentWithRole, string, error) {
	student, err := s.studentRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if student == nil {
		return nil, "", apperrors.ErrUserNotFound
	}

	if !auth.CheckPassword(student.PasswordHash, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(student.ID.Hex(), models.RoleStudent)
	if err != nil {
		return nil, "", err
	}

	return &dto.StudentWithRole{Student: *student, Role: models.RoleStudent}, token, nil
}

// UpdateWishlist bulk-replaces the caller's professor set. The subject id
// comes from the verified token, never from the request body.
func (s *studentService) UpdateWishlist(ctx context.Context, studentID string, req *dto.WishlistUpdateRequest) error {
	id, err := parseObjectID(studentID, apperrors.ErrStudentNotFound)
	if err != nil {
		return err
	}

	professorIDs := make([]primitive.ObjectID, 0, len(req.Wishlist))
	for _, hex := range req.Wishlist {
		professorID, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return apperrors.NewValidationError("invalid professor id in wishlist")
		}
		professorIDs = append(professorIDs, professorID)
	}

	matched, err := s.studentRepo.SetWishlist(ctx, id, professorIDs)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// GetWishlist resolves the caller's wishlist ids to redacted professor
// records. Dangling ids simply resolve to nothing.
func (s *studentService) GetWishlist(ctx context.Context, studentID string) ([]models.Professor, error) {
	id, err := parseObjectID(studentID, apperrors.ErrStudentNotFound)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	if len(student.Professors) == 0 {
		return []models.Professor{}, nil
	}
	return s.professorRepo.FindByIDs(ctx, student.Professors)
}

func (s *studentService) List(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.FindAll(ctx)
}

func (s *studentService) GetByID(ctx context.Context, idHex string) (*models.Student, error) {
	id, err := parseObjectID(idHex, apperrors.ErrStudentNotFound)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// AdminUpdate applies an admin's partial update, re-hashing a password reset
// through the enrollment path.
func (s *studentService) AdminUpdate(ctx context.Context, idHex string, req *dto.StudentAdminUpdateRequest) (*models.Student, error) {
	id, err := parseObjectID(idHex, apperrors.ErrStudentNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Name != nil {
		set["name"] = models.Name{FirstName: req.Name.FirstName, LastName: req.Name.LastName}
	}
	if req.Roll != nil {
		set["roll"] = *req.Roll
	}
	if req.Department != nil {
		set["department"] = *req.Department
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		set["password"] = hash
	}

	if len(set) == 0 {
		student, err := s.studentRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if student == nil {
			return nil, apperrors.ErrStudentNotFound
		}
		return student, nil
	}

	student, err := s.studentRepo.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, idHex string) ([]models.Student, error) {
	id, err := parseObjectID(idHex, apperrors.ErrStudentNotFound)
	if err != nil {
		return nil, err
	}

	deleted, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperrors.ErrStudentNotFound
	}

	s.logger.Info().Str("studentID", idHex).Msg("Student deleted")
	return s.studentRepo.FindAll(ctx)
}
