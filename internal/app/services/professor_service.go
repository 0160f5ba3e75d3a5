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
	"github.com/devang/profmatch/internal/pkg/assets"
	"github.com/devang/profmatch/internal/pkg/auth"
)

// ProfessorService handles professor accounts and their publication
// sub-resources.
type ProfessorService interface {
	Register(ctx context.Context, req *dto.ProfessorRegisterRequest) ([]models.Professor, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.ProfessorWithRole, string, error)
	UpdateSelf(ctx context.Context, professorID string, req *dto.ProfessorUpdateRequest) (*models.Professor, error)
	AdminUpdate(ctx context.Context, id string, req *dto.ProfessorAdminUpdateRequest) (*models.Professor, error)
	Delete(ctx context.Context, id string) ([]models.Professor, error)
	List(ctx context.Context) ([]models.Professor, error)
	GetByID(ctx context.Context, id string) (*models.Professor, error)

	ListPublications(ctx context.Context, professorID string) ([]models.Publication, error)
	AddPublication(ctx context.Context, professorID string, req *dto.PublicationRequest) (*models.Publication, error)
	GetPublication(ctx context.Context, professorID, publicationID string) (*models.Publication, error)
	UpdatePublication(ctx context.Context, professorID, publicationID string, req *dto.PublicationRequest) (*models.Publication, error)
	DeletePublication(ctx context.Context, professorID, publicationID string) error
}

type professorService struct {
	professorRepo repositories.ProfessorRepository
	studentRepo   repositories.StudentRepository
	jwtService    *auth.JWTService
	uploader      assets.Uploader
	uploadFolder  string
	logger        zerolog.Logger
}

// NewProfessorService creates a new ProfessorService
func NewProfessorService(
	professorRepo repositories.ProfessorRepository,
	studentRepo repositories.StudentRepository,
	jwtService *auth.JWTService,
	uploader assets.Uploader,
	uploadFolder string,
	logger zerolog.Logger,
) ProfessorService {
	return &professorService{
		professorRepo: professorRepo,
		studentRepo:   studentRepo,
		jwtService:    jwtService,
		uploader:      uploader,
		uploadFolder:  uploadFolder,
		logger:        logger,
	}
}

func (s *professorService) Register(ctx context.Context, req *dto.ProfessorRegisterRequest) ([]models.Professor, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.professorRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("user already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	profilePic := req.ProfilePic
	if profilePic == "" {
		profilePic = models.DefaultProfilePic
	}

	publications := make([]models.Publication, 0, len(req.Publications))
	for _, p := range req.Publications {
		publications = append(publications, newPublication(&p))
	}

	professor := &models.Professor{
		Email:                req.Email,
		PasswordHash:         hash,
		Designation:          models.Designation(req.Designation),
		Name:                 models.Name{FirstName: req.Name.FirstName, LastName: req.Name.LastName},
		ProfilePic:           profilePic,
		Department:           req.Department,
		ResearchAreas:        req.ResearchAreas,
		ResearchTechnologies: req.ResearchTechnologies,
		Publications:         publications,
	}

	if _, err := s.professorRepo.Create(ctx, professor); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", req.Email).Msg("Professor registered")
	return s.professorRepo.FindAll(ctx)
}

// Login verifies credentials and mints a session token for the professor role.
func (s *professorService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.ProfessorWithRole, string, error) {
	professor, err := s.professorRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if professor == nil {
		return nil, "", apperrors.ErrUserNotFound
	}

	if !auth.CheckPassword(professor.PasswordHash, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(professor.ID.Hex(), models.RoleProfessor)
	if err != nil {
		return nil, "", err
	}

	return &dto.ProfessorWithRole{Professor: *professor, Role: models.RoleProfessor}, token, nil
}

// UpdateSelf applies the owner's partial update. An inbound image payload is
// relayed to the asset host first and only the hosted URL is persisted.
func (s *professorService) UpdateSelf(ctx context.Context, professorID string, req *dto.ProfessorUpdateRequest) (*models.Professor, error) {
	id, err := parseObjectID(professorID, apperrors.ErrProfessorNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	applyProfessorUpdate(set, req)

	if req.ProfilePic != nil && *req.ProfilePic != "" {
		url, err := s.uploader.UploadImage(ctx, *req.ProfilePic, assets.UploadOptions{
			Folder:    s.uploadFolder,
			PublicID:  professorID,
			Overwrite: true,
		})
		if err != nil {
			s.logger.Error().Err(err).Str("professorID", professorID).Msg("Profile image upload failed")
			return nil, err
		}
		set["profilePic"] = url
	}

	if len(set) == 0 {
		// Nothing to change; return the current record.
		professor, err := s.professorRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if professor == nil {
			return nil, apperrors.ErrProfessorNotFound
		}
		return professor, nil
	}

	professor, err := s.professorRepo.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	if professor == nil {
		return nil, apperrors.ErrProfessorNotFound
	}
	return professor, nil
}

// AdminUpdate applies an admin's partial update, re-hashing a password reset
// through the enrollment path.
func (s *professorService) AdminUpdate(ctx context.Context, idHex string, req *dto.ProfessorAdminUpdateRequest) (*models.Professor, error) {
	id, err := parseObjectID(idHex, apperrors.ErrProfessorNotFound)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	applyProfessorUpdate(set, &req.ProfessorUpdateRequest)
	if req.ProfilePic != nil {
		// Admin updates carry a plain URL, not an upload payload.
		set["profilePic"] = *req.ProfilePic
	}
	if req.Email != nil {
		set["email"] = *req.Email
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
		professor, err := s.professorRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if professor == nil {
			return nil, apperrors.ErrProfessorNotFound
		}
		return professor, nil
	}

	professor, err := s.professorRepo.Update(ctx, id, set)
	if err != nil {
		return nil, err
	}
	if professor == nil {
		return nil, apperrors.ErrProfessorNotFound
	}
	return professor, nil
}

// Delete removes the professor and pulls its id from every student wishlist.
// The cleanup runs first and the two steps are not atomic; a crash in
// between leaves the account without dangling references rather than the
// other way around.
func (s *professorService) Delete(ctx context.Context, idHex string) ([]models.Professor, error) {
	id, err := parseObjectID(idHex, apperrors.ErrProfessorNotFound)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.PullProfessorFromWishlists(ctx, id); err != nil {
		return nil, err
	}

	deleted, err := s.professorRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, apperrors.ErrProfessorNotFound
	}

	s.logger.Info().Str("professorID", idHex).Msg("Professor deleted, wishlists cleaned")
	return s.professorRepo.FindAll(ctx)
}

func (s *professorService) List(ctx context.Context) ([]models.Professor, error) {
	return s.professorRepo.FindAll(ctx)
}

func (s *professorService) GetByID(ctx context.Context, idHex string) (*models.Professor, error) {
	id, err := parseObjectID(idHex, apperrors.ErrProfessorNotFound)
	if err != nil {
		return nil, err
	}

	professor, err := s.professorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if professor == nil {
		return nil, apperrors.ErrProfessorNotFound
	}
	return professor, nil
}

func (s *professorService) ListPublications(ctx context.Context, professorID string) ([]models.Publication, error) {
	professor, err := s.GetByID(ctx, professorID)
	if err != nil {
		return nil, err
	}
	if professor.Publications == nil {
		return []models.Publication{}, nil
	}
	return professor.Publications, nil
}

func (s *professorService) AddPublication(ctx context.Context, professorID string, req *dto.PublicationRequest) (*models.Publication, error) {
	id, err := parseObjectID(professorID, apperrors.ErrProfessorNotFound)
	if err != nil {
		return nil, err
	}

	publication := newPublication(req)
	if err := s.professorRepo.AddPublication(ctx, id, &publication); err != nil {
		return nil, err
	}
	return &publication, nil
}

func (s *professorService) GetPublication(ctx context.Context, professorID, publicationID string) (*models.Publication, error) {
	pubID, err := parseObjectID(publicationID, apperrors.ErrPublicationNotFound)
	if err != nil {
		return nil, err
	}

	professor, err := s.GetByID(ctx, professorID)
	if err != nil {
		return nil, err
	}

	publication := professor.PublicationByID(pubID)
	if publication == nil {
		return nil, apperrors.ErrPublicationNotFound
	}
	return publication, nil
}

// UpdatePublication replaces the sub-record's fields. A missing publication
// id is a NotFound, not a silent no-op.
func (s *professorService) UpdatePublication(ctx context.Context, professorID, publicationID string, req *dto.PublicationRequest) (*models.Publication, error) {
	profID, err := parseObjectID(professorID, apperrors.ErrProfessorNotFound)
	if err != nil {
		return nil, err
	}
	pubID, err := parseObjectID(publicationID, apperrors.ErrPublicationNotFound)
	if err != nil {
		return nil, err
	}

	publication := newPublication(req)
	publication.ID = pubID

	matched, err := s.professorRepo.UpdatePublication(ctx, profID, publication)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, apperrors.ErrPublicationNotFound
	}
	return &publication, nil
}

// DeletePublication removes the sub-record. A missing publication id is a
// NotFound, not a silent no-op.
func (s *professorService) DeletePublication(ctx context.Context, professorID, publicationID string) error {
	profID, err := parseObjectID(professorID, apperrors.ErrProfessorNotFound)
	if err != nil {
		return err
	}
	pubID, err := parseObjectID(publicationID, apperrors.ErrPublicationNotFound)
	if err != nil {
		return err
	}

	removed, err := s.professorRepo.RemovePublication(ctx, profID, pubID)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrPublicationNotFound
	}
	return nil
}

// newPublication builds a sub-record with a freshly generated id.
func newPublication(req *dto.PublicationRequest) models.Publication {
	keywords := req.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return models.Publication{
		ID:           primitive.NewObjectID(),
		Title:        req.Title,
		Abstract:     req.Abstract,
		DownloadLink: req.DownloadLink,
		Keywords:     keywords,
		Year:         req.Year,
	}
}

// applyProfessorUpdate copies the present fields of a partial update into a
// $set document. ProfilePic is handled by the callers because its meaning
// differs between the owner and admin paths.
func applyProfessorUpdate(set bson.M, req *dto.ProfessorUpdateRequest) {
	if req.Designation != nil {
		set["designation"] = *req.Designation
	}
	if req.Name != nil {
		set["name"] = models.Name{FirstName: req.Name.FirstName, LastName: req.Name.LastName}
	}
	if req.Department != nil {
		set["department"] = *req.Department
	}
	if req.ResearchAreas != nil {
		set["researchAreas"] = *req.ResearchAreas
	}
	if req.ResearchTechnologies != nil {
		set["researchTechnologies"] = *req.ResearchTechnologies
	}
}
