package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/pkg/assets"
	"github.com/devang/profmatch/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "service-test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "profmatch.test",
	})
}

// fakeAdminRepo is an in-memory AdminRepository.
type fakeAdminRepo struct {
	admins []*models.Admin
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) (primitive.ObjectID, error) {
	admin.ID = primitive.NewObjectID()
	r.admins = append(r.admins, admin)
	return admin.ID, nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

// fakeProfessorRepo is an in-memory ProfessorRepository. Update applies the
// same $set keys the real repository writes.
type fakeProfessorRepo struct {
	professors []*models.Professor
}

func (r *fakeProfessorRepo) Create(_ context.Context, professor *models.Professor) (primitive.ObjectID, error) {
	professor.ID = primitive.NewObjectID()
	r.professors = append(r.professors, professor)
	return professor.ID, nil
}

func (r *fakeProfessorRepo) FindByEmail(_ context.Context, email string) (*models.Professor, error) {
	for _, p := range r.professors {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfessorRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Professor, error) {
	for _, p := range r.professors {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfessorRepo) FindAll(_ context.Context) ([]models.Professor, error) {
	out := make([]models.Professor, 0, len(r.professors))
	for _, p := range r.professors {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProfessorRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Professor, error) {
	out := []models.Professor{}
	for _, id := range ids {
		for _, p := range r.professors {
			if p.ID == id {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func (r *fakeProfessorRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Professor, error) {
	professor, _ := r.FindByID(ctx, id)
	if professor == nil {
		return nil, nil
	}
	for key, value := range set {
		switch key {
		case "email":
			professor.Email = value.(string)
		case "password":
			professor.PasswordHash = value.(string)
		case "designation":
			professor.Designation = models.Designation(value.(string))
		case "name":
			professor.Name = value.(models.Name)
		case "profilePic":
			professor.ProfilePic = value.(string)
		case "department":
			professor.Department = value.(string)
		case "researchAreas":
			professor.ResearchAreas = value.(string)
		case "researchTechnologies":
			professor.ResearchTechnologies = value.(string)
		}
	}
	return professor, nil
}

func (r *fakeProfessorRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, p := range r.professors {
		if p.ID == id {
			r.professors = append(r.professors[:i], r.professors[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProfessorRepo) AddPublication(ctx context.Context, professorID primitive.ObjectID, publication *models.Publication) error {
	professor, _ := r.FindByID(ctx, professorID)
	if professor == nil {
		return nil
	}
	professor.Publications = append(professor.Publications, *publication)
	return nil
}

func (r *fakeProfessorRepo) UpdatePublication(ctx context.Context, professorID primitive.ObjectID, publication models.Publication) (bool, error) {
	professor, _ := r.FindByID(ctx, professorID)
	if professor == nil {
		return false, nil
	}
	for i := range professor.Publications {
		if professor.Publications[i].ID == publication.ID {
			professor.Publications[i] = publication
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProfessorRepo) RemovePublication(ctx context.Context, professorID, publicationID primitive.ObjectID) (bool, error) {
	professor, _ := r.FindByID(ctx, professorID)
	if professor == nil {
		return false, nil
	}
	for i := range professor.Publications {
		if professor.Publications[i].ID == publicationID {
			professor.Publications = append(professor.Publications[:i], professor.Publications[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeStudentRepo is an in-memory StudentRepository.
type fakeStudentRepo struct {
	students []*models.Student
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) (primitive.ObjectID, error) {
	student.ID = primitive.NewObjectID()
	r.students = append(r.students, student)
	return student.ID, nil
}

func (r *fakeStudentRepo) FindByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range r.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStudentRepo) FindByRoll(_ context.Context, roll string) (*models.Student, error) {
	for _, s := range r.students {
		if s.Roll == roll {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStudentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	for _, s := range r.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStudentRepo) FindAll(_ context.Context) ([]models.Student, error) {
	out := make([]models.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Student, error) {
	student, _ := r.FindByID(ctx, id)
	if student == nil {
		return nil, nil
	}
	for key, value := range set {
		switch key {
		case "email":
			student.Email = value.(string)
		case "password":
			student.PasswordHash = value.(string)
		case "name":
			student.Name = value.(models.Name)
		case "roll":
			student.Roll = value.(string)
		case "department":
			student.Department = value.(string)
		}
	}
	return student, nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, s := range r.students {
		if s.ID == id {
			r.students = append(r.students[:i], r.students[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) SetWishlist(ctx context.Context, id primitive.ObjectID, professorIDs []primitive.ObjectID) (bool, error) {
	student, _ := r.FindByID(ctx, id)
	if student == nil {
		return false, nil
	}
	student.Professors = professorIDs
	return true, nil
}

func (r *fakeStudentRepo) PullProfessorFromWishlists(_ context.Context, professorID primitive.ObjectID) error {
	for _, s := range r.students {
		kept := s.Professors[:0]
		for _, id := range s.Professors {
			if id != professorID {
				kept = append(kept, id)
			}
		}
		s.Professors = kept
	}
	return nil
}

// fakeUploader records upload calls and returns a deterministic hosted URL.
type fakeUploader struct {
	calls []assets.UploadOptions
}

func (u *fakeUploader) UploadImage(_ context.Context, _ string, opts assets.UploadOptions) (string, error) {
	u.calls = append(u.calls, opts)
	return "https://cdn.test/" + opts.Folder + "/" + opts.PublicID, nil
}
