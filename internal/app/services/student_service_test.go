package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/app/models/dto"
	"github.com/devang/profmatch/internal/pkg/apperrors"
)

type studentFixture struct {
	svc           StudentService
	studentRepo   *fakeStudentRepo
	professorRepo *fakeProfessorRepo
}

func newStudentFixture() *studentFixture {
	f := &studentFixture{
		studentRepo:   &fakeStudentRepo{},
		professorRepo: &fakeProfessorRepo{},
	}
	f.svc = NewStudentService(f.studentRepo, f.professorRepo, newTestJWTService(), zerolog.Nop())
	return f
}

func registerStudent(t *testing.T, f *studentFixture, email, roll string) *models.Student {
	t.Helper()
	_, err := f.svc.Register(context.Background(), &dto.StudentRegisterRequest{
		Email:      email,
		Password:   "hunter22",
		Name:       dto.NameRequest{FirstName: "Linus"},
		Roll:       roll,
		Department: models.DepartmentCSE,
	})
	require.NoError(t, err)

	student, err := f.studentRepo.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotNil(t, student)
	return student
}

func TestStudentRegisterAndLogin(t *testing.T) {
	f := newStudentFixture()
	student := registerStudent(t, f, "linus@profmatch.app", "B19CS001")

	assert.NotEqual(t, "hunter22", student.PasswordHash)
	assert.NotNil(t, student.Professors)
	assert.Empty(t, student.Professors)

	user, token, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "linus@profmatch.app",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestStudentRegister_DuplicateEmail(t *testing.T) {
	f := newStudentFixture()
	registerStudent(t, f, "linus@profmatch.app", "B19CS001")

	_, err := f.svc.Register(context.Background(), &dto.StudentRegisterRequest{
		Email:      "linus@profmatch.app",
		Password:   "hunter22",
		Name:       dto.NameRequest{FirstName: "Linus"},
		Roll:       "B19CS002",
		Department: models.DepartmentCSE,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestStudentRegister_DuplicateRoll(t *testing.T) {
	f := newStudentFixture()
	registerStudent(t, f, "linus@profmatch.app", "B19CS001")

	_, err := f.svc.Register(context.Background(), &dto.StudentRegisterRequest{
		Email:      "other@profmatch.app",
		Password:   "hunter22",
		Name:       dto.NameRequest{FirstName: "Other"},
		Roll:       "B19CS001",
		Department: models.DepartmentME,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "roll")
}

func TestUpdateWishlist(t *testing.T) {
	f := newStudentFixture()
	student := registerStudent(t, f, "linus@profmatch.app", "B19CS001")

	professor := &models.Professor{Email: "ada@profmatch.app"}
	_, err := f.professorRepo.Create(context.Background(), professor)
	require.NoError(t, err)

	err = f.svc.UpdateWishlist(context.Background(), student.ID.Hex(), &dto.WishlistUpdateRequest{
		Wishlist: []string{professor.ID.Hex()},
	})
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{professor.ID}, student.Professors)

	// Bulk replace, not append.
	err = f.svc.UpdateWishlist(context.Background(), student.ID.Hex(), &dto.WishlistUpdateRequest{
		Wishlist: []string{},
	})
	require.NoError(t, err)
	assert.Empty(t, student.Professors)
}

func TestUpdateWishlist_MalformedID(t *testing.T) {
	f := newStudentFixture()
	student := registerStudent(t, f, "linus@profmatch.app", "B19CS001")

	err := f.svc.UpdateWishlist(context.Background(), student.ID.Hex(), &dto.WishlistUpdateRequest{
		Wishlist: []string{"zzzz"},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateWishlist_MissingStudent(t *testing.T) {
	f := newStudentFixture()

	err := f.svc.UpdateWishlist(context.Background(), primitive.NewObjectID().Hex(), &dto.WishlistUpdateRequest{
		Wishlist: []string{},
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestGetWishlist_ResolvesProfessors(t *testing.T) {
	f := newStudentFixture()
	student := registerStudent(t, f, "linus@profmatch.app", "B19CS001")

	professor := &models.Professor{Email: "ada@profmatch.app"}
	_, err := f.professorRepo.Create(context.Background(), professor)
	require.NoError(t, err)

	// One live id, one dangling id that should resolve to nothing.
	student.Professors = []primitive.ObjectID{professor.ID, primitive.NewObjectID()}

	wishlist, err := f.svc.GetWishlist(context.Background(), student.ID.Hex())
	require.NoError(t, err)
	require.Len(t, wishlist, 1)
	assert.Equal(t, professor.ID, wishlist[0].ID)
}

func TestGetWishlist_Empty(t *testing.T) {
	f := newStudentFixture()
	student := registerStudent(t, f, "linus@profmatch.app", "B19CS001")

	wishlist, err := f.svc.GetWishlist(context.Background(), student.ID.Hex())
	require.NoError(t, err)
	assert.NotNil(t, wishlist)
	assert.Empty(t, wishlist)
}

func TestStudentAdminUpdate(t *testing.T) {
	f := newStudentFixture()
	student := registerStudent(t, f, "linus@profmatch.app", "B19CS001")
	oldHash := student.PasswordHash

	roll := "B19CS099"
	password := "newpassword"
	updated, err := f.svc.AdminUpdate(context.Background(), student.ID.Hex(), &dto.StudentAdminUpdateRequest{
		Roll:     &roll,
		Password: &password,
	})
	require.NoError(t, err)
	assert.Equal(t, "B19CS099", updated.Roll)
	assert.NotEqual(t, oldHash, updated.PasswordHash)

	_, _, err = f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "linus@profmatch.app",
		Password: "newpassword",
	})
	assert.NoError(t, err)
}

func TestStudentDelete(t *testing.T) {
	f := newStudentFixture()
	student := registerStudent(t, f, "linus@profmatch.app", "B19CS001")
	registerStudent(t, f, "other@profmatch.app", "B19CS002")

	remaining, err := f.svc.Delete(context.Background(), student.ID.Hex())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "other@profmatch.app", remaining[0].Email)

	_, err = f.svc.Delete(context.Background(), student.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
