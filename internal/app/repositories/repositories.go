// Package repositories is the data access layer over the document store.
// Lookups that miss return (nil, nil); callers decide which not-found error
// fits their operation.
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/db"
)

// AdminRepository is the admins collection contract.
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
}

// ProfessorRepository is the professors collection contract, including the
// embedded publication sub-records.
type ProfessorRepository interface {
	Create(ctx context.Context, professor *models.Professor) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.Professor, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Professor, error)
	FindAll(ctx context.Context) ([]models.Professor, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Professor, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Professor, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	AddPublication(ctx context.Context, professorID primitive.ObjectID, publication *models.Publication) error
	UpdatePublication(ctx context.Context, professorID primitive.ObjectID, publication models.Publication) (bool, error)
	RemovePublication(ctx context.Context, professorID, publicationID primitive.ObjectID) (bool, error)
}

// StudentRepository is the students collection contract, including the
// professor wishlist.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	FindByRoll(ctx context.Context, roll string) (*models.Student, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
	FindAll(ctx context.Context) ([]models.Student, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Student, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	SetWishlist(ctx context.Context, id primitive.ObjectID, professorIDs []primitive.ObjectID) (bool, error)
	PullProfessorFromWishlists(ctx context.Context, professorID primitive.ObjectID) error
}

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository     AdminRepository
	ProfessorRepository ProfessorRepository
	StudentRepository   StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.MongoDB) *Repositories {
	return &Repositories{
		AdminRepository:     NewAdminRepository(database.Database.Collection(db.AdminCollection)),
		ProfessorRepository: NewProfessorRepository(database.Database.Collection(db.ProfessorCollection)),
		StudentRepository:   NewStudentRepository(database.Database.Collection(db.StudentCollection)),
	}
}

// byName sorts list results the way the original API did: by the embedded
// name document.
var byName = bson.D{{Key: "name.firstName", Value: 1}, {Key: "name.lastName", Value: 1}}
