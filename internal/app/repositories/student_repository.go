package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/pkg/apperrors"
)

type studentRepository struct {
	collection *mongo.Collection
}

// NewStudentRepository creates the students collection repository.
func NewStudentRepository(collection *mongo.Collection) StudentRepository {
	return &studentRepository{collection: collection}
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperrors.ErrConflict
		}
		return primitive.NilObjectID, fmt.Errorf("failed to insert student: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *studentRepository) FindByRoll(ctx context.Context, roll string) (*models.Student, error) {
	return r.findOne(ctx, bson.M{"roll": roll})
}

func (r *studentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *studentRepository) findOne(ctx context.Context, filter bson.M) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, filter).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return &student, nil
}

func (r *studentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(byName))
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("failed to decode students: %w", err)
	}
	return students, nil
}

// Update applies a $set partial merge and returns the updated record, or
// (nil, nil) when the id does not exist.
func (r *studentRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Student, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var student models.Student
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return &student, nil
}

func (r *studentRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete student: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *studentRepository) SetWishlist(ctx context.Context, id primitive.ObjectID, professorIDs []primitive.ObjectID) (bool, error) {
	update := bson.M{"$set": bson.M{"professors": professorIDs}}
	result, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return false, fmt.Errorf("failed to set wishlist: %w", err)
	}
	return result.MatchedCount > 0, nil
}

// PullProfessorFromWishlists removes the professor id from every student's
// wishlist. Runs before the professor record itself is deleted; the two
// steps are not atomic (best-effort referential cleanup).
func (r *studentRepository) PullProfessorFromWishlists(ctx context.Context, professorID primitive.ObjectID) error {
	filter := bson.M{"professors": professorID}
	update := bson.M{"$pull": bson.M{"professors": professorID}}

	if _, err := r.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to pull professor from wishlists: %w", err)
	}
	return nil
}
