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

type professorRepository struct {
	collection *mongo.Collection
}

// NewProfessorRepository creates the professors collection repository.
func NewProfessorRepository(collection *mongo.Collection) ProfessorRepository {
	return &professorRepository{collection: collection}
}

func (r *professorRepository) Create(ctx context.Context, professor *models.Professor) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, professor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperrors.ErrEmailAlreadyExists
		}
		return primitive.NilObjectID, fmt.Errorf("failed to insert professor: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *professorRepository) FindByEmail(ctx context.Context, email string) (*models.Professor, error) {
	var professor models.Professor
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&professor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find professor by email: %w", err)
	}
	return &professor, nil
}

func (r *professorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Professor, error) {
	var professor models.Professor
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&professor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find professor by id: %w", err)
	}
	return &professor, nil
}

func (r *professorRepository) FindAll(ctx context.Context) ([]models.Professor, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(byName))
	if err != nil {
		return nil, fmt.Errorf("failed to list professors: %w", err)
	}
	defer cursor.Close(ctx)

	professors := []models.Professor{}
	if err := cursor.All(ctx, &professors); err != nil {
		return nil, fmt.Errorf("failed to decode professors: %w", err)
	}
	return professors, nil
}

func (r *professorRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Professor, error) {
	filter := bson.M{"_id": bson.M{"$in": ids}}
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(byName))
	if err != nil {
		return nil, fmt.Errorf("failed to list professors by ids: %w", err)
	}
	defer cursor.Close(ctx)

	professors := []models.Professor{}
	if err := cursor.All(ctx, &professors); err != nil {
		return nil, fmt.Errorf("failed to decode professors: %w", err)
	}
	return professors, nil
}

// Update applies a $set partial merge and returns the updated record, or
// (nil, nil) when the id does not exist.
func (r *professorRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Professor, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var professor models.Professor
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&professor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to update professor: %w", err)
	}
	return &professor, nil
}

func (r *professorRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete professor: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *professorRepository) AddPublication(ctx context.Context, professorID primitive.ObjectID, publication *models.Publication) error {
	update := bson.M{"$push": bson.M{"publications": publication}}
	result, err := r.collection.UpdateByID(ctx, professorID, update)
	if err != nil {
		return fmt.Errorf("failed to add publication: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrProfessorNotFound
	}
	return nil
}

// UpdatePublication replaces the sub-record matching publication.ID in place.
// Returns false when the professor has no publication with that id.
func (r *professorRepository) UpdatePublication(ctx context.Context, professorID primitive.ObjectID, publication models.Publication) (bool, error) {
	filter := bson.M{"_id": professorID, "publications._id": publication.ID}
	update := bson.M{"$set": bson.M{"publications.$": publication}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update publication: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *professorRepository) RemovePublication(ctx context.Context, professorID, publicationID primitive.ObjectID) (bool, error) {
	update := bson.M{"$pull": bson.M{"publications": bson.M{"_id": publicationID}}}
	result, err := r.collection.UpdateByID(ctx, professorID, update)
	if err != nil {
		return false, fmt.Errorf("failed to remove publication: %w", err)
	}
	return result.ModifiedCount > 0, nil
}
