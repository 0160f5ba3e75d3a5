package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/pkg/apperrors"
)

type adminRepository struct {
	collection *mongo.Collection
}

// NewAdminRepository creates the admins collection repository.
func NewAdminRepository(collection *mongo.Collection) AdminRepository {
	return &adminRepository{collection: collection}
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperrors.ErrEmailAlreadyExists
		}
		return primitive.NilObjectID, fmt.Errorf("failed to insert admin: %w", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by id: %w", err)
	}
	return &admin, nil
}
