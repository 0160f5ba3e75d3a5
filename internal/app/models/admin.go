package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Admin is an administrator account. Admins only authenticate and manage the
// other two collections; they carry no profile data of their own.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
}
