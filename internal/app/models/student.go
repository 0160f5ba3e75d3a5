package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student is a student account. Professors holds the wishlist: professor ids
// the student is interested in. Entries are advisory references; the store
// does not enforce their existence.
type Student struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email        string               `bson:"email" json:"email"`
	PasswordHash string               `bson:"password" json:"-"`
	Name         Name                 `bson:"name" json:"name"`
	Roll         string               `bson:"roll" json:"roll"`
	Department   string               `bson:"department" json:"department"`
	Professors   []primitive.ObjectID `bson:"professors" json:"professors"`
}
