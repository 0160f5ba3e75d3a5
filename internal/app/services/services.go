// Package services holds the business logic between controllers and the
// record store.
//
// Services defined in this package:
// - AdminService: admin enrollment and login
// - ProfessorService: professor accounts and publication sub-resources
// - StudentService: student accounts and the professor wishlist
// - UserService: role-dispatched profile lookup for the shared /user route
package services

import "go.mongodb.org/mongo-driver/bson/primitive"

// parseObjectID converts a hex id from a path or token subject. A malformed
// id behaves like a missing record: notFound is returned so the caller maps
// it to the same response as a valid-but-absent id.
func parseObjectID(hex string, notFound error) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return id, nil
}
