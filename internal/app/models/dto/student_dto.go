package dto

import "github.com/devang/profmatch/internal/app/models"

// StudentRegisterRequest creates a student account (admin-gated).
type StudentRegisterRequest struct {
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=6"`
	Name       NameRequest `json:"name" binding:"required"`
	Roll       string      `json:"roll" binding:"required"`
	Department string      `json:"department" binding:"required,oneof=CSE ECE ME CCE MME"`
}

// StudentAdminUpdateRequest is the admin-side partial update for a student.
type StudentAdminUpdateRequest struct {
	Email      *string      `json:"email" binding:"omitempty,email"`
	Password   *string      `json:"password" binding:"omitempty,min=6"`
	Name       *NameRequest `json:"name"`
	Roll       *string      `json:"roll"`
	Department *string      `json:"department" binding:"omitempty,oneof=CSE ECE ME CCE MME"`
}

// WishlistUpdateRequest bulk-replaces the caller's professor wishlist.
// Ids must be well-formed ObjectID hex; existence is advisory only.
type WishlistUpdateRequest struct {
	Wishlist []string `json:"wishlist" binding:"required,dive,objectid"`
}

// StudentWithRole is a student record with the session role attached.
type StudentWithRole struct {
	models.Student
	Role models.Role `json:"role"`
}

// StudentLoginResponse is the login payload for students.
type StudentLoginResponse struct {
	Message string          `json:"message"`
	User    StudentWithRole `json:"user"`
}

// StudentResponse wraps a single redacted student record.
type StudentResponse struct {
	Student models.Student `json:"student"`
}

// StudentListResponse wraps the name-sorted, redacted student list.
type StudentListResponse struct {
	Students []models.Student `json:"students"`
}

// StudentMutationResponse confirms a register/delete and returns the
// refreshed list.
type StudentMutationResponse struct {
	Message  string           `json:"message"`
	Students []models.Student `json:"students"`
}

// StudentUpdateResponse confirms an admin update and returns the new record.
type StudentUpdateResponse struct {
	Message string         `json:"message"`
	Student models.Student `json:"student"`
}

// WishlistResponse resolves the caller's wishlist to redacted professor
// records.
type WishlistResponse struct {
	Wishlist []models.Professor `json:"wishlist"`
}
