package dto

import "github.com/devang/profmatch/internal/app/models"

// LoginRequest carries credentials for any of the three roles.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminRegisterRequest creates an admin account.
type AdminRegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AdminWithRole is an admin record with the session role attached, as
// returned by login and the shared profile endpoint.
type AdminWithRole struct {
	models.Admin
	Role models.Role `json:"role"`
}

// AdminLoginResponse is the login payload for admins.
type AdminLoginResponse struct {
	Message string        `json:"message"`
	User    AdminWithRole `json:"user"`
}

// UserResponse wraps the record behind the shared GET /user endpoint. The
// concrete type depends on the caller's role; all three redact the password
// hash by construction.
type UserResponse struct {
	User interface{} `json:"user"`
}
