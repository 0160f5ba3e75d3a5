package dto

import "github.com/devang/profmatch/internal/app/models"

// NameRequest is the embedded two-part name payload.
type NameRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
}

// ProfessorRegisterRequest creates a professor account (admin-gated).
type ProfessorRegisterRequest struct {
	Email                string               `json:"email" binding:"required,email"`
	Password             string               `json:"password" binding:"required,min=6"`
	Designation          string               `json:"designation" binding:"omitempty,oneof='Assistant Professor' 'Associate Professor' 'Professor'"`
	Name                 NameRequest          `json:"name" binding:"required"`
	ProfilePic           string               `json:"profilePic"`
	Department           string               `json:"department" binding:"required,oneof=CSE ECE CCE MME"`
	ResearchAreas        string               `json:"researchAreas"`
	ResearchTechnologies string               `json:"researchTechnologies"`
	Publications         []PublicationRequest `json:"publications" binding:"omitempty,dive"`
}

// ProfessorUpdateRequest is the owner-side partial update. ProfilePic, when
// present, is an inbound image payload that goes through the asset relay
// before the URL is persisted.
type ProfessorUpdateRequest struct {
	Designation          *string      `json:"designation" binding:"omitempty,oneof='Assistant Professor' 'Associate Professor' 'Professor'"`
	Name                 *NameRequest `json:"name"`
	ProfilePic           *string      `json:"profilePic"`
	Department           *string      `json:"department" binding:"omitempty,oneof=CSE ECE CCE MME"`
	ResearchAreas        *string      `json:"researchAreas"`
	ResearchTechnologies *string      `json:"researchTechnologies"`
}

// ProfessorAdminUpdateRequest is the admin-side partial update; it may also
// rotate the email or reset the password.
type ProfessorAdminUpdateRequest struct {
	ProfessorUpdateRequest
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// ProfessorWithRole is a professor record with the session role attached.
type ProfessorWithRole struct {
	models.Professor
	Role models.Role `json:"role"`
}

// ProfessorLoginResponse is the login payload for professors.
type ProfessorLoginResponse struct {
	Message string            `json:"message"`
	User    ProfessorWithRole `json:"user"`
}

// ProfessorResponse wraps a single redacted professor record.
type ProfessorResponse struct {
	Professor models.Professor `json:"professor"`
}

// ProfessorListResponse wraps the name-sorted, redacted professor list.
type ProfessorListResponse struct {
	Professors []models.Professor `json:"professors"`
}

// ProfessorMutationResponse confirms a register/delete and returns the
// refreshed list, matching the original API contract.
type ProfessorMutationResponse struct {
	Message    string             `json:"message"`
	Professors []models.Professor `json:"professors"`
}

// ProfessorUpdateResponse confirms an update and returns the new record.
type ProfessorUpdateResponse struct {
	Message string           `json:"message"`
	User    models.Professor `json:"user"`
}
