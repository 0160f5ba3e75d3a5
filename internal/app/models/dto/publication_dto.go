package dto

import "github.com/devang/profmatch/internal/app/models"

// PublicationRequest carries the fields of one authored work. Used both for
// create and for full update of an existing publication; the sub-record id
// always comes from the path, never from the body.
type PublicationRequest struct {
	Title        string   `json:"title" binding:"required"`
	Abstract     string   `json:"abstract"`
	DownloadLink string   `json:"downloadLink"`
	Keywords     []string `json:"keywords"`
	Year         int      `json:"year"`
}

// PublicationResponse wraps a single publication sub-record.
type PublicationResponse struct {
	Publication models.Publication `json:"publication"`
}

// PublicationListResponse wraps a professor's publication list.
type PublicationListResponse struct {
	Publications []models.Publication `json:"publications"`
}

// PublicationMutationResponse confirms a create/update and returns the
// sub-record, including its generated id.
type PublicationMutationResponse struct {
	Message     string             `json:"message"`
	Publication models.Publication `json:"publication"`
}
