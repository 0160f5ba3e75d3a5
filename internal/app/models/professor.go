package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Designation is a professor's academic rank.
type Designation string

const (
	DesignationAssistantProfessor Designation = "Assistant Professor"
	DesignationAssociateProfessor Designation = "Associate Professor"
	DesignationProfessor          Designation = "Professor"
)

// Department codes. Professors can belong to four departments; students to
// five (ME has no professor accounts).
const (
	DepartmentCSE = "CSE"
	DepartmentECE = "ECE"
	DepartmentCCE = "CCE"
	DepartmentMME = "MME"
	DepartmentME  = "ME"
)

// DefaultProfilePic is used when a professor is registered without an image.
const DefaultProfilePic = "https://www.pngitem.com/pimgs/m/146-1468479_my-profile-icon-blank-profile-picture-circle-hd.png"

// Name is the two-part display name embedded in professor and student records.
type Name struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName,omitempty" json:"lastName,omitempty"`
}

// Publication is a sub-record owned by a professor, addressed by its own
// generated id within the parent's publications array.
type Publication struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Abstract     string             `bson:"abstract" json:"abstract"`
	DownloadLink string             `bson:"downloadLink" json:"downloadLink"`
	Keywords     []string           `bson:"keywords" json:"keywords"`
	Year         int                `bson:"year" json:"year"`
}

// Professor is a professor account with its embedded publication list.
// The password hash is stored under the legacy "password" key and is never
// serialized to clients.
type Professor struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email                string             `bson:"email" json:"email"`
	PasswordHash         string             `bson:"password" json:"-"`
	Designation          Designation        `bson:"designation,omitempty" json:"designation,omitempty"`
	Name                 Name               `bson:"name" json:"name"`
	ProfilePic           string             `bson:"profilePic" json:"profilePic"`
	Department           string             `bson:"department" json:"department"`
	ResearchAreas        string             `bson:"researchAreas" json:"researchAreas"`
	ResearchTechnologies string             `bson:"researchTechnologies" json:"researchTechnologies"`
	Publications         []Publication      `bson:"publications" json:"publications"`
}

// PublicationByID returns the publication with the given id, or nil.
func (p *Professor) PublicationByID(id primitive.ObjectID) *Publication {
	for i := range p.Publications {
		if p.Publications[i].ID == id {
			return &p.Publications[i]
		}
	}
	return nil
}
