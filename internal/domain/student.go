package domain

import (
	"context"
	"time"
)

type Student struct {
	ID             string    `json:"id" bson:"_id"`
	Email          string    `json:"email" bson:"email"`
	PasswordHash   string    `json:"-" bson:"password"`
	FirstName      string    `json:"firstName" bson:"firstName"`
	LastName       string    `json:"lastName" bson:"lastName"`
	Phone          string    `json:"phone" bson:"phone"`
	Address        string    `json:"address" bson:"address"`
	Education      string    `json:"education" bson:"education"`
	Skills         string    `json:"skills" bson:"skills"`
	Experience     string    `json:"experience" bson:"experience"`
	Projects       string    `json:"projects" bson:"projects"`
	Certifications string    `json:"certifications" bson:"certifications"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CV is the profile subset of a Student, without credentials.
type CV struct {
	Email          string `json:"email" validate:"required,notblank"`
	FirstName      string `json:"firstName" validate:"required,notblank"`
	LastName       string `json:"lastName" validate:"required,notblank"`
	Phone          string `json:"phone" validate:"required,notblank"`
	Address        string `json:"address"`
	Education      string `json:"education"`
	Skills         string `json:"skills"`
	Experience     string `json:"experience"`
	Projects       string `json:"projects"`
	Certifications string `json:"certifications"`
}

func (s *Student) CV() CV {
	return CV{
		Email:          s.Email,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Phone:          s.Phone,
		Address:        s.Address,
		Education:      s.Education,
		Skills:         s.Skills,
		Experience:     s.Experience,
		Projects:       s.Projects,
		Certifications: s.Certifications,
	}
}

// ApplyCV overwrites every profile field, including clearing optional ones left empty.
func (s *Student) ApplyCV(cv CV) {
	s.FirstName = cv.FirstName
	s.LastName = cv.LastName
	s.Phone = cv.Phone
	s.Address = cv.Address
	s.Education = cv.Education
	s.Skills = cv.Skills
	s.Experience = cv.Experience
	s.Projects = cv.Projects
	s.Certifications = cv.Certifications
}

type StudentRepository interface {
	// Create returns ErrDuplicateEmail when the unique email index rejects the insert.
	Create(ctx context.Context, student *Student) error
	GetByEmail(ctx context.Context, email string) (*Student, error)
	// UpdateProfile writes the profile fields of the student matched by email.
	UpdateProfile(ctx context.Context, student *Student) error
}

type CVUsecase interface {
	SaveCV(ctx context.Context, cv CV) (*CV, error)
	GetCV(ctx context.Context, email string) (*CV, error)
}
