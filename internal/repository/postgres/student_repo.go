package postgres

import (
	"context"

	"github.com/studevo/Studevo/internal/domain"
)

const studentColumns = `id, email, password, first_name, last_name, phone, address, education,
	skills, experience, projects, certifications, created_at, updated_at`

type studentRepo struct {
	db DBTX
}

func NewStudentRepository(db DBTX) domain.StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (` + studentColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Email, s.PasswordHash, s.FirstName, s.LastName, s.Phone, s.Address, s.Education,
		s.Skills, s.Experience, s.Projects, s.Certifications, s.CreatedAt, s.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *studentRepo) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`
	var s domain.Student
	err := r.db.QueryRow(ctx, query, email).Scan(
		&s.ID, &s.Email, &s.PasswordHash, &s.FirstName, &s.LastName, &s.Phone, &s.Address, &s.Education,
		&s.Skills, &s.Experience, &s.Projects, &s.Certifications, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *studentRepo) UpdateProfile(ctx context.Context, s *domain.Student) error {
	query := `UPDATE students SET first_name = $2, last_name = $3, phone = $4, address = $5, education = $6,
              skills = $7, experience = $8, projects = $9, certifications = $10, updated_at = $11
              WHERE email = $1`
	tag, err := r.db.Exec(ctx, query,
		s.Email, s.FirstName, s.LastName, s.Phone, s.Address, s.Education,
		s.Skills, s.Experience, s.Projects, s.Certifications, s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
