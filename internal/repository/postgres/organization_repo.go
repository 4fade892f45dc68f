package postgres

import (
	"context"

	"github.com/studevo/Studevo/internal/domain"
)

type organizationRepo struct {
	db DBTX
}

func NewOrganizationRepository(db DBTX) domain.OrganizationRepository {
	return &organizationRepo{db: db}
}

func (r *organizationRepo) Create(ctx context.Context, o *domain.Organization) error {
	query := `INSERT INTO organizations (id, org_name, email, phone, password, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, o.ID, o.OrgName, o.Email, o.Phone, o.PasswordHash, o.CreatedAt, o.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *organizationRepo) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	return r.getOne(ctx, "id", id)
}

func (r *organizationRepo) GetByEmail(ctx context.Context, email string) (*domain.Organization, error) {
	return r.getOne(ctx, "email", email)
}

// column is always one of the literals above, never caller input.
func (r *organizationRepo) getOne(ctx context.Context, column, value string) (*domain.Organization, error) {
	query := `SELECT id, org_name, email, phone, password, created_at, updated_at
              FROM organizations WHERE ` + column + ` = $1`
	var o domain.Organization
	err := r.db.QueryRow(ctx, query, value).Scan(
		&o.ID, &o.OrgName, &o.Email, &o.Phone, &o.PasswordHash, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}
