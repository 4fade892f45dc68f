package repository

import (
	"context"
	"errors"

	"github.com/studevo/Studevo/internal/domain"
)

type accountRepo struct {
	students domain.StudentRepository
	orgs     domain.OrganizationRepository
}

// NewAccountRepository resolves an email across both account collections, students first.
func NewAccountRepository(students domain.StudentRepository, orgs domain.OrganizationRepository) domain.AccountRepository {
	return &accountRepo{students: students, orgs: orgs}
}

func (r *accountRepo) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	student, err := r.students.GetByEmail(ctx, email)
	if err == nil {
		return domain.StudentAccount(student), nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	org, err := r.orgs.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return domain.OrganizationAccount(org), nil
}
