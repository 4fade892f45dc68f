package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/pkg/apperror"
	"github.com/studevo/Studevo/pkg/auth"
	"github.com/studevo/Studevo/pkg/logger"
	"github.com/studevo/Studevo/pkg/security"
	"github.com/studevo/Studevo/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type studentRegistration struct {
	FirstName string `json:"firstName" validate:"required,notblank"`
	LastName  string `json:"lastName" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,notblank"`
	Password  string `json:"password" validate:"required"`
}

type organizationRegistration struct {
	OrgName     string `json:"orgName" validate:"required,notblank"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	AcceptTerms bool   `json:"acceptTerms" validate:"required"`
}

type authUsecase struct {
	accounts    domain.AccountRepository
	students    domain.StudentRepository
	orgs        domain.OrganizationRepository
	tokens      domain.TokenIssuer
	validate    *validator.Validate
	now         func() time.Time
	newID       func() string
	hash        func(string) (string, error)
	checkSecret func(hash, plain string) bool
}

// NewAuthUsecase wires registration and login. tokens may be nil, in which case login returns no token.
func NewAuthUsecase(
	accounts domain.AccountRepository,
	students domain.StudentRepository,
	orgs domain.OrganizationRepository,
	tokens domain.TokenIssuer,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		accounts:    accounts,
		students:    students,
		orgs:        orgs,
		tokens:      tokens,
		validate:    validate,
		now:         time.Now,
		newID:       uuid.NewString,
		hash:        auth.HashPassword,
		checkSecret: auth.CheckPassword,
	}
}

func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (domain.Role, error) {
	role := domain.Role(strings.TrimSpace(in.Role))
	if !role.Valid() {
		return "", apperror.Validation("role must be one of: student, organization")
	}
	in.Email = normalizeEmail(in.Email)

	var form interface{}
	if role == domain.RoleStudent {
		form = studentRegistration{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			Phone:     in.Phone,
			Password:  in.Password,
		}
	} else {
		form = organizationRegistration{
			OrgName:     in.OrgName,
			Email:       in.Email,
			Password:    in.Password,
			AcceptTerms: in.AcceptTerms,
		}
	}
	if err := u.validate.Struct(form); err != nil {
		return "", apperror.Validation(validation.Flatten(err))
	}

	// Uniqueness spans both collections, so probe through the shared account lookup.
	if _, err := u.accounts.FindByEmail(ctx, in.Email); err == nil {
		security.Log(security.Event{Type: security.EventRegistrationRejected, Email: in.Email, Reason: "email_taken"})
		return "", apperror.Conflict("Email already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		logger.Log.Errorw("account lookup failed", "email", in.Email, "error", err)
		return "", apperror.Internal(err)
	}

	hash, err := u.hash(in.Password)
	if err != nil {
		return "", apperror.Internal(err)
	}

	now := u.now()
	if role == domain.RoleStudent {
		err = u.students.Create(ctx, &domain.Student{
			ID:           u.newID(),
			Email:        in.Email,
			PasswordHash: hash,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Phone:        in.Phone,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	} else {
		err = u.orgs.Create(ctx, &domain.Organization{
			ID:           u.newID(),
			OrgName:      in.OrgName,
			Email:        in.Email,
			Phone:        in.Phone,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	if errors.Is(err, domain.ErrDuplicateEmail) {
		security.Log(security.Event{Type: security.EventRegistrationRejected, Email: in.Email, Reason: "unique_index"})
		return "", apperror.Conflict("Email already registered")
	}
	if err != nil {
		logger.Log.Errorw("registration insert failed", "role", role, "email", in.Email, "error", err)
		return "", apperror.Internal(err)
	}

	logger.Log.Infow("account registered", "role", role, "email", in.Email)
	return role, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperror.InvalidCredentials()
	}

	account, err := u.accounts.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		security.Log(security.Event{Type: security.EventLoginFailed, Email: email, Reason: "unknown_email"})
		return nil, apperror.InvalidCredentials()
	}
	if err != nil {
		logger.Log.Errorw("account lookup failed", "email", email, "error", err)
		return nil, apperror.Internal(err)
	}

	if !u.checkSecret(account.PasswordHash, password) {
		security.Log(security.Event{Type: security.EventLoginFailed, Email: email, Reason: "bad_password"})
		return nil, apperror.InvalidCredentials()
	}

	result := &domain.LoginResult{
		Role:  account.Role,
		Email: account.Email,
		ID:    account.ID,
	}
	if account.Role == domain.RoleOrganization {
		result.OrgID = account.ID
	}

	if u.tokens != nil {
		token, err := u.tokens.Issue(account.ID, account.Email, string(account.Role))
		if err != nil {
			return nil, apperror.Internal(err)
		}
		result.Token = token
	}

	security.Log(security.Event{Type: security.EventLoginSuccess, Email: email})
	return result, nil
}

func (u *authUsecase) CurrentAccount(ctx context.Context, email string) (*domain.AccountView, error) {
	account, err := u.accounts.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Unauthorized("Account no longer exists")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	view := &domain.AccountView{Role: account.Role, Email: account.Email, ID: account.ID}
	if account.Role == domain.RoleOrganization {
		view.OrgID = account.ID
	}
	return view, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
