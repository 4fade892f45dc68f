package domain

import (
	"context"
)

type Role string

const (
	RoleStudent      Role = "student"
	RoleOrganization Role = "organization"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleOrganization
}

// Account is the role-tagged result of looking an email up across students and organizations.
// Exactly one of Student or Organization is set, matching Role.
type Account struct {
	Role         Role
	ID           string
	Email        string
	PasswordHash string
	Student      *Student
	Organization *Organization
}

func StudentAccount(s *Student) *Account {
	return &Account{Role: RoleStudent, ID: s.ID, Email: s.Email, PasswordHash: s.PasswordHash, Student: s}
}

func OrganizationAccount(o *Organization) *Account {
	return &Account{Role: RoleOrganization, ID: o.ID, Email: o.Email, PasswordHash: o.PasswordHash, Organization: o}
}

type AccountRepository interface {
	// FindByEmail probes students first, then organizations. Returns ErrNotFound when neither matches.
	FindByEmail(ctx context.Context, email string) (*Account, error)
}

// RegisterInput carries the union of both roles' registration fields.
type RegisterInput struct {
	Role        string `json:"role"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	OrgName     string `json:"orgName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AcceptTerms bool   `json:"acceptTerms"`
}

type LoginResult struct {
	Role  Role   `json:"role"`
	Email string `json:"email"`
	ID    string `json:"id"`
	OrgID string `json:"orgId,omitempty"` // organizations only
	Token string `json:"token,omitempty"`
}

// AccountView is the credential-free shape returned for an authenticated caller.
type AccountView struct {
	Role  Role   `json:"role"`
	Email string `json:"email"`
	ID    string `json:"id"`
	OrgID string `json:"orgId,omitempty"`
}

// TokenIssuer signs bearer tokens for a logged-in account.
type TokenIssuer interface {
	Issue(accountID, email, role string) (string, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (Role, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	CurrentAccount(ctx context.Context, email string) (*AccountView, error)
}
