package domain

import (
	"context"
	"time"
)

type Organization struct {
	ID           string    `json:"id" bson:"_id"`
	OrgName      string    `json:"orgName" bson:"orgName"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	PasswordHash string    `json:"-" bson:"password"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, id string) (*Organization, error)
	GetByEmail(ctx context.Context, email string) (*Organization, error)
}
