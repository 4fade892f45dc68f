package domain

import (
	"context"
	"time"
)

type PostType string

const (
	PostTypeInternship   PostType = "Internship"
	PostTypeVolunteering PostType = "Volunteering"
	PostTypeMentorship   PostType = "Mentorship"
	PostTypeEvent        PostType = "Event"
)

type PostStatus string

const (
	PostStatusDraft  PostStatus = "draft"
	PostStatusActive PostStatus = "active"
)

const DefaultPostLocation = "Remote"

// Post is an opportunity listing published by an organization.
// OrgName is copied at creation and never re-synced with the organization.
type Post struct {
	ID              string     `json:"id" bson:"_id"`
	OrgID           string     `json:"orgId" bson:"orgId" validate:"required,uuid"`
	OrgName         string     `json:"orgName" bson:"orgName" validate:"required,notblank"`
	Title           string     `json:"title" bson:"title" validate:"required,notblank,max=100"`
	Type            PostType   `json:"type" bson:"type" validate:"required,oneof=Internship Volunteering Mentorship Event"`
	Description     string     `json:"description" bson:"description" validate:"required,min=20,max=2000"`
	Location        string     `json:"location" bson:"location"`
	DurationStart   *time.Time `json:"durationStart,omitempty" bson:"durationStart,omitempty"`
	DurationEnd     *time.Time `json:"durationEnd,omitempty" bson:"durationEnd,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty" bson:"deadline,omitempty"`
	ApplicationLink string     `json:"applicationLink" bson:"applicationLink"`
	Status          PostStatus `json:"status" bson:"status" validate:"required,oneof=draft active"`
	// Revision counts updates; the public feed leaves it unset.
	Revision  *int64    `json:"revision,omitempty" bson:"revision,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// PostInput is the raw request payload for create and update; dates are unparsed strings.
type PostInput struct {
	OrgID           string `json:"orgId"`
	OrgName         string `json:"orgName"`
	Title           string `json:"title"`
	Type            string `json:"type"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	DurationStart   string `json:"durationStart"`
	DurationEnd     string `json:"durationEnd"`
	Deadline        string `json:"deadline"`
	ApplicationLink string `json:"applicationLink"`
	Status          string `json:"status"`
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	// Update replaces the editable fields and bumps Revision. Returns ErrNotFound for unknown ids.
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id string) error
	FetchByOrgID(ctx context.Context, orgID string) ([]Post, error)
	// FetchActive returns active posts newest first with Revision left unset.
	FetchActive(ctx context.Context) ([]Post, error)
}

type PostUsecase interface {
	CreatePost(ctx context.Context, in PostInput) (*Post, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	UpdatePost(ctx context.Context, id string, in PostInput) (*Post, error)
	DeletePost(ctx context.Context, id string) error
	// ListPosts returns every post of orgID when given, otherwise the public active feed.
	ListPosts(ctx context.Context, orgID string) ([]Post, error)
}
