package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/pkg/apperror"
	"github.com/studevo/Studevo/pkg/logger"
	"github.com/studevo/Studevo/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Layouts accepted for date fields, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type postUsecase struct {
	posts    domain.PostRepository
	orgs     domain.OrganizationRepository
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

func NewPostUsecase(posts domain.PostRepository, orgs domain.OrganizationRepository, validate *validator.Validate) domain.PostUsecase {
	return &postUsecase{
		posts:    posts,
		orgs:     orgs,
		validate: validate,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (u *postUsecase) CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error) {
	post := buildPost(in)
	post.OrgID = strings.TrimSpace(in.OrgID)
	post.OrgName = in.OrgName
	post.Status = domain.PostStatus(strings.TrimSpace(in.Status))
	if post.Status == "" {
		post.Status = domain.PostStatusDraft
	}

	if err := u.check(post); err != nil {
		return nil, err
	}

	if _, err := u.orgs.GetByID(ctx, post.OrgID); errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Validation("orgId does not reference an existing organization")
	} else if err != nil {
		logger.Log.Errorw("organization lookup failed", "org_id", post.OrgID, "error", err)
		return nil, apperror.Internal(err)
	}

	now := u.now()
	revision := int64(0)
	post.ID = u.newID()
	post.Revision = &revision
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := u.posts.Create(ctx, post); err != nil {
		logger.Log.Errorw("post insert failed", "org_id", post.OrgID, "error", err)
		return nil, apperror.Internal(err)
	}
	return post, nil
}

func (u *postUsecase) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	if !validID(id) {
		return nil, apperror.Validation("Invalid post id")
	}

	post, err := u.posts.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Post not found")
	}
	if err != nil {
		logger.Log.Errorw("post lookup failed", "post_id", id, "error", err)
		return nil, apperror.Internal(err)
	}
	return post, nil
}

// UpdatePost replaces the post wholesale: fields missing from in fall back to their defaults,
// never to the stored values. Owner, status and creation time are kept.
func (u *postUsecase) UpdatePost(ctx context.Context, id string, in domain.PostInput) (*domain.Post, error) {
	if !validID(id) {
		return nil, apperror.NotFound("Post not found")
	}

	existing, err := u.posts.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Post not found")
	}
	if err != nil {
		logger.Log.Errorw("post lookup failed", "post_id", id, "error", err)
		return nil, apperror.Internal(err)
	}

	post := buildPost(in)
	post.ID = existing.ID
	post.OrgID = existing.OrgID
	post.OrgName = existing.OrgName
	post.Status = existing.Status
	post.CreatedAt = existing.CreatedAt

	if err := u.check(post); err != nil {
		return nil, err
	}
	post.UpdatedAt = u.now()

	err = u.posts.Update(ctx, post)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Post not found")
	}
	if err != nil {
		logger.Log.Errorw("post update failed", "post_id", id, "error", err)
		return nil, apperror.Internal(err)
	}
	return post, nil
}

func (u *postUsecase) DeletePost(ctx context.Context, id string) error {
	if !validID(id) {
		return apperror.NotFound("Post not found")
	}

	err := u.posts.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Post not found")
	}
	if err != nil {
		logger.Log.Errorw("post delete failed", "post_id", id, "error", err)
		return apperror.Internal(err)
	}
	return nil
}

func (u *postUsecase) ListPosts(ctx context.Context, orgID string) ([]domain.Post, error) {
	var (
		posts []domain.Post
		err   error
	)
	orgID = strings.TrimSpace(orgID)
	if orgID != "" {
		if !validID(orgID) {
			return nil, apperror.Validation("Invalid orgId")
		}
		posts, err = u.posts.FetchByOrgID(ctx, orgID)
	} else {
		posts, err = u.posts.FetchActive(ctx)
	}
	if err != nil {
		logger.Log.Errorw("post list failed", "org_id", orgID, "error", err)
		return nil, apperror.Internal(err)
	}

	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

func (u *postUsecase) check(post *domain.Post) error {
	if err := u.validate.Struct(post); err != nil {
		return apperror.Validation(validation.Flatten(err))
	}
	if post.DurationStart != nil && post.DurationEnd != nil && post.DurationStart.After(*post.DurationEnd) {
		return apperror.Validation("durationStart must not be after durationEnd")
	}
	return nil
}

// buildPost maps the editable fields of in onto a new Post, applying defaults.
func buildPost(in domain.PostInput) *domain.Post {
	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = domain.DefaultPostLocation
	}

	return &domain.Post{
		Title:           in.Title,
		Type:            domain.PostType(strings.TrimSpace(in.Type)),
		Description:     in.Description,
		Location:        location,
		DurationStart:   parseDate("durationStart", in.DurationStart),
		DurationEnd:     parseDate("durationEnd", in.DurationEnd),
		Deadline:        parseDate("deadline", in.Deadline),
		ApplicationLink: strings.TrimSpace(in.ApplicationLink),
	}
}

// parseDate treats empty or unparseable input as an absent date.
func parseDate(field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	logger.Log.Debugw("ignoring unparseable date", "field", field, "value", raw)
	return nil
}

// validID accepts only the canonical lower-case form ids are generated and stored in.
func validID(id string) bool {
	parsed, err := uuid.Parse(id)
	return err == nil && parsed.String() == id
}
