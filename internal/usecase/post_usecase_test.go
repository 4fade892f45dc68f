package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/internal/usecase"
	"github.com/studevo/Studevo/pkg/apperror"
	"github.com/studevo/Studevo/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	orgID  = "7d4f2a9c-1b3e-4c5d-8e6f-0a1b2c3d4e5f"
	postID = "0c9e8d7f-6a5b-4c3d-9e2f-1a0b9c8d7e6f"
)

func newPostUsecase() (domain.PostUsecase, *MockPostRepo, *MockOrgRepo) {
	posts := new(MockPostRepo)
	orgs := new(MockOrgRepo)
	return usecase.NewPostUsecase(posts, orgs, validation.New()), posts, orgs
}

func minimalInput() domain.PostInput {
	return domain.PostInput{
		OrgID:       orgID,
		OrgName:     "Acme",
		Title:       "Intern",
		Type:        "Internship",
		Description: strings.Repeat("x", 25),
	}
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Should apply defaults", func(t *testing.T) {
		uc, posts, orgs := newPostUsecase()
		orgs.On("GetByID", ctx, orgID).Return(&domain.Organization{ID: orgID}, nil)
		posts.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)

		post, err := uc.CreatePost(ctx, minimalInput())
		require.NoError(t, err)
		assert.Equal(t, domain.PostStatusDraft, post.Status)
		assert.Equal(t, "Remote", post.Location)
		assert.Equal(t, "", post.ApplicationLink)
		assert.Equal(t, orgID, post.OrgID)
		assert.Equal(t, "Acme", post.OrgName)
		assert.NotEmpty(t, post.ID)
		assert.False(t, post.CreatedAt.IsZero())
		require.NotNil(t, post.Revision)
		assert.Equal(t, int64(0), *post.Revision)
		posts.AssertExpectations(t)
	})

	t.Run("Should keep caller chosen status and parse dates", func(t *testing.T) {
		uc, posts, orgs := newPostUsecase()
		orgs.On("GetByID", ctx, orgID).Return(&domain.Organization{ID: orgID}, nil)
		posts.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)

		in := minimalInput()
		in.Status = "active"
		in.Location = "Onsite"
		in.DurationStart = "2025-06-01"
		in.DurationEnd = "2025-08-31T17:00:00Z"
		in.Deadline = "2025-05-15"
		in.ApplicationLink = "apply via careers page"

		post, err := uc.CreatePost(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, domain.PostStatusActive, post.Status)
		assert.Equal(t, "Onsite", post.Location)
		require.NotNil(t, post.DurationStart)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *post.DurationStart)
		require.NotNil(t, post.DurationEnd)
		require.NotNil(t, post.Deadline)
		assert.Equal(t, "apply via careers page", post.ApplicationLink)
	})

	t.Run("Should treat unparseable dates as absent", func(t *testing.T) {
		uc, posts, orgs := newPostUsecase()
		orgs.On("GetByID", ctx, orgID).Return(&domain.Organization{ID: orgID}, nil)
		posts.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)

		in := minimalInput()
		in.DurationStart = "next tuesday"
		in.DurationEnd = "2025-01-01"

		post, err := uc.CreatePost(ctx, in)
		require.NoError(t, err)
		assert.Nil(t, post.DurationStart)
		assert.NotNil(t, post.DurationEnd)
	})

	t.Run("Should reject start after end without persisting", func(t *testing.T) {
		uc, posts, orgs := newPostUsecase()
		in := minimalInput()
		in.DurationStart = "2025-09-01"
		in.DurationEnd = "2025-08-01"

		_, err := uc.CreatePost(ctx, in)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		orgs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should accept equal start and end", func(t *testing.T) {
		uc, posts, orgs := newPostUsecase()
		orgs.On("GetByID", ctx, orgID).Return(&domain.Organization{ID: orgID}, nil)
		posts.On("Create", ctx, mock.Anything).Return(nil)

		in := minimalInput()
		in.DurationStart = "2025-09-01"
		in.DurationEnd = "2025-09-01"

		_, err := uc.CreatePost(ctx, in)
		assert.NoError(t, err)
	})

	t.Run("Should validate fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*domain.PostInput)
			want   string
		}{
			{"missing title", func(in *domain.PostInput) { in.Title = "" }, "title is required"},
			{"long title", func(in *domain.PostInput) { in.Title = strings.Repeat("t", 101) }, "title must be at most 100 characters"},
			{"bad type", func(in *domain.PostInput) { in.Type = "Job" }, "type must be one of: Internship, Volunteering, Mentorship, Event"},
			{"short description", func(in *domain.PostInput) { in.Description = "too short" }, "description must be at least 20 characters"},
			{"bad status", func(in *domain.PostInput) { in.Status = "archived" }, "status must be one of: draft, active"},
			{"malformed orgId", func(in *domain.PostInput) { in.OrgID = "abc" }, "orgId is not a valid identifier"},
			{"missing orgName", func(in *domain.PostInput) { in.OrgName = "" }, "orgName is required"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc, posts, _ := newPostUsecase()
				in := minimalInput()
				tt.mutate(&in)

				_, err := uc.CreatePost(ctx, in)
				require.Error(t, err)
				assert.True(t, apperror.IsKind(err, apperror.KindValidation))
				assert.Equal(t, tt.want, err.Error())
				posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Should join several failures", func(t *testing.T) {
		uc, _, _ := newPostUsecase()
		_, err := uc.CreatePost(ctx, domain.PostInput{OrgID: orgID, OrgName: "Acme"})
		require.Error(t, err)
		assert.Equal(t, "title is required; type is required; description is required", err.Error())
	})

	t.Run("Should reject unknown organization", func(t *testing.T) {
		uc, posts, orgs := newPostUsecase()
		orgs.On("GetByID", ctx, orgID).Return(nil, domain.ErrNotFound)

		_, err := uc.CreatePost(ctx, minimalInput())
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetPost(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject malformed id", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		_, err := uc.GetPost(ctx, "not-an-id")
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		posts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should report missing post", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		posts.On("GetByID", ctx, postID).Return(nil, domain.ErrNotFound)

		_, err := uc.GetPost(ctx, postID)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("Should round trip a created post", func(t *testing.T) {
		uc, posts, orgs := newPostUsecase()
		orgs.On("GetByID", ctx, orgID).Return(&domain.Organization{ID: orgID}, nil)

		var stored *domain.Post
		posts.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.Post)
		})
		created, err := uc.CreatePost(ctx, minimalInput())
		require.NoError(t, err)

		posts.On("GetByID", ctx, created.ID).Return(stored, nil)
		got, err := uc.GetPost(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
		assert.Equal(t, "Intern", got.Title)
		assert.Equal(t, domain.PostTypeInternship, got.Type)
	})
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	existing := func() *domain.Post {
		return &domain.Post{
			ID:              postID,
			OrgID:           orgID,
			OrgName:         "Acme",
			Title:           "Intern",
			Type:            domain.PostTypeInternship,
			Description:     strings.Repeat("x", 25),
			Location:        "Onsite",
			DurationStart:   &start,
			ApplicationLink: "https://acme.io/apply",
			Status:          domain.PostStatusActive,
			CreatedAt:       created,
		}
	}

	t.Run("Should reset omitted fields to defaults", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		posts.On("GetByID", ctx, postID).Return(existing(), nil)
		posts.On("Update", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)

		updated, err := uc.UpdatePost(ctx, postID, domain.PostInput{
			Title:       "Senior intern",
			Type:        "Mentorship",
			Description: strings.Repeat("y", 30),
		})
		require.NoError(t, err)
		assert.Equal(t, "Remote", updated.Location)
		assert.Nil(t, updated.DurationStart)
		assert.Empty(t, updated.ApplicationLink)
		assert.Equal(t, "Senior intern", updated.Title)
		assert.Equal(t, domain.PostTypeMentorship, updated.Type)
	})

	t.Run("Should keep owner, status and creation time", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		posts.On("GetByID", ctx, postID).Return(existing(), nil)
		posts.On("Update", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)

		in := minimalInput()
		in.OrgID = "11111111-2222-4333-8444-555555555555"
		in.OrgName = "Other"
		in.Status = "draft"

		updated, err := uc.UpdatePost(ctx, postID, in)
		require.NoError(t, err)
		assert.Equal(t, orgID, updated.OrgID)
		assert.Equal(t, "Acme", updated.OrgName)
		assert.Equal(t, domain.PostStatusActive, updated.Status)
		assert.Equal(t, created, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(created))
	})

	t.Run("Should revalidate required fields", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		posts.On("GetByID", ctx, postID).Return(existing(), nil)

		_, err := uc.UpdatePost(ctx, postID, domain.PostInput{Title: "Intern"})
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should recheck the date range", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		posts.On("GetByID", ctx, postID).Return(existing(), nil)

		in := minimalInput()
		in.DurationStart = "2025-12-01"
		in.DurationEnd = "2025-01-01"
		_, err := uc.UpdatePost(ctx, postID, in)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should report unknown and malformed ids as not found", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		posts.On("GetByID", ctx, postID).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdatePost(ctx, postID, minimalInput())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

		_, err = uc.UpdatePost(ctx, "bogus", minimalInput())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		posts.On("Delete", ctx, postID).Return(nil)
		assert.NoError(t, uc.DeletePost(ctx, postID))
	})

	t.Run("Should report missing post", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		posts.On("Delete", ctx, postID).Return(domain.ErrNotFound)
		assert.True(t, apperror.IsKind(uc.DeletePost(ctx, postID), apperror.KindNotFound))
	})

	t.Run("Should map storage failure to internal", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		posts.On("Delete", ctx, postID).Return(errors.New("timeout"))
		assert.True(t, apperror.IsKind(uc.DeletePost(ctx, postID), apperror.KindInternal))
	})
}

func TestListPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("Should list the public active feed without orgId", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		feed := []domain.Post{{ID: postID, Status: domain.PostStatusActive}}
		posts.On("FetchActive", ctx).Return(feed, nil)

		got, err := uc.ListPosts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, feed, got)
		posts.AssertNotCalled(t, "FetchByOrgID", mock.Anything, mock.Anything)
	})

	t.Run("Should list every status for an organization", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		mine := []domain.Post{
			{ID: "b", Status: domain.PostStatusDraft},
			{ID: "a", Status: domain.PostStatusActive},
		}
		posts.On("FetchByOrgID", ctx, orgID).Return(mine, nil)

		got, err := uc.ListPosts(ctx, orgID)
		require.NoError(t, err)
		assert.Equal(t, mine, got)
		posts.AssertNotCalled(t, "FetchActive", mock.Anything)
	})

	t.Run("Should reject malformed orgId", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		_, err := uc.ListPosts(ctx, "12345")
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		posts.AssertNotCalled(t, "FetchByOrgID", mock.Anything, mock.Anything)
	})

	t.Run("Should return an empty slice, not nil", func(t *testing.T) {
		uc, posts, _ := newPostUsecase()
		posts.On("FetchActive", ctx).Return(nil, nil)

		got, err := uc.ListPosts(ctx, "")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "up", usecase.NewHealthUsecase(stubPinger{}).Check(ctx)["storage"])

	down := usecase.NewHealthUsecase(stubPinger{err: errors.New("no route")}).Check(ctx)
	assert.Equal(t, "ok", down["status"])
	assert.Equal(t, "down", down["storage"])
}
