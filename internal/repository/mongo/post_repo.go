package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/studevo/Studevo/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const postsCollection = "posts"

type postRepo struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) domain.PostRepository {
	return &postRepo{col: db.Collection(postsCollection)}
}

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	_, err := r.col.InsertOne(ctx, post)
	return err
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	var p domain.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update writes every editable field, unsetting absent dates, and bumps the revision.
func (r *postRepo) Update(ctx context.Context, post *domain.Post) error {
	set := bson.M{
		"title":           post.Title,
		"type":            post.Type,
		"description":     post.Description,
		"location":        post.Location,
		"applicationLink": post.ApplicationLink,
		"updatedAt":       post.UpdatedAt,
	}
	unset := bson.M{}
	dates := map[string]*time.Time{
		"durationStart": post.DurationStart,
		"durationEnd":   post.DurationEnd,
		"deadline":      post.Deadline,
	}
	for field, value := range dates {
		if value == nil {
			unset[field] = ""
		} else {
			set[field] = value
		}
	}

	update := bson.M{"$set": set, "$inc": bson.M{"revision": 1}}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated domain.Post
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": post.ID}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	post.Revision = updated.Revision
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postRepo) FetchByOrgID(ctx context.Context, orgID string) ([]domain.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"orgId": orgID}, opts)
}

func (r *postRepo) FetchActive(ctx context.Context) ([]domain.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{"revision": 0})
	return r.find(ctx, bson.M{"status": domain.PostStatusActive}, opts)
}

func (r *postRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Post, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Post{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
