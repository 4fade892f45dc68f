package mongo

import (
	"context"
	"errors"

	"github.com/studevo/Studevo/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const organizationsCollection = "organizations"

type organizationRepo struct {
	col *mongo.Collection
}

func NewOrganizationRepository(db *mongo.Database) domain.OrganizationRepository {
	return &organizationRepo{col: db.Collection(organizationsCollection)}
}

func (r *organizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	_, err := r.col.InsertOne(ctx, org)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *organizationRepo) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *organizationRepo) GetByEmail(ctx context.Context, email string) (*domain.Organization, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *organizationRepo) findOne(ctx context.Context, filter bson.M) (*domain.Organization, error) {
	var o domain.Organization
	err := r.col.FindOne(ctx, filter).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
