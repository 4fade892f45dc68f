package mongo

import (
	"context"
	"errors"

	"github.com/studevo/Studevo/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const studentsCollection = "students"

type studentRepo struct {
	col *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) domain.StudentRepository {
	return &studentRepo{col: db.Collection(studentsCollection)}
}

func (r *studentRepo) Create(ctx context.Context, student *domain.Student) error {
	_, err := r.col.InsertOne(ctx, student)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *studentRepo) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	var s domain.Student
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepo) UpdateProfile(ctx context.Context, student *domain.Student) error {
	update := bson.M{"$set": bson.M{
		"firstName":      student.FirstName,
		"lastName":       student.LastName,
		"phone":          student.Phone,
		"address":        student.Address,
		"education":      student.Education,
		"skills":         student.Skills,
		"experience":     student.Experience,
		"projects":       student.Projects,
		"certifications": student.Certifications,
		"updatedAt":      student.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"email": student.Email}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
