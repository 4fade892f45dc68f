package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/pkg/apperror"
	"github.com/studevo/Studevo/pkg/logger"
	"github.com/studevo/Studevo/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// CV endpoints report a missing student as a 400, unlike post lookups.
var errStudentNotFound = apperror.NotFound("Student not found.").WithCode(http.StatusBadRequest)

type cvUsecase struct {
	students domain.StudentRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewCVUsecase(students domain.StudentRepository, validate *validator.Validate) domain.CVUsecase {
	return &cvUsecase{
		students: students,
		validate: validate,
		now:      time.Now,
	}
}

// SaveCV overwrites the profile of an existing student. It never creates one.
func (u *cvUsecase) SaveCV(ctx context.Context, cv domain.CV) (*domain.CV, error) {
	cv.Email = normalizeEmail(cv.Email)
	if err := u.validate.Struct(cv); err != nil {
		return nil, apperror.Validation(validation.Flatten(err))
	}

	student, err := u.students.GetByEmail(ctx, cv.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errStudentNotFound
	}
	if err != nil {
		logger.Log.Errorw("cv lookup failed", "email", cv.Email, "error", err)
		return nil, apperror.Internal(err)
	}

	student.ApplyCV(cv)
	student.UpdatedAt = u.now()

	err = u.students.UpdateProfile(ctx, student)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errStudentNotFound
	}
	if err != nil {
		logger.Log.Errorw("cv update failed", "email", cv.Email, "error", err)
		return nil, apperror.Internal(err)
	}

	saved := student.CV()
	return &saved, nil
}

func (u *cvUsecase) GetCV(ctx context.Context, email string) (*domain.CV, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperror.Validation("email is required")
	}

	student, err := u.students.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errStudentNotFound
	}
	if err != nil {
		logger.Log.Errorw("cv lookup failed", "email", email, "error", err)
		return nil, apperror.Internal(err)
	}

	cv := student.CV()
	return &cv, nil
}
