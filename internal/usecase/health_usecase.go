package usecase

import (
	"context"
	"time"

	"github.com/studevo/Studevo/pkg/logger"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// Pinger is satisfied by the storage handle.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthUsecase struct {
	storage Pinger
}

func NewHealthUsecase(storage Pinger) HealthUsecase {
	return &healthUsecase{storage: storage}
}

// Check always reports the process as up; storage state is informational.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":  "ok",
		"storage": "up",
	}
	if u.storage == nil {
		status["storage"] = "unknown"
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := u.storage.Ping(ctx); err != nil {
		logger.Log.Warnw("storage ping failed", "error", err)
		status["storage"] = "down"
	}
	return status
}
