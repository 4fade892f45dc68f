package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/studevo/Studevo/config"
	"github.com/studevo/Studevo/internal/domain"
	mongorepo "github.com/studevo/Studevo/internal/repository/mongo"
	"github.com/studevo/Studevo/internal/repository/postgres"
	"github.com/studevo/Studevo/pkg/database"
	"github.com/studevo/Studevo/pkg/logger"
)

type Backend string

const (
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
)

// Store bundles the repositories of one storage backend.
type Store struct {
	Backend       Backend
	Students      domain.StudentRepository
	Organizations domain.OrganizationRepository
	Posts         domain.PostRepository
	Accounts      domain.AccountRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// BackendFor picks the backend from the connection string scheme.
func BackendFor(databaseURL string) (Backend, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	}
	return "", fmt.Errorf("unsupported DATABASE_URL scheme %q", u.Scheme)
}

// Open connects to the configured backend and prepares its indexes or schema.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	backend, err := BackendFor(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	var store *Store
	switch backend {
	case BackendMongo:
		db, err := database.NewMongoConnection(ctx, cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			return nil, err
		}
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			_ = db.Client().Disconnect(ctx)
			return nil, err
		}
		store = &Store{
			Students:      mongorepo.NewStudentRepository(db),
			Organizations: mongorepo.NewOrganizationRepository(db),
			Posts:         mongorepo.NewPostRepository(db),
			ping:          func(ctx context.Context) error { return db.Client().Ping(ctx, nil) },
			close:         func(ctx context.Context) error { return db.Client().Disconnect(ctx) },
		}

	case BackendPostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		store = &Store{
			Students:      postgres.NewStudentRepository(pool),
			Organizations: postgres.NewOrganizationRepository(pool),
			Posts:         postgres.NewPostRepository(pool),
			ping:          pool.Ping,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}
	}

	store.Backend = backend
	store.Accounts = NewAccountRepository(store.Students, store.Organizations)
	logger.Log.Infow("storage ready", "backend", backend)
	return store, nil
}
