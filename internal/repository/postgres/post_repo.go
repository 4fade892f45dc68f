package postgres

import (
	"context"

	"github.com/studevo/Studevo/internal/domain"

	"github.com/jackc/pgx/v5"
)

const postColumns = `id, org_id, org_name, title, type, description, location, duration_start, duration_end,
	deadline, application_link, status, revision, created_at, updated_at`

type postRepo struct {
	db DBTX
}

func NewPostRepository(db DBTX) domain.PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, p *domain.Post) error {
	var revision int64
	if p.Revision != nil {
		revision = *p.Revision
	}
	query := `INSERT INTO posts (` + postColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.OrgID, p.OrgName, p.Title, p.Type, p.Description, p.Location, p.DurationStart, p.DurationEnd,
		p.Deadline, p.ApplicationLink, p.Status, revision, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	p, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *postRepo) Update(ctx context.Context, p *domain.Post) error {
	query := `UPDATE posts SET title = $2, type = $3, description = $4, location = $5, duration_start = $6,
              duration_end = $7, deadline = $8, application_link = $9, updated_at = $10, revision = revision + 1
              WHERE id = $1 RETURNING revision`
	var revision int64
	err := r.db.QueryRow(ctx, query,
		p.ID, p.Title, p.Type, p.Description, p.Location, p.DurationStart,
		p.DurationEnd, p.Deadline, p.ApplicationLink, p.UpdatedAt,
	).Scan(&revision)
	if err != nil {
		return notFound(err)
	}
	p.Revision = &revision
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postRepo) FetchByOrgID(ctx context.Context, orgID string) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE org_id = $1 ORDER BY created_at DESC`
	return r.fetch(ctx, query, false, orgID)
}

func (r *postRepo) FetchActive(ctx context.Context) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE status = $1 ORDER BY created_at DESC`
	return r.fetch(ctx, query, true, domain.PostStatusActive)
}

func (r *postRepo) fetch(ctx context.Context, query string, public bool, args ...any) ([]domain.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		if public {
			p.Revision = nil
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		p        domain.Post
		revision int64
	)
	err := row.Scan(
		&p.ID, &p.OrgID, &p.OrgName, &p.Title, &p.Type, &p.Description, &p.Location, &p.DurationStart, &p.DurationEnd,
		&p.Deadline, &p.ApplicationLink, &p.Status, &revision, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Revision = &revision
	return &p, nil
}
