package postgres

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/studevo/Studevo/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	err    error
	values []any
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, v := range r.values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		target.Set(reflect.ValueOf(v).Convert(target.Type()))
	}
	return nil
}

// fakeRows iterates over canned rows; the embedded interface covers the methods fetch never calls.
type fakeRows struct {
	pgx.Rows
	rows   []fakeRow
	next   int
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.next >= len(r.rows) {
		return false
	}
	r.next++
	return true
}

func (r *fakeRows) Scan(dest ...any) error { return r.rows[r.next-1].Scan(dest...) }

func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Close() { r.closed = true }

// fakeDB records statements and replays canned results.
type fakeDB struct {
	statements []string
	tag        pgconn.CommandTag
	execErr    error
	row        fakeRow
	rows       *fakeRows
	args       []any
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.statements = append(f.statements, sql)
	return f.tag, f.execErr
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.statements = append(f.statements, sql)
	f.args = args
	if f.rows == nil {
		return nil, errors.New("no rows configured")
	}
	return f.rows, nil
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.statements = append(f.statements, sql)
	return f.row
}

func TestEnsureSchema(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, EnsureSchema(context.Background(), db))
	assert.Len(t, db.statements, len(schema))

	db = &fakeDB{execErr: errors.New("permission denied")}
	assert.Error(t, EnsureSchema(context.Background(), db))
}

func TestCreateMapsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{execErr: &pgconn.PgError{Code: pgUniqueViolation}}

	err := NewStudentRepository(db).Create(ctx, &domain.Student{ID: "s1", Email: "ada@uni.edu"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	err = NewOrganizationRepository(db).Create(ctx, &domain.Organization{ID: "o1", Email: "jobs@acme.io"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestLookupsMapNoRows(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}

	_, err := NewStudentRepository(db).GetByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = NewOrganizationRepository(db).GetByID(ctx, "o1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = NewPostRepository(db).GetByID(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = NewPostRepository(db).Update(ctx, &domain.Post{ID: "p1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostUpdateReturnsRevision(t *testing.T) {
	db := &fakeDB{row: fakeRow{values: []any{int64(4)}}}
	post := &domain.Post{ID: "p1"}

	require.NoError(t, NewPostRepository(db).Update(context.Background(), post))
	require.NotNil(t, post.Revision)
	assert.Equal(t, int64(4), *post.Revision)
	assert.Contains(t, db.statements[0], "revision = revision + 1")
}

func TestRowsAffected(t *testing.T) {
	ctx := context.Background()

	db := &fakeDB{tag: pgconn.NewCommandTag("DELETE 0")}
	assert.ErrorIs(t, NewPostRepository(db).Delete(ctx, "p1"), domain.ErrNotFound)

	db = &fakeDB{tag: pgconn.NewCommandTag("DELETE 1")}
	assert.NoError(t, NewPostRepository(db).Delete(ctx, "p1"))

	db = &fakeDB{tag: pgconn.NewCommandTag("UPDATE 0")}
	assert.ErrorIs(t, NewStudentRepository(db).UpdateProfile(ctx, &domain.Student{Email: "x@y.z"}), domain.ErrNotFound)
}

func postRow(id string, status domain.PostStatus, revision int64, created time.Time) fakeRow {
	start := created.Add(24 * time.Hour)
	return fakeRow{values: []any{
		id, "o1", "Acme", "Intern", "Internship", strings.Repeat("x", 25), "Remote",
		&start, nil, nil, "", string(status), revision, created, created,
	}}
}

func TestFetchActive(t *testing.T) {
	newer := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	rows := &fakeRows{rows: []fakeRow{
		postRow("b", domain.PostStatusActive, 3, newer),
		postRow("a", domain.PostStatusActive, 1, older),
	}}
	db := &fakeDB{rows: rows}

	posts, err := NewPostRepository(db).FetchActive(context.Background())
	require.NoError(t, err)

	assert.Contains(t, db.statements[0], "WHERE status = $1")
	assert.Contains(t, db.statements[0], "ORDER BY created_at DESC")
	assert.Equal(t, []any{domain.PostStatusActive}, db.args)
	assert.True(t, rows.closed)

	require.Len(t, posts, 2)
	assert.Equal(t, "b", posts[0].ID)
	assert.Equal(t, domain.PostTypeInternship, posts[0].Type)
	require.NotNil(t, posts[0].DurationStart)
	assert.Nil(t, posts[0].DurationEnd)
	for _, p := range posts {
		assert.Nil(t, p.Revision, p.ID)
	}
}

func TestFetchByOrgID(t *testing.T) {
	created := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{rows: &fakeRows{rows: []fakeRow{
		postRow("b", domain.PostStatusDraft, 2, created),
		postRow("a", domain.PostStatusActive, 0, created.Add(-time.Hour)),
	}}}

	posts, err := NewPostRepository(db).FetchByOrgID(context.Background(), "o1")
	require.NoError(t, err)

	assert.Contains(t, db.statements[0], "WHERE org_id = $1")
	assert.Contains(t, db.statements[0], "ORDER BY created_at DESC")
	assert.Equal(t, []any{"o1"}, db.args)

	require.Len(t, posts, 2)
	assert.Equal(t, domain.PostStatusDraft, posts[0].Status)
	require.NotNil(t, posts[0].Revision)
	assert.Equal(t, int64(2), *posts[0].Revision)
	require.NotNil(t, posts[1].Revision)
}

func TestFetchEmpty(t *testing.T) {
	db := &fakeDB{rows: &fakeRows{}}

	posts, err := NewPostRepository(db).FetchActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}
