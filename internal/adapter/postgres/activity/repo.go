// Package activity implements the append-only Activity repository using PostgreSQL.
package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/adapter/postgres"
	"github.com/heartmarshall/account-service/internal/domain"
)

const table = "activities"

var columns = []string{"id", "user_id", "activity_type", "post_id", "created_at"}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db      postgres.Querier
	timeout time.Duration
}

// New creates a new activity repository.
func New(db postgres.Querier, timeout time.Duration) *Repo {
	return &Repo{db: db, timeout: timeout}
}

// Create appends an activity.
func (r *Repo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.UserID, a.ActivityType.String(), a.PostID, a.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert activity: %w", err)
	}
	return r.scanOne(ctx, query, args, a.ID)
}

// GetByID returns an activity.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select activity: %w", err)
	}
	return r.scanOne(ctx, query, args, id)
}

// Delete removes an activity. Only rollbacks delete activities.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete activity: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "activity", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("activity %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListByUser returns one keyset page of a user's activities, oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Activity], error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	b, err := postgres.Keyset(
		postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"user_id": userID}),
		req,
	)
	if err != nil {
		return domain.Page[domain.Activity]{}, err
	}

	query, args, err := b.ToSql()
	if err != nil {
		return domain.Page[domain.Activity]{}, fmt.Errorf("build list activities: %w", err)
	}

	var rows []activityRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return domain.Page[domain.Activity]{}, postgres.MapError(err, "user activities", userID)
	}

	items := make([]domain.Activity, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return postgres.BuildPage(items, req, func(a domain.Activity) domain.Cursor {
		return domain.Cursor{CreatedAt: a.CreatedAt, ID: a.ID}
	}), nil
}

func (r *Repo) scanOne(ctx context.Context, query string, args []any, id uuid.UUID) (*domain.Activity, error) {
	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}
	a := row.toDomain()
	return &a, nil
}

type activityRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	ActivityType string    `db:"activity_type"`
	PostID       string    `db:"post_id"`
	CreatedAt    time.Time `db:"created_at"`
}

func (row activityRow) toDomain() domain.Activity {
	return domain.Activity{
		ID:           row.ID,
		UserID:       row.UserID,
		ActivityType: domain.ActivityType(row.ActivityType),
		PostID:       row.PostID,
		CreatedAt:    row.CreatedAt,
	}
}
