// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/adapter/postgres"
	"github.com/heartmarshall/account-service/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "username", "email", "alias", "password_hash",
	"pending_operation", "pending_email", "has_nsfw_allowed",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db      postgres.Querier
	timeout time.Duration
}

// New creates a new user repository. Every call is bounded by timeout.
func New(db postgres.Querier, timeout time.Duration) *Repo {
	return &Repo{db: db, timeout: timeout}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := r.getOne(ctx, squirrel.Eq{"id": id}, id.String())
	if err != nil {
		return nil, r.notFound(err, id.String())
	}
	return u, nil
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.getOne(ctx, squirrel.Expr("lower(email) = lower(?)", email), email)
	if err != nil {
		return nil, r.notFound(err, email)
	}
	return u, nil
}

// GetByUsername returns a user by username, compared case-insensitively.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := r.getOne(ctx, squirrel.Expr("lower(username) = lower(?)", username), username)
	if err != nil {
		return nil, r.notFound(err, username)
	}
	return u, nil
}

// GetByAlias returns a user by alias, compared case-insensitively.
func (r *Repo) GetByAlias(ctx context.Context, alias string) (*domain.User, error) {
	u, err := r.getOne(ctx, squirrel.Expr("lower(alias) = lower(?)", alias), alias)
	if err != nil {
		return nil, r.notFound(err, alias)
	}
	return u, nil
}

// ListStalePending returns users whose pending operation is one of kinds and
// has not changed since olderThan, oldest first.
func (r *Repo) ListStalePending(ctx context.Context, kinds []domain.PendingOperationKind, olderThan time.Time, limit int) ([]domain.User, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"pending_operation": names}).
		Where(squirrel.Lt{"updated_at": olderThan}).
		OrderBy("updated_at ASC", "id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stale pending query: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", "stale")
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted row.
// A taken username, email or alias returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			u.ID, u.Username, u.Email, u.Alias, u.PasswordHash,
			u.PendingOperation.Kind().String(), u.PendingOperation.PendingEmail(), u.HasNsfwAllowed,
			u.CreatedAt, u.UpdatedAt,
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	return r.scanOne(ctx, query, args, u.ID)
}

// Delete removes a user. Only sign-up compensation deletes users.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return &domain.UserNotFoundError{Identifier: id.String()}
	}
	return nil
}

// UpdateAlias sets or clears the alias.
func (r *Repo) UpdateAlias(ctx context.Context, id uuid.UUID, alias *string) (*domain.User, error) {
	return r.update(ctx, id, postgres.Builder.Update(table).Set("alias", alias))
}

// UpdatePasswordHash replaces the stored password hash.
func (r *Repo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) (*domain.User, error) {
	return r.update(ctx, id, postgres.Builder.Update(table).Set("password_hash", hash))
}

// TransitionPendingOperation moves the user from the `from` kind to `to` with a
// single conditional update. If the user is no longer in `from` (or does not
// exist) nothing changes and domain.ErrConflict is returned.
func (r *Repo) TransitionPendingOperation(
	ctx context.Context,
	id uuid.UUID,
	from domain.PendingOperationKind,
	to domain.PendingOperation,
) (*domain.User, error) {
	return r.transition(ctx, id, from, to)
}

// CompletePasswordReset stores the new hash and clears FORGOT_PASSWORD in one statement.
func (r *Repo) CompletePasswordReset(ctx context.Context, id uuid.UUID, hash string) (*domain.User, error) {
	return r.transition(ctx, id, domain.PendingForgotPassword, domain.NoPendingOperation(),
		func(b squirrel.UpdateBuilder) squirrel.UpdateBuilder { return b.Set("password_hash", hash) })
}

// CompleteEmailChange applies the pending address and clears CHANGE_EMAIL in one statement.
// A concurrently taken address returns domain.ErrAlreadyExists.
func (r *Repo) CompleteEmailChange(ctx context.Context, id uuid.UUID, email string) (*domain.User, error) {
	return r.transition(ctx, id, domain.PendingChangeEmail, domain.NoPendingOperation(),
		func(b squirrel.UpdateBuilder) squirrel.UpdateBuilder { return b.Set("email", email) })
}

func (r *Repo) transition(
	ctx context.Context,
	id uuid.UUID,
	from domain.PendingOperationKind,
	to domain.PendingOperation,
	extra ...func(squirrel.UpdateBuilder) squirrel.UpdateBuilder,
) (*domain.User, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	b := postgres.Builder.Update(table).
		Set("pending_operation", to.Kind().String()).
		Set("pending_email", to.PendingEmail())
	for _, set := range extra {
		b = set(b)
	}

	query, args, err := b.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "pending_operation": from.String()}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transition: %w", err)
	}

	u, err := r.scanOne(ctx, query, args, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("user %s: transition %s -> %s: %w", id, from, to.Kind(), domain.ErrConflict)
	}
	return u, err
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (r *Repo) update(ctx context.Context, id uuid.UUID, b squirrel.UpdateBuilder) (*domain.User, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := b.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	u, err := r.scanOne(ctx, query, args, id)
	if err != nil {
		return nil, r.notFound(err, id.String())
	}
	return u, nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key string) (*domain.User, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.Select(columns...).From(table).Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}
	return r.scanOne(ctx, query, args, key)
}

func (r *Repo) scanOne(ctx context.Context, query string, args []any, key any) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// notFound replaces the generic not-found kind with UserNotFoundError.
func (r *Repo) notFound(err error, identifier string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.UserNotFoundError{Identifier: identifier}
	}
	return err
}

type userRow struct {
	ID               uuid.UUID `db:"id"`
	Username         string    `db:"username"`
	Email            string    `db:"email"`
	Alias            *string   `db:"alias"`
	PasswordHash     string    `db:"password_hash"`
	PendingOperation string    `db:"pending_operation"`
	PendingEmail     *string   `db:"pending_email"`
	HasNsfwAllowed   bool      `db:"has_nsfw_allowed"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (row userRow) toDomain() (domain.User, error) {
	op, err := domain.RestorePendingOperation(domain.PendingOperationKind(row.PendingOperation), row.PendingEmail)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %s: %w", row.ID, err)
	}

	return domain.User{
		ID:               row.ID,
		Username:         row.Username,
		Email:            row.Email,
		Alias:            row.Alias,
		PasswordHash:     row.PasswordHash,
		PendingOperation: op,
		HasNsfwAllowed:   row.HasNsfwAllowed,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}
