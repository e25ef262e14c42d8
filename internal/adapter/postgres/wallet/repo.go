// Package wallet implements the Wallet repository using PostgreSQL.
package wallet

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

const table = "wallets"

var columns = []string{"id", "user_id", "wallet_type", "balance", "tag_id", "created_at", "updated_at"}

var returning = "RETURNING " + strings.Join(columns, ", ")

// ErrNotInTx is returned by GetForUpdate when called outside RunInTx.
var ErrNotInTx = errors.New("wallet: row lock requires a transaction")

// Repo provides wallet persistence backed by PostgreSQL.
type Repo struct {
	db      postgres.Querier
	timeout time.Duration
}

// New creates a new wallet repository.
func New(db postgres.Querier, timeout time.Duration) *Repo {
	return &Repo{db: db, timeout: timeout}
}

// Create inserts a wallet. A duplicate (tag_id, wallet_type) returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, w *domain.Wallet) (*domain.Wallet, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(w.ID, w.UserID, w.WalletType.String(), w.Balance, w.TagID, w.CreatedAt, w.UpdatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert wallet: %w", err)
	}
	return r.scanOne(ctx, query, args, w.ID)
}

// GetByID returns a wallet without locking it.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select wallet: %w", err)
	}
	return r.scanOne(ctx, query, args, id)
}

// GetForUpdate returns a wallet and holds its row lock until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	if !postgres.InTx(ctx) {
		return nil, ErrNotInTx
	}

	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lock wallet: %w", err)
	}
	return r.scanOne(ctx, query, args, id)
}

// SetBalance writes an absolute balance. A negative value violates the
// balance CHECK constraint and returns domain.ErrValidation.
func (r *Repo) SetBalance(ctx context.Context, id uuid.UUID, balance int64) (*domain.Wallet, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.
		Update(table).
		Set("balance", balance).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set balance: %w", err)
	}
	return r.scanOne(ctx, query, args, id)
}

// Delete removes a wallet and, by cascade, its transactions.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete wallet: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "wallet", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) scanOne(ctx context.Context, query string, args []any, id uuid.UUID) (*domain.Wallet, error) {
	var row walletRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "wallet", id)
	}
	w := row.toDomain()
	return &w, nil
}

type walletRow struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	WalletType string    `db:"wallet_type"`
	Balance    int64     `db:"balance"`
	TagID      uuid.UUID `db:"tag_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row walletRow) toDomain() domain.Wallet {
	return domain.Wallet{
		ID:         row.ID,
		UserID:     row.UserID,
		WalletType: domain.WalletType(row.WalletType),
		Balance:    row.Balance,
		TagID:      row.TagID,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
