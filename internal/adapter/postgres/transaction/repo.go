// Package transaction implements the wallet Transaction repository using PostgreSQL.
package transaction

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

const table = "transactions"

var columns = []string{"id", "wallet_id", "transaction_type", "amount", "created_at"}

// Repo provides transaction persistence backed by PostgreSQL.
type Repo struct {
	db      postgres.Querier
	timeout time.Duration
}

// New creates a new transaction repository.
func New(db postgres.Querier, timeout time.Duration) *Repo {
	return &Repo{db: db, timeout: timeout}
}

// Create inserts an immutable ledger entry.
func (r *Repo) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(tx.ID, tx.WalletID, tx.TransactionType.String(), tx.Amount, tx.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert transaction: %w", err)
	}
	return r.scanOne(ctx, query, args, tx.ID)
}

// GetByID returns a transaction.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select transaction: %w", err)
	}
	return r.scanOne(ctx, query, args, id)
}

// Delete removes a transaction. Only rollbacks delete ledger entries.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	query, args, err := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete transaction: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "transaction", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListByWallet returns one keyset page of a wallet's transactions, oldest first.
func (r *Repo) ListByWallet(ctx context.Context, walletID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Transaction], error) {
	ctx, cancel := postgres.Bound(ctx, r.timeout)
	defer cancel()

	b, err := postgres.Keyset(
		postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"wallet_id": walletID}),
		req,
	)
	if err != nil {
		return domain.Page[domain.Transaction]{}, err
	}

	query, args, err := b.ToSql()
	if err != nil {
		return domain.Page[domain.Transaction]{}, fmt.Errorf("build list transactions: %w", err)
	}

	var rows []transactionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return domain.Page[domain.Transaction]{}, postgres.MapError(err, "wallet transactions", walletID)
	}

	items := make([]domain.Transaction, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return postgres.BuildPage(items, req, func(t domain.Transaction) domain.Cursor {
		return domain.Cursor{CreatedAt: t.CreatedAt, ID: t.ID}
	}), nil
}

func (r *Repo) scanOne(ctx context.Context, query string, args []any, id uuid.UUID) (*domain.Transaction, error) {
	var row transactionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}
	tx := row.toDomain()
	return &tx, nil
}

type transactionRow struct {
	ID              uuid.UUID `db:"id"`
	WalletID        uuid.UUID `db:"wallet_id"`
	TransactionType string    `db:"transaction_type"`
	Amount          int64     `db:"amount"`
	CreatedAt       time.Time `db:"created_at"`
}

func (row transactionRow) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:              row.ID,
		WalletID:        row.WalletID,
		TransactionType: domain.TransactionType(row.TransactionType),
		Amount:          row.Amount,
		CreatedAt:       row.CreatedAt,
	}
}
