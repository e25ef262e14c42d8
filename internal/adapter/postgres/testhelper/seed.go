package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/account-service/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with no pending operation and returns it.
// The password hash is a placeholder; tests that sign in hash their own.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWith(t, pool, domain.NoPendingOperation())
}

// SeedUserWith inserts a user in the given pending operation.
func SeedUserWith(t *testing.T, pool *pgxpool.Pool, op domain.PendingOperation) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:               uuid.New(),
		Username:         "user" + suffix,
		Email:            "testuser-" + suffix + "@example.com",
		PasswordHash:     "$2a$04$placeholderplaceholderplaceholderplaceholderplacehold",
		PendingOperation: op,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, pending_operation, pending_email, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Username, user.Email, user.PasswordHash,
		op.Kind().String(), op.PendingEmail(), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedWallet inserts a wallet owned by userID with the given balance.
func SeedWallet(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, walletType domain.WalletType, balance int64) domain.Wallet {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	w := domain.Wallet{
		ID:         uuid.New(),
		UserID:     userID,
		WalletType: walletType,
		Balance:    balance,
		TagID:      uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO wallets (id, user_id, wallet_type, balance, tag_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		w.ID, w.UserID, w.WalletType.String(), w.Balance, w.TagID, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWallet insert: %v", err)
	}

	return w
}
