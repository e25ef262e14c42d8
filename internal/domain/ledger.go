package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds a non-negative balance owned by a single user.
// Owner and type never change after creation.
type Wallet struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	WalletType WalletType
	Balance    int64
	TagID      uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CanSubtract reports whether amount can be taken from the balance without going negative.
func (w *Wallet) CanSubtract(amount int64) bool {
	return w.Balance-amount >= 0
}

// Transaction is an immutable ledger entry referencing a wallet.
type Transaction struct {
	ID              uuid.UUID
	WalletID        uuid.UUID
	TransactionType TransactionType
	Amount          int64
	CreatedAt       time.Time
}

// Activity is an append-only record of something a user did.
type Activity struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ActivityType ActivityType
	PostID       string
	CreatedAt    time.Time
}
