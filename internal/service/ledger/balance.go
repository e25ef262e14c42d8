package ledger

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
)

// CreateBoostTransaction records a CHALLENGE_BOOST against a wallet the
// caller owns. The balance is not moved.
func (s *Service) CreateBoostTransaction(ctx context.Context, callerID uuid.UUID, input AmountInput) (*domain.Transaction, error) {
	ctx, span := s.startSpan(ctx, "CreateBoostTransaction", callerID)

	if err := input.Validate(); err != nil {
		return nil, endSpan(span, "CreateBoostTransaction", err)
	}

	w, err := s.wallets.GetByID(ctx, input.WalletID)
	if err != nil {
		return nil, endSpan(span, "CreateBoostTransaction", err)
	}
	if err := ownWallet(w, callerID); err != nil {
		return nil, endSpan(span, "CreateBoostTransaction", err)
	}

	created, err := s.transactions.Create(ctx, &domain.Transaction{
		ID:              uuid.New(),
		WalletID:        w.ID,
		TransactionType: domain.TransactionTypeChallengeBoost,
		Amount:          input.Amount,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return nil, endSpan(span, "CreateBoostTransaction", err)
	}

	s.log.InfoContext(ctx, "boost transaction created",
		slog.String("wallet_id", w.ID.String()),
		slog.String("transaction_id", created.ID.String()))

	return created, endSpan(span, "CreateBoostTransaction", nil)
}

// CreateBoostTransactionRollback deletes a boost transaction on a wallet the caller owns.
func (s *Service) CreateBoostTransactionRollback(ctx context.Context, callerID, transactionID uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "CreateBoostTransactionRollback", callerID)

	if err := requireID("transactionId", transactionID); err != nil {
		return endSpan(span, "CreateBoostTransactionRollback", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.transactions.GetByID(txCtx, transactionID)
		if err != nil {
			return err
		}
		if t.TransactionType != domain.TransactionTypeChallengeBoost {
			return domain.NewValidationError("transactionId", "not a boost transaction")
		}

		w, err := s.wallets.GetByID(txCtx, t.WalletID)
		if err != nil {
			return err
		}
		if err := ownWallet(w, callerID); err != nil {
			return err
		}
		return s.transactions.Delete(txCtx, t.ID)
	})
	if err != nil {
		return endSpan(span, "CreateBoostTransactionRollback", err)
	}

	s.log.InfoContext(ctx, "boost transaction rolled back",
		slog.String("transaction_id", transactionID.String()))

	return endSpan(span, "CreateBoostTransactionRollback", nil)
}

// AddBalance credits a wallet the caller owns and records the matching
// reward transaction. Both writes commit together.
func (s *Service) AddBalance(ctx context.Context, callerID uuid.UUID, input AmountInput) (*domain.Transaction, error) {
	ctx, span := s.startSpan(ctx, "AddBalance", callerID)

	if err := input.Validate(); err != nil {
		return nil, endSpan(span, "AddBalance", err)
	}

	var created *domain.Transaction
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Step 1: Lock wallet and check ownership
		w, err := s.wallets.GetForUpdate(txCtx, input.WalletID)
		if err != nil {
			return err
		}
		if err := ownWallet(w, callerID); err != nil {
			return err
		}
		if w.Balance > math.MaxInt64-input.Amount {
			return domain.NewValidationError("amount", "balance would overflow")
		}

		// Step 2: Record the reward
		created, err = s.transactions.Create(txCtx, &domain.Transaction{
			ID:              uuid.New(),
			WalletID:        w.ID,
			TransactionType: w.WalletType.RewardTransactionType(),
			Amount:          input.Amount,
			CreatedAt:       time.Now().UTC(),
		})
		if err != nil {
			return err
		}

		// Step 3: Move the balance
		_, err = s.wallets.SetBalance(txCtx, w.ID, w.Balance+input.Amount)
		return err
	})
	if err != nil {
		return nil, endSpan(span, "AddBalance", err)
	}

	s.log.InfoContext(ctx, "balance added",
		slog.String("wallet_id", input.WalletID.String()),
		slog.String("transaction_id", created.ID.String()),
		slog.Int64("amount", input.Amount))

	return created, endSpan(span, "AddBalance", nil)
}

// AddBalanceRollback reverses an AddBalance. It fails with
// NegativeWalletBalanceError, without changing anything, if the wallet no
// longer holds the credited amount. If the transaction delete fails the
// balance write is rolled back with it.
func (s *Service) AddBalanceRollback(ctx context.Context, callerID, transactionID uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "AddBalanceRollback", callerID)

	if err := requireID("transactionId", transactionID); err != nil {
		return endSpan(span, "AddBalanceRollback", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Step 1: Load the transaction
		t, err := s.transactions.GetByID(txCtx, transactionID)
		if err != nil {
			return err
		}
		if !t.TransactionType.MovesBalance() {
			return domain.NewValidationError("transactionId", "not a balance transaction")
		}

		// Step 2: Lock wallet and check ownership
		w, err := s.wallets.GetForUpdate(txCtx, t.WalletID)
		if err != nil {
			return err
		}
		if err := ownWallet(w, callerID); err != nil {
			return err
		}

		// Step 3: Balance must stay non-negative
		if !w.CanSubtract(t.Amount) {
			return &domain.NegativeWalletBalanceError{WalletID: w.ID, Balance: w.Balance, Amount: t.Amount}
		}

		// Step 4: Write the balance, then drop the entry
		if _, err := s.wallets.SetBalance(txCtx, w.ID, w.Balance-t.Amount); err != nil {
			return err
		}
		return s.transactions.Delete(txCtx, t.ID)
	})
	if err != nil {
		return endSpan(span, "AddBalanceRollback", err)
	}

	s.log.InfoContext(ctx, "balance rolled back",
		slog.String("transaction_id", transactionID.String()))

	return endSpan(span, "AddBalanceRollback", nil)
}
