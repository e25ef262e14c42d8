package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
)

// CreateWallet creates an empty wallet for the caller.
// A duplicate (tagId, walletType) returns domain.ErrAlreadyExists.
func (s *Service) CreateWallet(ctx context.Context, callerID uuid.UUID, input CreateWalletInput) (*domain.Wallet, error) {
	ctx, span := s.startSpan(ctx, "CreateWallet", callerID)

	if err := input.Validate(); err != nil {
		return nil, endSpan(span, "CreateWallet", err)
	}

	now := time.Now().UTC()
	w, err := s.wallets.Create(ctx, &domain.Wallet{
		ID:         uuid.New(),
		UserID:     callerID,
		WalletType: input.WalletType,
		TagID:      input.TagID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, endSpan(span, "CreateWallet", err)
	}

	s.log.InfoContext(ctx, "wallet created",
		slog.String("wallet_id", w.ID.String()),
		slog.String("wallet_type", w.WalletType.String()))

	return w, endSpan(span, "CreateWallet", nil)
}

// CreateWalletRollback deletes a wallet the caller owns.
func (s *Service) CreateWalletRollback(ctx context.Context, callerID, walletID uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "CreateWalletRollback", callerID)

	if err := requireID("walletId", walletID); err != nil {
		return endSpan(span, "CreateWalletRollback", err)
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		w, err := s.wallets.GetForUpdate(txCtx, walletID)
		if err != nil {
			return err
		}
		if err := ownWallet(w, callerID); err != nil {
			return err
		}
		return s.wallets.Delete(txCtx, walletID)
	})
	if err != nil {
		return endSpan(span, "CreateWalletRollback", err)
	}

	s.log.InfoContext(ctx, "wallet creation rolled back",
		slog.String("wallet_id", walletID.String()))

	return endSpan(span, "CreateWalletRollback", nil)
}

// WalletByID returns a wallet the caller owns.
func (s *Service) WalletByID(ctx context.Context, callerID, walletID uuid.UUID) (*domain.Wallet, error) {
	w, err := s.wallets.GetByID(ctx, walletID)
	if err != nil {
		return nil, wrap("WalletByID", err)
	}
	if err := ownWallet(w, callerID); err != nil {
		return nil, wrap("WalletByID", err)
	}
	return w, nil
}

// ListWalletTransactions returns one page of the transactions of a wallet the caller owns.
func (s *Service) ListWalletTransactions(ctx context.Context, callerID, walletID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Transaction], error) {
	if _, err := s.WalletByID(ctx, callerID, walletID); err != nil {
		return domain.Page[domain.Transaction]{}, err
	}

	page, err := s.transactions.ListByWallet(ctx, walletID, req)
	if err != nil {
		return domain.Page[domain.Transaction]{}, wrap("ListWalletTransactions", err)
	}
	return page, nil
}
