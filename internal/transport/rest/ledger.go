package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/mwp"
	"github.com/heartmarshall/account-service/internal/service/ledger"
	"github.com/heartmarshall/account-service/internal/transport/pipeline"
	"github.com/heartmarshall/account-service/internal/transport/respond"
)

// ledgerService defines the wallet reads and the MWP forward/rollback pairs.
type ledgerService interface {
	WalletByID(ctx context.Context, callerID, walletID uuid.UUID) (*domain.Wallet, error)
	ListWalletTransactions(ctx context.Context, callerID, walletID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Transaction], error)

	CreateWallet(ctx context.Context, callerID uuid.UUID, input ledger.CreateWalletInput) (*domain.Wallet, error)
	CreateWalletRollback(ctx context.Context, callerID, walletID uuid.UUID) error
	CreateBoostTransaction(ctx context.Context, callerID uuid.UUID, input ledger.AmountInput) (*domain.Transaction, error)
	CreateBoostTransactionRollback(ctx context.Context, callerID, transactionID uuid.UUID) error
	AddBalance(ctx context.Context, callerID uuid.UUID, input ledger.AmountInput) (*domain.Transaction, error)
	AddBalanceRollback(ctx context.Context, callerID, transactionID uuid.UUID) error
	AddActivity(ctx context.Context, callerID uuid.UUID, input ledger.AddActivityInput) (*domain.Activity, error)
	AddActivityRollback(ctx context.Context, callerID, activityID uuid.UUID) error
}

// LedgerHandler serves wallet reads and the signed MWP mutations.
type LedgerHandler struct {
	svc       ledgerService
	signer    *mwp.Signer
	validator *pipeline.Validator
	log       *slog.Logger
}

// NewLedgerHandler creates a LedgerHandler.
func NewLedgerHandler(svc ledgerService, signer *mwp.Signer, validator *pipeline.Validator, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{svc: svc, signer: signer, validator: validator, log: logger.With("handler", "ledger")}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Wallet handles GET /v1/wallets/{id}.
func (h *LedgerHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	var wallet *domain.Wallet
	ok := run(w, r, h.log, pipeline.NewCall("wallet_by_id", r),
		pipeline.Authenticate(),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			id, err := parseUUID("id", chi.URLParam(r, "id"))
			if err != nil {
				return err
			}
			wallet, err = h.svc.WalletByID(ctx, call.CallerID, id)
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusOK, toWallet(wallet))
	}
}

// Transactions handles GET /v1/wallets/{id}/transactions.
func (h *LedgerHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	var page domain.Page[domain.Transaction]
	ok := run(w, r, h.log, pipeline.NewCall("list_wallet_transactions", r),
		pipeline.Authenticate(),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			id, err := parseUUID("id", chi.URLParam(r, "id"))
			if err != nil {
				return err
			}
			req, err := parsePage(r)
			if err != nil {
				return err
			}
			page, err = h.svc.ListWalletTransactions(ctx, call.CallerID, id, req)
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusOK, toPage(page, toTransaction))
	}
}

// ---------------------------------------------------------------------------
// MWP forwards
// ---------------------------------------------------------------------------

// CreateWallet handles POST /v1/mwp/wallets.
func (h *LedgerHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var (
		req    createWalletRequest
		wallet *domain.Wallet
	)
	ok := run(w, r, h.log, pipeline.NewMWPCall("create_wallet", r),
		pipeline.Authenticate(),
		pipeline.AuthorizeDigest(h.signer),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			tagID, err := parseUUID("tagId", req.TagID)
			if err != nil {
				return err
			}
			wallet, err = h.svc.CreateWallet(ctx, call.CallerID, ledger.CreateWalletInput{
				TagID:      tagID,
				WalletType: domain.WalletType(req.WalletType),
			})
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusCreated, toWallet(wallet))
	}
}

// CreateBoostTransaction handles POST /v1/mwp/transactions/boost.
func (h *LedgerHandler) CreateBoostTransaction(w http.ResponseWriter, r *http.Request) {
	h.amount(w, r, "create_boost_transaction", h.svc.CreateBoostTransaction)
}

// AddBalance handles POST /v1/mwp/balance.
func (h *LedgerHandler) AddBalance(w http.ResponseWriter, r *http.Request) {
	h.amount(w, r, "add_balance", h.svc.AddBalance)
}

func (h *LedgerHandler) amount(w http.ResponseWriter, r *http.Request, op string,
	fn func(context.Context, uuid.UUID, ledger.AmountInput) (*domain.Transaction, error),
) {
	var (
		req amountRequest
		tx  *domain.Transaction
	)
	ok := run(w, r, h.log, pipeline.NewMWPCall(op, r),
		pipeline.Authenticate(),
		pipeline.AuthorizeDigest(h.signer),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			walletID, err := parseUUID("walletId", req.WalletID)
			if err != nil {
				return err
			}
			tx, err = fn(ctx, call.CallerID, ledger.AmountInput{WalletID: walletID, Amount: req.Amount})
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusCreated, toTransaction(tx))
	}
}

// AddActivity handles POST /v1/mwp/activities.
func (h *LedgerHandler) AddActivity(w http.ResponseWriter, r *http.Request) {
	var (
		req      addActivityRequest
		activity *domain.Activity
	)
	ok := run(w, r, h.log, pipeline.NewMWPCall("add_activity", r),
		pipeline.Authenticate(),
		pipeline.AuthorizeDigest(h.signer),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			var err error
			activity, err = h.svc.AddActivity(ctx, call.CallerID, ledger.AddActivityInput{
				ActivityType: domain.ActivityType(req.ActivityType),
				PostID:       req.PostID,
			})
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusCreated, toActivity(activity))
	}
}

// ---------------------------------------------------------------------------
// MWP rollbacks
// ---------------------------------------------------------------------------

// CreateWalletRollback handles POST /v1/mwp/wallets/rollback.
func (h *LedgerHandler) CreateWalletRollback(w http.ResponseWriter, r *http.Request) {
	h.rollback(w, r, "create_wallet_rollback", "walletId", h.svc.CreateWalletRollback)
}

// CreateBoostTransactionRollback handles POST /v1/mwp/transactions/boost/rollback.
func (h *LedgerHandler) CreateBoostTransactionRollback(w http.ResponseWriter, r *http.Request) {
	h.rollback(w, r, "create_boost_transaction_rollback", "transactionId", h.svc.CreateBoostTransactionRollback)
}

// AddBalanceRollback handles POST /v1/mwp/balance/rollback.
func (h *LedgerHandler) AddBalanceRollback(w http.ResponseWriter, r *http.Request) {
	h.rollback(w, r, "add_balance_rollback", "transactionId", h.svc.AddBalanceRollback)
}

// AddActivityRollback handles POST /v1/mwp/activities/rollback.
func (h *LedgerHandler) AddActivityRollback(w http.ResponseWriter, r *http.Request) {
	h.rollback(w, r, "add_activity_rollback", "activityId", h.svc.AddActivityRollback)
}

// rollback runs a rollback whose payload is the id returned by the matching forward call.
func (h *LedgerHandler) rollback(w http.ResponseWriter, r *http.Request, op, field string,
	fn func(context.Context, uuid.UUID, uuid.UUID) error,
) {
	var id uuid.UUID
	ok := run(w, r, h.log, pipeline.NewMWPCall(op, r),
		pipeline.Authenticate(),
		pipeline.AuthorizeDigest(h.signer),
		pipeline.ValidateID(field, &id),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			return fn(ctx, call.CallerID, id)
		}),
	)
	if ok {
		w.WriteHeader(http.StatusNoContent)
	}
}
