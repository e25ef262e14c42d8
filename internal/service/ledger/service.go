// Package ledger implements the wallet, transaction and activity mutations
// issued through the multi-write-proxy (MWP), each paired with a rollback,
// plus the owner-only reads.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/account-service/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type walletRepo interface {
	Create(ctx context.Context, w *domain.Wallet) (*domain.Wallet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	SetBalance(ctx context.Context, id uuid.UUID, balance int64) (*domain.Wallet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type transactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByWallet(ctx context.Context, walletID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Transaction], error)
}

type activityRepo interface {
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Activity], error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the ledger business logic.
type Service struct {
	log          *slog.Logger
	wallets      walletRepo
	transactions transactionRepo
	activities   activityRepo
	tx           txManager
	tracer       trace.Tracer
}

// NewService creates a new ledger service instance.
func NewService(
	logger *slog.Logger,
	wallets walletRepo,
	transactions transactionRepo,
	activities activityRepo,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "ledger"),
		wallets:      wallets,
		transactions: transactions,
		activities:   activities,
		tx:           tx,
		tracer:       otel.Tracer("github.com/heartmarshall/account-service/internal/service/ledger"),
	}
}

// startSpan opens a span for one ledger operation.
func (s *Service) startSpan(ctx context.Context, op string, callerID uuid.UUID) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "ledger."+op, trace.WithAttributes(
		attribute.String("ledger.operation", op),
		attribute.String("user.id", callerID.String()),
	))
}

// endSpan records err on span, ends it and returns err wrapped with the operation name.
func endSpan(span trace.Span, op string, err error) error {
	defer span.End()
	if err == nil {
		return nil
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return wrap(op, err)
}

// ownWallet returns OwnershipError unless callerID owns w.
func ownWallet(w *domain.Wallet, callerID uuid.UUID) error {
	if w.UserID != callerID {
		return &domain.OwnershipError{Resource: "wallet", ID: w.ID}
	}
	return nil
}

func wrap(op string, err error) error {
	return fmt.Errorf("ledger.%s: %w", op, err)
}
