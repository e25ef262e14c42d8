package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListStalePendingFunc           func(ctx context.Context, kinds []domain.PendingOperationKind, olderThan time.Time, limit int) ([]domain.User, error)
	TransitionPendingOperationFunc func(ctx context.Context, id uuid.UUID, from domain.PendingOperationKind, to domain.PendingOperation) (*domain.User, error)

	calls struct {
		ListStalePending []struct {
			Kinds     []domain.PendingOperationKind
			OlderThan time.Time
			Limit     int
		}
		TransitionPendingOperation []struct {
			ID   uuid.UUID
			From domain.PendingOperationKind
			To   domain.PendingOperation
		}
	}
	lockListStalePending           sync.RWMutex
	lockTransitionPendingOperation sync.RWMutex
}

func (mock *userRepoMock) ListStalePending(ctx context.Context, kinds []domain.PendingOperationKind, olderThan time.Time, limit int) ([]domain.User, error) {
	if mock.ListStalePendingFunc == nil {
		panic("userRepoMock.ListStalePendingFunc: method is nil but userRepo.ListStalePending was just called")
	}
	callInfo := struct {
		Kinds     []domain.PendingOperationKind
		OlderThan time.Time
		Limit     int
	}{Kinds: kinds, OlderThan: olderThan, Limit: limit}
	mock.lockListStalePending.Lock()
	mock.calls.ListStalePending = append(mock.calls.ListStalePending, callInfo)
	mock.lockListStalePending.Unlock()
	return mock.ListStalePendingFunc(ctx, kinds, olderThan, limit)
}

func (mock *userRepoMock) ListStalePendingCalls() []struct {
	Kinds     []domain.PendingOperationKind
	OlderThan time.Time
	Limit     int
} {
	mock.lockListStalePending.RLock()
	calls := mock.calls.ListStalePending
	mock.lockListStalePending.RUnlock()
	return calls
}

func (mock *userRepoMock) TransitionPendingOperation(ctx context.Context, id uuid.UUID, from domain.PendingOperationKind, to domain.PendingOperation) (*domain.User, error) {
	if mock.TransitionPendingOperationFunc == nil {
		panic("userRepoMock.TransitionPendingOperationFunc: method is nil but userRepo.TransitionPendingOperation was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		From domain.PendingOperationKind
		To   domain.PendingOperation
	}{ID: id, From: from, To: to}
	mock.lockTransitionPendingOperation.Lock()
	mock.calls.TransitionPendingOperation = append(mock.calls.TransitionPendingOperation, callInfo)
	mock.lockTransitionPendingOperation.Unlock()
	return mock.TransitionPendingOperationFunc(ctx, id, from, to)
}

func (mock *userRepoMock) TransitionPendingOperationCalls() []struct {
	ID   uuid.UUID
	From domain.PendingOperationKind
	To   domain.PendingOperation
} {
	mock.lockTransitionPendingOperation.RLock()
	calls := mock.calls.TransitionPendingOperation
	mock.lockTransitionPendingOperation.RUnlock()
	return calls
}
