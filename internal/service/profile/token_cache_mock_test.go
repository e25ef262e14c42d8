package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
)

var _ tokenCache = &tokenCacheMock{}

type tokenCacheMock struct {
	CreateUserTokenFunc  func(ctx context.Context, userID uuid.UUID, op domain.PendingOperationKind, payload string) (string, error)
	CleanupUserTokenFunc func(ctx context.Context, userID uuid.UUID, op domain.PendingOperationKind) error
	ResolveTokenFunc     func(ctx context.Context, token string, op domain.PendingOperationKind) (uuid.UUID, error)

	calls struct {
		CreateUserToken []struct {
			UserID  uuid.UUID
			Op      domain.PendingOperationKind
			Payload string
		}
		CleanupUserToken []struct {
			UserID uuid.UUID
			Op     domain.PendingOperationKind
		}
		ResolveToken []struct {
			Token string
			Op    domain.PendingOperationKind
		}
	}
	lockCreateUserToken  sync.RWMutex
	lockCleanupUserToken sync.RWMutex
	lockResolveToken     sync.RWMutex
}

func (mock *tokenCacheMock) CreateUserToken(ctx context.Context, userID uuid.UUID, op domain.PendingOperationKind, payload string) (string, error) {
	if mock.CreateUserTokenFunc == nil {
		panic("tokenCacheMock.CreateUserTokenFunc: method is nil but tokenCache.CreateUserToken was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		Op      domain.PendingOperationKind
		Payload string
	}{UserID: userID, Op: op, Payload: payload}
	mock.lockCreateUserToken.Lock()
	mock.calls.CreateUserToken = append(mock.calls.CreateUserToken, callInfo)
	mock.lockCreateUserToken.Unlock()
	return mock.CreateUserTokenFunc(ctx, userID, op, payload)
}

func (mock *tokenCacheMock) CreateUserTokenCalls() []struct {
	UserID  uuid.UUID
	Op      domain.PendingOperationKind
	Payload string
} {
	mock.lockCreateUserToken.RLock()
	calls := mock.calls.CreateUserToken
	mock.lockCreateUserToken.RUnlock()
	return calls
}

func (mock *tokenCacheMock) CleanupUserToken(ctx context.Context, userID uuid.UUID, op domain.PendingOperationKind) error {
	if mock.CleanupUserTokenFunc == nil {
		panic("tokenCacheMock.CleanupUserTokenFunc: method is nil but tokenCache.CleanupUserToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Op     domain.PendingOperationKind
	}{UserID: userID, Op: op}
	mock.lockCleanupUserToken.Lock()
	mock.calls.CleanupUserToken = append(mock.calls.CleanupUserToken, callInfo)
	mock.lockCleanupUserToken.Unlock()
	return mock.CleanupUserTokenFunc(ctx, userID, op)
}

func (mock *tokenCacheMock) CleanupUserTokenCalls() []struct {
	UserID uuid.UUID
	Op     domain.PendingOperationKind
} {
	mock.lockCleanupUserToken.RLock()
	calls := mock.calls.CleanupUserToken
	mock.lockCleanupUserToken.RUnlock()
	return calls
}

func (mock *tokenCacheMock) ResolveToken(ctx context.Context, token string, op domain.PendingOperationKind) (uuid.UUID, error) {
	if mock.ResolveTokenFunc == nil {
		panic("tokenCacheMock.ResolveTokenFunc: method is nil but tokenCache.ResolveToken was just called")
	}
	callInfo := struct {
		Token string
		Op    domain.PendingOperationKind
	}{Token: token, Op: op}
	mock.lockResolveToken.Lock()
	mock.calls.ResolveToken = append(mock.calls.ResolveToken, callInfo)
	mock.lockResolveToken.Unlock()
	return mock.ResolveTokenFunc(ctx, token, op)
}

func (mock *tokenCacheMock) ResolveTokenCalls() []struct {
	Token string
	Op    domain.PendingOperationKind
} {
	mock.lockResolveToken.RLock()
	calls := mock.calls.ResolveToken
	mock.lockResolveToken.RUnlock()
	return calls
}
