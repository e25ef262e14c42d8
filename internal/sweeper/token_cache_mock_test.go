package sweeper

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ tokenCache = &tokenCacheMock{}

type tokenCacheMock struct {
	SweepOrphansFunc func(ctx context.Context, batch int) (int, error)
	UserTokenFunc    func(ctx context.Context, userID uuid.UUID) (token, payload string, err error)

	calls struct {
		SweepOrphans []struct {
			Batch int
		}
		UserToken []struct {
			UserID uuid.UUID
		}
	}
	lockSweepOrphans sync.RWMutex
	lockUserToken    sync.RWMutex
}

func (mock *tokenCacheMock) SweepOrphans(ctx context.Context, batch int) (int, error) {
	if mock.SweepOrphansFunc == nil {
		panic("tokenCacheMock.SweepOrphansFunc: method is nil but tokenCache.SweepOrphans was just called")
	}
	callInfo := struct {
		Batch int
	}{Batch: batch}
	mock.lockSweepOrphans.Lock()
	mock.calls.SweepOrphans = append(mock.calls.SweepOrphans, callInfo)
	mock.lockSweepOrphans.Unlock()
	return mock.SweepOrphansFunc(ctx, batch)
}

func (mock *tokenCacheMock) SweepOrphansCalls() []struct {
	Batch int
} {
	mock.lockSweepOrphans.RLock()
	calls := mock.calls.SweepOrphans
	mock.lockSweepOrphans.RUnlock()
	return calls
}

func (mock *tokenCacheMock) UserToken(ctx context.Context, userID uuid.UUID) (token, payload string, err error) {
	if mock.UserTokenFunc == nil {
		panic("tokenCacheMock.UserTokenFunc: method is nil but tokenCache.UserToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockUserToken.Lock()
	mock.calls.UserToken = append(mock.calls.UserToken, callInfo)
	mock.lockUserToken.Unlock()
	return mock.UserTokenFunc(ctx, userID)
}

func (mock *tokenCacheMock) UserTokenCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockUserToken.RLock()
	calls := mock.calls.UserToken
	mock.lockUserToken.RUnlock()
	return calls
}
