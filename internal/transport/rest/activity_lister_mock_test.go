package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
)

var _ activityLister = &activityListerMock{}

type activityListerMock struct {
	ListActivitiesFunc func(ctx context.Context, callerID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Activity], error)

	calls struct {
		ListActivities []struct {
			CallerID uuid.UUID
			Req      domain.PageRequest
		}
	}
	lockListActivities sync.RWMutex
}

func (mock *activityListerMock) ListActivities(ctx context.Context, callerID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Activity], error) {
	if mock.ListActivitiesFunc == nil {
		panic("activityListerMock.ListActivitiesFunc: method is nil but activityLister.ListActivities was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		Req      domain.PageRequest
	}{CallerID: callerID, Req: req}
	mock.lockListActivities.Lock()
	mock.calls.ListActivities = append(mock.calls.ListActivities, callInfo)
	mock.lockListActivities.Unlock()
	return mock.ListActivitiesFunc(ctx, callerID, req)
}

func (mock *activityListerMock) ListActivitiesCalls() []struct {
	CallerID uuid.UUID
	Req      domain.PageRequest
} {
	mock.lockListActivities.RLock()
	calls := mock.calls.ListActivities
	mock.lockListActivities.RUnlock()
	return calls
}
