package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/service/profile"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	MeFunc                   func(ctx context.Context, callerID uuid.UUID) (*domain.User, error)
	RequestEmailChangeFunc   func(ctx context.Context, callerID uuid.UUID, input profile.RequestEmailChangeInput) error
	ChangeAliasFunc          func(ctx context.Context, callerID uuid.UUID, input profile.ChangeAliasInput) (*domain.User, error)
	UpdatePasswordFunc       func(ctx context.Context, callerID uuid.UUID, input profile.UpdatePasswordInput) (*domain.User, error)
	UserByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindUserByIdentifierFunc func(ctx context.Context, identifier string) (*domain.User, error)

	calls struct {
		Me []struct {
			CallerID uuid.UUID
		}
		RequestEmailChange []struct {
			CallerID uuid.UUID
			Input    profile.RequestEmailChangeInput
		}
		ChangeAlias []struct {
			CallerID uuid.UUID
			Input    profile.ChangeAliasInput
		}
		UpdatePassword []struct {
			CallerID uuid.UUID
			Input    profile.UpdatePasswordInput
		}
		UserByID []struct {
			ID uuid.UUID
		}
		FindUserByIdentifier []struct {
			Identifier string
		}
	}
	lockMe                   sync.RWMutex
	lockRequestEmailChange   sync.RWMutex
	lockChangeAlias          sync.RWMutex
	lockUpdatePassword       sync.RWMutex
	lockUserByID             sync.RWMutex
	lockFindUserByIdentifier sync.RWMutex
}

func (mock *profileServiceMock) Me(ctx context.Context, callerID uuid.UUID) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("profileServiceMock.MeFunc: method is nil but profileService.Me was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
	}{CallerID: callerID}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx, callerID)
}

func (mock *profileServiceMock) MeCalls() []struct {
	CallerID uuid.UUID
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *profileServiceMock) RequestEmailChange(ctx context.Context, callerID uuid.UUID, input profile.RequestEmailChangeInput) error {
	if mock.RequestEmailChangeFunc == nil {
		panic("profileServiceMock.RequestEmailChangeFunc: method is nil but profileService.RequestEmailChange was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		Input    profile.RequestEmailChangeInput
	}{CallerID: callerID, Input: input}
	mock.lockRequestEmailChange.Lock()
	mock.calls.RequestEmailChange = append(mock.calls.RequestEmailChange, callInfo)
	mock.lockRequestEmailChange.Unlock()
	return mock.RequestEmailChangeFunc(ctx, callerID, input)
}

func (mock *profileServiceMock) RequestEmailChangeCalls() []struct {
	CallerID uuid.UUID
	Input    profile.RequestEmailChangeInput
} {
	mock.lockRequestEmailChange.RLock()
	calls := mock.calls.RequestEmailChange
	mock.lockRequestEmailChange.RUnlock()
	return calls
}

func (mock *profileServiceMock) ChangeAlias(ctx context.Context, callerID uuid.UUID, input profile.ChangeAliasInput) (*domain.User, error) {
	if mock.ChangeAliasFunc == nil {
		panic("profileServiceMock.ChangeAliasFunc: method is nil but profileService.ChangeAlias was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		Input    profile.ChangeAliasInput
	}{CallerID: callerID, Input: input}
	mock.lockChangeAlias.Lock()
	mock.calls.ChangeAlias = append(mock.calls.ChangeAlias, callInfo)
	mock.lockChangeAlias.Unlock()
	return mock.ChangeAliasFunc(ctx, callerID, input)
}

func (mock *profileServiceMock) ChangeAliasCalls() []struct {
	CallerID uuid.UUID
	Input    profile.ChangeAliasInput
} {
	mock.lockChangeAlias.RLock()
	calls := mock.calls.ChangeAlias
	mock.lockChangeAlias.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdatePassword(ctx context.Context, callerID uuid.UUID, input profile.UpdatePasswordInput) (*domain.User, error) {
	if mock.UpdatePasswordFunc == nil {
		panic("profileServiceMock.UpdatePasswordFunc: method is nil but profileService.UpdatePassword was just called")
	}
	callInfo := struct {
		CallerID uuid.UUID
		Input    profile.UpdatePasswordInput
	}{CallerID: callerID, Input: input}
	mock.lockUpdatePassword.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lockUpdatePassword.Unlock()
	return mock.UpdatePasswordFunc(ctx, callerID, input)
}

func (mock *profileServiceMock) UpdatePasswordCalls() []struct {
	CallerID uuid.UUID
	Input    profile.UpdatePasswordInput
} {
	mock.lockUpdatePassword.RLock()
	calls := mock.calls.UpdatePassword
	mock.lockUpdatePassword.RUnlock()
	return calls
}

func (mock *profileServiceMock) UserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.UserByIDFunc == nil {
		panic("profileServiceMock.UserByIDFunc: method is nil but profileService.UserByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockUserByID.Lock()
	mock.calls.UserByID = append(mock.calls.UserByID, callInfo)
	mock.lockUserByID.Unlock()
	return mock.UserByIDFunc(ctx, id)
}

func (mock *profileServiceMock) UserByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockUserByID.RLock()
	calls := mock.calls.UserByID
	mock.lockUserByID.RUnlock()
	return calls
}

func (mock *profileServiceMock) FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if mock.FindUserByIdentifierFunc == nil {
		panic("profileServiceMock.FindUserByIdentifierFunc: method is nil but profileService.FindUserByIdentifier was just called")
	}
	callInfo := struct {
		Identifier string
	}{Identifier: identifier}
	mock.lockFindUserByIdentifier.Lock()
	mock.calls.FindUserByIdentifier = append(mock.calls.FindUserByIdentifier, callInfo)
	mock.lockFindUserByIdentifier.Unlock()
	return mock.FindUserByIdentifierFunc(ctx, identifier)
}

func (mock *profileServiceMock) FindUserByIdentifierCalls() []struct {
	Identifier string
} {
	mock.lockFindUserByIdentifier.RLock()
	calls := mock.calls.FindUserByIdentifier
	mock.lockFindUserByIdentifier.RUnlock()
	return calls
}
