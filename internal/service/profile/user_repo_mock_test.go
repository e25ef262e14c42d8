package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc                    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc                 func(ctx context.Context, email string) (*domain.User, error)
	GetByUsernameFunc              func(ctx context.Context, username string) (*domain.User, error)
	GetByAliasFunc                 func(ctx context.Context, alias string) (*domain.User, error)
	CreateFunc                     func(ctx context.Context, u *domain.User) (*domain.User, error)
	DeleteFunc                     func(ctx context.Context, id uuid.UUID) error
	UpdateAliasFunc                func(ctx context.Context, id uuid.UUID, alias *string) (*domain.User, error)
	UpdatePasswordHashFunc         func(ctx context.Context, id uuid.UUID, hash string) (*domain.User, error)
	TransitionPendingOperationFunc func(ctx context.Context, id uuid.UUID, from domain.PendingOperationKind, to domain.PendingOperation) (*domain.User, error)
	CompletePasswordResetFunc      func(ctx context.Context, id uuid.UUID, hash string) (*domain.User, error)
	CompleteEmailChangeFunc        func(ctx context.Context, id uuid.UUID, email string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByEmail []struct {
			Email string
		}
		GetByUsername []struct {
			Username string
		}
		GetByAlias []struct {
			Alias string
		}
		Create []struct {
			User *domain.User
		}
		Delete []struct {
			ID uuid.UUID
		}
		UpdateAlias []struct {
			ID    uuid.UUID
			Alias *string
		}
		UpdatePasswordHash []struct {
			ID   uuid.UUID
			Hash string
		}
		TransitionPendingOperation []struct {
			ID   uuid.UUID
			From domain.PendingOperationKind
			To   domain.PendingOperation
		}
		CompletePasswordReset []struct {
			ID   uuid.UUID
			Hash string
		}
		CompleteEmailChange []struct {
			ID    uuid.UUID
			Email string
		}
	}
	lockGetByID                    sync.RWMutex
	lockGetByEmail                 sync.RWMutex
	lockGetByUsername              sync.RWMutex
	lockGetByAlias                 sync.RWMutex
	lockCreate                     sync.RWMutex
	lockDelete                     sync.RWMutex
	lockUpdateAlias                sync.RWMutex
	lockUpdatePasswordHash         sync.RWMutex
	lockTransitionPendingOperation sync.RWMutex
	lockCompletePasswordReset      sync.RWMutex
	lockCompleteEmailChange        sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Email string
	}{Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Username string
	}{Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct {
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByAlias(ctx context.Context, alias string) (*domain.User, error) {
	if mock.GetByAliasFunc == nil {
		panic("userRepoMock.GetByAliasFunc: method is nil but userRepo.GetByAlias was just called")
	}
	callInfo := struct {
		Alias string
	}{Alias: alias}
	mock.lockGetByAlias.Lock()
	mock.calls.GetByAlias = append(mock.calls.GetByAlias, callInfo)
	mock.lockGetByAlias.Unlock()
	return mock.GetByAliasFunc(ctx, alias)
}

func (mock *userRepoMock) GetByAliasCalls() []struct {
	Alias string
} {
	mock.lockGetByAlias.RLock()
	calls := mock.calls.GetByAlias
	mock.lockGetByAlias.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		User *domain.User
	}{User: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *userRepoMock) DeleteCalls() []struct {
	ID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateAlias(ctx context.Context, id uuid.UUID, alias *string) (*domain.User, error) {
	if mock.UpdateAliasFunc == nil {
		panic("userRepoMock.UpdateAliasFunc: method is nil but userRepo.UpdateAlias was just called")
	}
	callInfo := struct {
		ID    uuid.UUID
		Alias *string
	}{ID: id, Alias: alias}
	mock.lockUpdateAlias.Lock()
	mock.calls.UpdateAlias = append(mock.calls.UpdateAlias, callInfo)
	mock.lockUpdateAlias.Unlock()
	return mock.UpdateAliasFunc(ctx, id, alias)
}

func (mock *userRepoMock) UpdateAliasCalls() []struct {
	ID    uuid.UUID
	Alias *string
} {
	mock.lockUpdateAlias.RLock()
	calls := mock.calls.UpdateAlias
	mock.lockUpdateAlias.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) (*domain.User, error) {
	if mock.UpdatePasswordHashFunc == nil {
		panic("userRepoMock.UpdatePasswordHashFunc: method is nil but userRepo.UpdatePasswordHash was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		Hash string
	}{ID: id, Hash: hash}
	mock.lockUpdatePasswordHash.Lock()
	mock.calls.UpdatePasswordHash = append(mock.calls.UpdatePasswordHash, callInfo)
	mock.lockUpdatePasswordHash.Unlock()
	return mock.UpdatePasswordHashFunc(ctx, id, hash)
}

func (mock *userRepoMock) UpdatePasswordHashCalls() []struct {
	ID   uuid.UUID
	Hash string
} {
	mock.lockUpdatePasswordHash.RLock()
	calls := mock.calls.UpdatePasswordHash
	mock.lockUpdatePasswordHash.RUnlock()
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

func (mock *userRepoMock) CompletePasswordReset(ctx context.Context, id uuid.UUID, hash string) (*domain.User, error) {
	if mock.CompletePasswordResetFunc == nil {
		panic("userRepoMock.CompletePasswordResetFunc: method is nil but userRepo.CompletePasswordReset was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		Hash string
	}{ID: id, Hash: hash}
	mock.lockCompletePasswordReset.Lock()
	mock.calls.CompletePasswordReset = append(mock.calls.CompletePasswordReset, callInfo)
	mock.lockCompletePasswordReset.Unlock()
	return mock.CompletePasswordResetFunc(ctx, id, hash)
}

func (mock *userRepoMock) CompletePasswordResetCalls() []struct {
	ID   uuid.UUID
	Hash string
} {
	mock.lockCompletePasswordReset.RLock()
	calls := mock.calls.CompletePasswordReset
	mock.lockCompletePasswordReset.RUnlock()
	return calls
}

func (mock *userRepoMock) CompleteEmailChange(ctx context.Context, id uuid.UUID, email string) (*domain.User, error) {
	if mock.CompleteEmailChangeFunc == nil {
		panic("userRepoMock.CompleteEmailChangeFunc: method is nil but userRepo.CompleteEmailChange was just called")
	}
	callInfo := struct {
		ID    uuid.UUID
		Email string
	}{ID: id, Email: email}
	mock.lockCompleteEmailChange.Lock()
	mock.calls.CompleteEmailChange = append(mock.calls.CompleteEmailChange, callInfo)
	mock.lockCompleteEmailChange.Unlock()
	return mock.CompleteEmailChangeFunc(ctx, id, email)
}

func (mock *userRepoMock) CompleteEmailChangeCalls() []struct {
	ID    uuid.UUID
	Email string
} {
	mock.lockCompleteEmailChange.RLock()
	calls := mock.calls.CompleteEmailChange
	mock.lockCompleteEmailChange.RUnlock()
	return calls
}
