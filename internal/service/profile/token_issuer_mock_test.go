package profile

import (
	"sync"

	"github.com/google/uuid"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, username string) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID   uuid.UUID
			Username string
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateAccessToken(userID uuid.UUID, username string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenIssuerMock.GenerateAccessTokenFunc: method is nil but tokenIssuer.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		Username string
	}{UserID: userID, Username: username}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, username)
}

func (mock *tokenIssuerMock) GenerateAccessTokenCalls() []struct {
	UserID   uuid.UUID
	Username string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}
