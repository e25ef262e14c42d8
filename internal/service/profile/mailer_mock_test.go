package profile

import (
	"context"
	"sync"
)

var _ mailer = &mailerMock{}

type mailerMock struct {
	SendSignUpFunc          func(ctx context.Context, to string, token string) error
	SendPasswordResetFunc   func(ctx context.Context, to string, token string) error
	SendEmailChangeFunc     func(ctx context.Context, to string, token string) error
	SendUsernameChangedFunc func(ctx context.Context, to string, oldAlias *string, newAlias string) error

	calls struct {
		SendSignUp []struct {
			To    string
			Token string
		}
		SendPasswordReset []struct {
			To    string
			Token string
		}
		SendEmailChange []struct {
			To    string
			Token string
		}
		SendUsernameChanged []struct {
			To       string
			OldAlias *string
			NewAlias string
		}
	}
	lockSendSignUp          sync.RWMutex
	lockSendPasswordReset   sync.RWMutex
	lockSendEmailChange     sync.RWMutex
	lockSendUsernameChanged sync.RWMutex
}

func (mock *mailerMock) SendSignUp(ctx context.Context, to string, token string) error {
	if mock.SendSignUpFunc == nil {
		panic("mailerMock.SendSignUpFunc: method is nil but mailer.SendSignUp was just called")
	}
	callInfo := struct {
		To    string
		Token string
	}{To: to, Token: token}
	mock.lockSendSignUp.Lock()
	mock.calls.SendSignUp = append(mock.calls.SendSignUp, callInfo)
	mock.lockSendSignUp.Unlock()
	return mock.SendSignUpFunc(ctx, to, token)
}

func (mock *mailerMock) SendSignUpCalls() []struct {
	To    string
	Token string
} {
	mock.lockSendSignUp.RLock()
	calls := mock.calls.SendSignUp
	mock.lockSendSignUp.RUnlock()
	return calls
}

func (mock *mailerMock) SendPasswordReset(ctx context.Context, to string, token string) error {
	if mock.SendPasswordResetFunc == nil {
		panic("mailerMock.SendPasswordResetFunc: method is nil but mailer.SendPasswordReset was just called")
	}
	callInfo := struct {
		To    string
		Token string
	}{To: to, Token: token}
	mock.lockSendPasswordReset.Lock()
	mock.calls.SendPasswordReset = append(mock.calls.SendPasswordReset, callInfo)
	mock.lockSendPasswordReset.Unlock()
	return mock.SendPasswordResetFunc(ctx, to, token)
}

func (mock *mailerMock) SendPasswordResetCalls() []struct {
	To    string
	Token string
} {
	mock.lockSendPasswordReset.RLock()
	calls := mock.calls.SendPasswordReset
	mock.lockSendPasswordReset.RUnlock()
	return calls
}

func (mock *mailerMock) SendEmailChange(ctx context.Context, to string, token string) error {
	if mock.SendEmailChangeFunc == nil {
		panic("mailerMock.SendEmailChangeFunc: method is nil but mailer.SendEmailChange was just called")
	}
	callInfo := struct {
		To    string
		Token string
	}{To: to, Token: token}
	mock.lockSendEmailChange.Lock()
	mock.calls.SendEmailChange = append(mock.calls.SendEmailChange, callInfo)
	mock.lockSendEmailChange.Unlock()
	return mock.SendEmailChangeFunc(ctx, to, token)
}

func (mock *mailerMock) SendEmailChangeCalls() []struct {
	To    string
	Token string
} {
	mock.lockSendEmailChange.RLock()
	calls := mock.calls.SendEmailChange
	mock.lockSendEmailChange.RUnlock()
	return calls
}

func (mock *mailerMock) SendUsernameChanged(ctx context.Context, to string, oldAlias *string, newAlias string) error {
	if mock.SendUsernameChangedFunc == nil {
		panic("mailerMock.SendUsernameChangedFunc: method is nil but mailer.SendUsernameChanged was just called")
	}
	callInfo := struct {
		To       string
		OldAlias *string
		NewAlias string
	}{To: to, OldAlias: oldAlias, NewAlias: newAlias}
	mock.lockSendUsernameChanged.Lock()
	mock.calls.SendUsernameChanged = append(mock.calls.SendUsernameChanged, callInfo)
	mock.lockSendUsernameChanged.Unlock()
	return mock.SendUsernameChangedFunc(ctx, to, oldAlias, newAlias)
}

func (mock *mailerMock) SendUsernameChangedCalls() []struct {
	To       string
	OldAlias *string
	NewAlias string
} {
	mock.lockSendUsernameChanged.RLock()
	calls := mock.calls.SendUsernameChanged
	mock.lockSendUsernameChanged.RUnlock()
	return calls
}
