package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/service/profile"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	SignUpFunc                func(ctx context.Context, input profile.SignUpInput) (*domain.User, error)
	ResendSignUpTokenFunc     func(ctx context.Context, identifier string) error
	ConfirmSignUpFunc         func(ctx context.Context, token string) (*domain.User, error)
	SignInFunc                func(ctx context.Context, input profile.SignInInput) (*profile.SignInResult, error)
	ForgotPasswordFunc        func(ctx context.Context, identifier string) error
	ValidatePasswordResetFunc func(ctx context.Context, token string) error
	SubmitPasswordResetFunc   func(ctx context.Context, input profile.SubmitPasswordResetInput) (*domain.User, error)
	ConfirmEmailChangeFunc    func(ctx context.Context, token string) (*domain.User, error)

	calls struct {
		SignUp []struct {
			Input profile.SignUpInput
		}
		ResendSignUpToken []struct {
			Identifier string
		}
		ConfirmSignUp []struct {
			Token string
		}
		SignIn []struct {
			Input profile.SignInInput
		}
		ForgotPassword []struct {
			Identifier string
		}
		ValidatePasswordReset []struct {
			Token string
		}
		SubmitPasswordReset []struct {
			Input profile.SubmitPasswordResetInput
		}
		ConfirmEmailChange []struct {
			Token string
		}
	}
	lockSignUp                sync.RWMutex
	lockResendSignUpToken     sync.RWMutex
	lockConfirmSignUp         sync.RWMutex
	lockSignIn                sync.RWMutex
	lockForgotPassword        sync.RWMutex
	lockValidatePasswordReset sync.RWMutex
	lockSubmitPasswordReset   sync.RWMutex
	lockConfirmEmailChange    sync.RWMutex
}

func (mock *authServiceMock) SignUp(ctx context.Context, input profile.SignUpInput) (*domain.User, error) {
	if mock.SignUpFunc == nil {
		panic("authServiceMock.SignUpFunc: method is nil but authService.SignUp was just called")
	}
	callInfo := struct {
		Input profile.SignUpInput
	}{Input: input}
	mock.lockSignUp.Lock()
	mock.calls.SignUp = append(mock.calls.SignUp, callInfo)
	mock.lockSignUp.Unlock()
	return mock.SignUpFunc(ctx, input)
}

func (mock *authServiceMock) SignUpCalls() []struct {
	Input profile.SignUpInput
} {
	mock.lockSignUp.RLock()
	calls := mock.calls.SignUp
	mock.lockSignUp.RUnlock()
	return calls
}

func (mock *authServiceMock) ResendSignUpToken(ctx context.Context, identifier string) error {
	if mock.ResendSignUpTokenFunc == nil {
		panic("authServiceMock.ResendSignUpTokenFunc: method is nil but authService.ResendSignUpToken was just called")
	}
	callInfo := struct {
		Identifier string
	}{Identifier: identifier}
	mock.lockResendSignUpToken.Lock()
	mock.calls.ResendSignUpToken = append(mock.calls.ResendSignUpToken, callInfo)
	mock.lockResendSignUpToken.Unlock()
	return mock.ResendSignUpTokenFunc(ctx, identifier)
}

func (mock *authServiceMock) ResendSignUpTokenCalls() []struct {
	Identifier string
} {
	mock.lockResendSignUpToken.RLock()
	calls := mock.calls.ResendSignUpToken
	mock.lockResendSignUpToken.RUnlock()
	return calls
}

func (mock *authServiceMock) ConfirmSignUp(ctx context.Context, token string) (*domain.User, error) {
	if mock.ConfirmSignUpFunc == nil {
		panic("authServiceMock.ConfirmSignUpFunc: method is nil but authService.ConfirmSignUp was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockConfirmSignUp.Lock()
	mock.calls.ConfirmSignUp = append(mock.calls.ConfirmSignUp, callInfo)
	mock.lockConfirmSignUp.Unlock()
	return mock.ConfirmSignUpFunc(ctx, token)
}

func (mock *authServiceMock) ConfirmSignUpCalls() []struct {
	Token string
} {
	mock.lockConfirmSignUp.RLock()
	calls := mock.calls.ConfirmSignUp
	mock.lockConfirmSignUp.RUnlock()
	return calls
}

func (mock *authServiceMock) SignIn(ctx context.Context, input profile.SignInInput) (*profile.SignInResult, error) {
	if mock.SignInFunc == nil {
		panic("authServiceMock.SignInFunc: method is nil but authService.SignIn was just called")
	}
	callInfo := struct {
		Input profile.SignInInput
	}{Input: input}
	mock.lockSignIn.Lock()
	mock.calls.SignIn = append(mock.calls.SignIn, callInfo)
	mock.lockSignIn.Unlock()
	return mock.SignInFunc(ctx, input)
}

func (mock *authServiceMock) SignInCalls() []struct {
	Input profile.SignInInput
} {
	mock.lockSignIn.RLock()
	calls := mock.calls.SignIn
	mock.lockSignIn.RUnlock()
	return calls
}

func (mock *authServiceMock) ForgotPassword(ctx context.Context, identifier string) error {
	if mock.ForgotPasswordFunc == nil {
		panic("authServiceMock.ForgotPasswordFunc: method is nil but authService.ForgotPassword was just called")
	}
	callInfo := struct {
		Identifier string
	}{Identifier: identifier}
	mock.lockForgotPassword.Lock()
	mock.calls.ForgotPassword = append(mock.calls.ForgotPassword, callInfo)
	mock.lockForgotPassword.Unlock()
	return mock.ForgotPasswordFunc(ctx, identifier)
}

func (mock *authServiceMock) ForgotPasswordCalls() []struct {
	Identifier string
} {
	mock.lockForgotPassword.RLock()
	calls := mock.calls.ForgotPassword
	mock.lockForgotPassword.RUnlock()
	return calls
}

func (mock *authServiceMock) ValidatePasswordReset(ctx context.Context, token string) error {
	if mock.ValidatePasswordResetFunc == nil {
		panic("authServiceMock.ValidatePasswordResetFunc: method is nil but authService.ValidatePasswordReset was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidatePasswordReset.Lock()
	mock.calls.ValidatePasswordReset = append(mock.calls.ValidatePasswordReset, callInfo)
	mock.lockValidatePasswordReset.Unlock()
	return mock.ValidatePasswordResetFunc(ctx, token)
}

func (mock *authServiceMock) ValidatePasswordResetCalls() []struct {
	Token string
} {
	mock.lockValidatePasswordReset.RLock()
	calls := mock.calls.ValidatePasswordReset
	mock.lockValidatePasswordReset.RUnlock()
	return calls
}

func (mock *authServiceMock) SubmitPasswordReset(ctx context.Context, input profile.SubmitPasswordResetInput) (*domain.User, error) {
	if mock.SubmitPasswordResetFunc == nil {
		panic("authServiceMock.SubmitPasswordResetFunc: method is nil but authService.SubmitPasswordReset was just called")
	}
	callInfo := struct {
		Input profile.SubmitPasswordResetInput
	}{Input: input}
	mock.lockSubmitPasswordReset.Lock()
	mock.calls.SubmitPasswordReset = append(mock.calls.SubmitPasswordReset, callInfo)
	mock.lockSubmitPasswordReset.Unlock()
	return mock.SubmitPasswordResetFunc(ctx, input)
}

func (mock *authServiceMock) SubmitPasswordResetCalls() []struct {
	Input profile.SubmitPasswordResetInput
} {
	mock.lockSubmitPasswordReset.RLock()
	calls := mock.calls.SubmitPasswordReset
	mock.lockSubmitPasswordReset.RUnlock()
	return calls
}

func (mock *authServiceMock) ConfirmEmailChange(ctx context.Context, token string) (*domain.User, error) {
	if mock.ConfirmEmailChangeFunc == nil {
		panic("authServiceMock.ConfirmEmailChangeFunc: method is nil but authService.ConfirmEmailChange was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockConfirmEmailChange.Lock()
	mock.calls.ConfirmEmailChange = append(mock.calls.ConfirmEmailChange, callInfo)
	mock.lockConfirmEmailChange.Unlock()
	return mock.ConfirmEmailChangeFunc(ctx, token)
}

func (mock *authServiceMock) ConfirmEmailChangeCalls() []struct {
	Token string
} {
	mock.lockConfirmEmailChange.RLock()
	calls := mock.calls.ConfirmEmailChange
	mock.lockConfirmEmailChange.RUnlock()
	return calls
}
