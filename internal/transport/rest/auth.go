package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/service/profile"
	"github.com/heartmarshall/account-service/internal/transport/pipeline"
	"github.com/heartmarshall/account-service/internal/transport/respond"
)

// authService defines the profile flows reachable without a session.
type authService interface {
	SignUp(ctx context.Context, input profile.SignUpInput) (*domain.User, error)
	ResendSignUpToken(ctx context.Context, identifier string) error
	ConfirmSignUp(ctx context.Context, token string) (*domain.User, error)
	SignIn(ctx context.Context, input profile.SignInInput) (*profile.SignInResult, error)
	ForgotPassword(ctx context.Context, identifier string) error
	ValidatePasswordReset(ctx context.Context, token string) error
	SubmitPasswordReset(ctx context.Context, input profile.SubmitPasswordResetInput) (*domain.User, error)
	ConfirmEmailChange(ctx context.Context, token string) (*domain.User, error)
}

// AuthHandler serves the public sign-up, sign-in and token confirmation endpoints.
type AuthHandler struct {
	svc       authService
	validator *pipeline.Validator
	log       *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, validator *pipeline.Validator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, validator: validator, log: logger.With("handler", "auth")}
}

// SignUp handles POST /v1/auth/sign-up.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var (
		req  signUpRequest
		user *domain.User
	)
	ok := run(w, r, h.log, pipeline.NewCall("sign_up", r),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, _ *pipeline.Call) error {
			var err error
			user, err = h.svc.SignUp(ctx, profile.SignUpInput{
				Username: req.Username,
				Email:    req.Email,
				Password: req.Password,
			})
			return err
		}),
	)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusCreated, toSelfUser(user))
}

// ResendSignUpToken handles POST /v1/auth/sign-up/resend.
func (h *AuthHandler) ResendSignUpToken(w http.ResponseWriter, r *http.Request) {
	var req identifierRequest
	ok := run(w, r, h.log, pipeline.NewCall("resend_sign_up_token", r),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, _ *pipeline.Call) error {
			return h.svc.ResendSignUpToken(ctx, req.Identifier)
		}),
	)
	if ok {
		accepted(w)
	}
}

// ConfirmSignUp handles POST /v1/auth/sign-up/confirm.
func (h *AuthHandler) ConfirmSignUp(w http.ResponseWriter, r *http.Request) {
	h.confirm(w, r, "confirm_sign_up", h.svc.ConfirmSignUp)
}

// ConfirmEmailChange handles POST /v1/auth/email/confirm.
func (h *AuthHandler) ConfirmEmailChange(w http.ResponseWriter, r *http.Request) {
	h.confirm(w, r, "confirm_email_change", h.svc.ConfirmEmailChange)
}

func (h *AuthHandler) confirm(w http.ResponseWriter, r *http.Request, op string, fn func(context.Context, string) (*domain.User, error)) {
	var (
		req  tokenRequest
		user *domain.User
	)
	ok := run(w, r, h.log, pipeline.NewCall(op, r),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, _ *pipeline.Call) error {
			var err error
			user, err = fn(ctx, req.Token)
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusOK, toSelfUser(user))
	}
}

// SignIn handles POST /v1/auth/sign-in.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var (
		req    signInRequest
		result *profile.SignInResult
	)
	ok := run(w, r, h.log, pipeline.NewCall("sign_in", r),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, _ *pipeline.Call) error {
			var err error
			result, err = h.svc.SignIn(ctx, profile.SignInInput{
				Identifier: req.Identifier,
				Password:   req.Password,
			})
			return err
		}),
	)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, signInResponse{
		AccessToken: result.AccessToken,
		User:        toSelfUser(result.User),
	})
}

// ForgotPassword handles POST /v1/auth/password/forgot.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req identifierRequest
	ok := run(w, r, h.log, pipeline.NewCall("forgot_password", r),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, _ *pipeline.Call) error {
			return h.svc.ForgotPassword(ctx, req.Identifier)
		}),
	)
	if ok {
		accepted(w)
	}
}

// ValidatePasswordReset handles POST /v1/auth/password/reset/validate.
func (h *AuthHandler) ValidatePasswordReset(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	ok := run(w, r, h.log, pipeline.NewCall("validate_password_reset", r),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, _ *pipeline.Call) error {
			return h.svc.ValidatePasswordReset(ctx, req.Token)
		}),
	)
	if ok {
		respond.JSON(w, http.StatusOK, tokenValidResponse{Valid: true})
	}
}

// SubmitPasswordReset handles POST /v1/auth/password/reset.
func (h *AuthHandler) SubmitPasswordReset(w http.ResponseWriter, r *http.Request) {
	var (
		req  passwordResetRequest
		user *domain.User
	)
	ok := run(w, r, h.log, pipeline.NewCall("submit_password_reset", r),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, _ *pipeline.Call) error {
			var err error
			user, err = h.svc.SubmitPasswordReset(ctx, profile.SubmitPasswordResetInput{
				Token:       req.Token,
				NewPassword: req.NewPassword,
			})
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusOK, toSelfUser(user))
	}
}
