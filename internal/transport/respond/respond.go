// Package respond writes JSON responses and maps domain errors to the JSON
// error body and HTTP status.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/pkg/ctxutil"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable code, a human message and optional details.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Error maps err to a status and body and writes it. Unexpected errors are
// logged and their message is hidden from the client.
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, body := Present(r.Context(), log, err)
	JSON(w, status, body)
}

// Message writes an error body with a fixed code and message.
func Message(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
}

// Present maps a domain error to its HTTP status and response body.
func Present(ctx context.Context, log *slog.Logger, err error) (int, ErrorBody) {
	status, code := Classify(err)
	detail := ErrorDetail{Code: code, Message: err.Error(), Details: details(err)}

	switch {
	case status == http.StatusInternalServerError:
		log.ErrorContext(ctx, "unexpected error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)))
		detail.Message = "internal error"
		detail.Details = nil
	case status == http.StatusBadGateway:
		log.WarnContext(ctx, "dependency failure",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)))
		detail.Message = "a downstream service failed, try again later"
	case errors.Is(err, domain.ErrUnauthorized):
		// Never say which credential was wrong.
		detail.Message = "unauthorized"
	}

	return status, ErrorBody{Error: detail}
}

// Classify returns the HTTP status and the most specific error code for err.
func Classify(err error) (int, string) {
	var (
		userNF     *domain.UserNotFoundError
		tokenNF    *domain.TokenNotFoundError
		ownership  *domain.OwnershipError
		inProgress *domain.PendingOperationInProgressError
		wrongOp    *domain.WrongPendingOperationError
		verified   *domain.AlreadyVerifiedError
		equalPwd   *domain.EqualPasswordError
		negative   *domain.NegativeWalletBalanceError
		committed  *domain.StateCommittedError
		mail       *domain.MailError
		cacheNew   *domain.CacheCreateTokenError
		cacheDel   *domain.CacheCleanupError
	)

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION"

	case errors.Is(err, domain.ErrMissingDigest):
		return http.StatusUnauthorized, "MISSING_DIGEST"
	case errors.Is(err, domain.ErrInvalidDigest):
		return http.StatusUnauthorized, "INVALID_DIGEST"
	case errors.Is(err, domain.ErrWrongPassword):
		return http.StatusUnauthorized, "WRONG_PASSWORD"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHENTICATED"

	case errors.As(err, &ownership):
		return http.StatusForbidden, "NOT_OWNER"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"

	case errors.As(err, &userNF):
		return http.StatusNotFound, "USER_NOT_FOUND"
	case errors.As(err, &tokenNF):
		return http.StatusNotFound, "TOKEN_NOT_FOUND"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"

	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "ALREADY_EXISTS"
	case errors.As(err, &inProgress):
		return http.StatusConflict, "PENDING_OPERATION_IN_PROGRESS"
	case errors.As(err, &wrongOp):
		return http.StatusConflict, "WRONG_PENDING_OPERATION"
	case errors.As(err, &verified):
		return http.StatusConflict, "ALREADY_VERIFIED"
	case errors.As(err, &equalPwd):
		return http.StatusConflict, "EQUAL_PASSWORD"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "CONFLICT"

	case errors.As(err, &negative):
		return http.StatusUnprocessableEntity, "NEGATIVE_WALLET_BALANCE"
	case errors.Is(err, domain.ErrInvariantViolation):
		return http.StatusUnprocessableEntity, "INVARIANT_VIOLATION"

	case errors.As(err, &committed):
		return http.StatusBadGateway, "STATE_COMMITTED"
	case errors.As(err, &mail):
		return http.StatusBadGateway, "MAIL_FAILURE"
	case errors.As(err, &cacheNew), errors.As(err, &cacheDel):
		return http.StatusBadGateway, "TOKEN_CACHE_FAILURE"
	case errors.Is(err, domain.ErrDependencyFailure):
		return http.StatusBadGateway, "DEPENDENCY_FAILURE"
	}
	return http.StatusInternalServerError, "INTERNAL"
}

// details exposes the structured fields of typed errors.
func details(err error) map[string]any {
	var (
		validation *domain.ValidationError
		ownership  *domain.OwnershipError
		inProgress *domain.PendingOperationInProgressError
		wrongOp    *domain.WrongPendingOperationError
		negative   *domain.NegativeWalletBalanceError
		committed  *domain.StateCommittedError
	)

	switch {
	case errors.As(err, &validation):
		fields := make([]map[string]string, len(validation.Errors))
		for i, fe := range validation.Errors {
			fields[i] = map[string]string{"field": fe.Field, "message": fe.Message}
		}
		return map[string]any{"fields": fields}
	case errors.As(err, &ownership):
		return map[string]any{"resource": ownership.Resource, "id": ownership.ID.String()}
	case errors.As(err, &inProgress):
		return map[string]any{"operation": inProgress.Operation.String()}
	case errors.As(err, &wrongOp):
		return map[string]any{"expected": wrongOp.Expected.String(), "actual": wrongOp.Actual.String()}
	case errors.As(err, &negative):
		return map[string]any{"walletId": negative.WalletID.String(), "balance": negative.Balance, "amount": negative.Amount}
	case errors.As(err, &committed):
		return map[string]any{"operation": committed.Operation.String()}
	}
	return nil
}
