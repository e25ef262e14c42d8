package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/account-service/internal/domain"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type signUpRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=32"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type identifierRequest struct {
	Identifier string `json:"identifier" validate:"required,max=254"`
}

type tokenRequest struct {
	Token string `json:"token" validate:"required,max=128"`
}

type signInRequest struct {
	Identifier string `json:"identifier" validate:"required,max=254"`
	Password   string `json:"password" validate:"required,max=72"`
}

type passwordResetRequest struct {
	Token       string `json:"token" validate:"required,max=128"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

type emailChangeRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

type aliasRequest struct {
	NewAlias string `json:"newAlias" validate:"required,max=32"`
	Password string `json:"password" validate:"required,max=72"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,max=72"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}

type createWalletRequest struct {
	TagID      string `json:"tagId" validate:"required,uuid"`
	WalletType string `json:"walletType" validate:"required,oneof=MONETARY VIRTUAL"`
}

type amountRequest struct {
	WalletID string `json:"walletId" validate:"required,uuid"`
	Amount   int64  `json:"amount" validate:"gt=0"`
}

type addActivityRequest struct {
	ActivityType string `json:"activityType" validate:"required,oneof=POST_CHALLENGE POST_SUBMISSION POST_REPLY EDIT_CHALLENGE EDIT_SUBMISSION EDIT_REPLY"`
	PostID       string `json:"postId" validate:"required,max=128"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// publicUserResponse is what any signed-in user may see about another user.
type publicUserResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Alias       *string   `json:"alias,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// selfUserResponse is what a user sees about themselves.
type selfUserResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Alias            *string   `json:"alias,omitempty"`
	DisplayName      string    `json:"displayName"`
	PendingOperation string    `json:"pendingOperation"`
	PendingEmail     *string   `json:"pendingEmail,omitempty"`
	HasNsfwAllowed   bool      `json:"hasNsfwAllowed"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type signInResponse struct {
	AccessToken string           `json:"accessToken"`
	User        selfUserResponse `json:"user"`
}

type tokenValidResponse struct {
	Valid bool `json:"valid"`
}

type walletResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	WalletType string    `json:"walletType"`
	Balance    int64     `json:"balance"`
	TagID      string    `json:"tagId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type transactionResponse struct {
	ID              string    `json:"id"`
	WalletID        string    `json:"walletId"`
	TransactionType string    `json:"transactionType"`
	Amount          int64     `json:"amount"`
	CreatedAt       time.Time `json:"createdAt"`
}

type activityResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	ActivityType string    `json:"activityType"`
	PostID       string    `json:"postId"`
	CreatedAt    time.Time `json:"createdAt"`
}

type pageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor,omitempty"`
}

type pageResponse[T any] struct {
	Items    []T      `json:"items"`
	PageInfo pageInfo `json:"pageInfo"`
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toPublicUser(u *domain.User) publicUserResponse {
	return publicUserResponse{
		ID:          u.ID.String(),
		DisplayName: u.DisplayName(),
		Alias:       u.Alias,
		CreatedAt:   u.CreatedAt,
	}
}

func toSelfUser(u *domain.User) selfUserResponse {
	return selfUserResponse{
		ID:               u.ID.String(),
		Username:         u.Username,
		Email:            u.Email,
		Alias:            u.Alias,
		DisplayName:      u.DisplayName(),
		PendingOperation: u.PendingOperation.Kind().String(),
		PendingEmail:     u.PendingOperation.PendingEmail(),
		HasNsfwAllowed:   u.HasNsfwAllowed,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func toWallet(w *domain.Wallet) walletResponse {
	return walletResponse{
		ID:         w.ID.String(),
		UserID:     w.UserID.String(),
		WalletType: w.WalletType.String(),
		Balance:    w.Balance,
		TagID:      w.TagID.String(),
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func toTransaction(t *domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:              t.ID.String(),
		WalletID:        t.WalletID.String(),
		TransactionType: t.TransactionType.String(),
		Amount:          t.Amount,
		CreatedAt:       t.CreatedAt,
	}
}

func toActivity(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:           a.ID.String(),
		UserID:       a.UserID.String(),
		ActivityType: a.ActivityType.String(),
		PostID:       a.PostID,
		CreatedAt:    a.CreatedAt,
	}
}

func toPage[T, R any](p domain.Page[T], conv func(*T) R) pageResponse[R] {
	items := make([]R, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, conv(&p.Items[i]))
	}
	return pageResponse[R]{
		Items:    items,
		PageInfo: pageInfo{HasNextPage: p.HasNextPage, EndCursor: p.EndCursor},
	}
}

// parsePage reads ?first=&after= from the query string.
func parsePage(r *http.Request) (domain.PageRequest, error) {
	q := r.URL.Query()

	var req domain.PageRequest
	if raw := q.Get("first"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return req, domain.NewValidationError("first", "must be a positive integer")
		}
		req.First = n
	}
	if after := q.Get("after"); after != "" {
		req.After = &after
	}
	return req.Normalize(), nil
}
