package ledger

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
)

// MaxPostIDLength bounds the post reference stored with an activity.
const MaxPostIDLength = 128

// CreateWalletInput is the payload of CreateWallet.
type CreateWalletInput struct {
	TagID      uuid.UUID
	WalletType domain.WalletType
}

func (i CreateWalletInput) Validate() error {
	var errs []domain.FieldError
	if i.TagID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tagId", Message: "required"})
	}
	if !i.WalletType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "walletType", Message: "must be MONETARY or VIRTUAL"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AmountInput is the payload of CreateBoostTransaction and AddBalance.
type AmountInput struct {
	WalletID uuid.UUID
	Amount   int64
}

func (i AmountInput) Validate() error {
	var errs []domain.FieldError
	if i.WalletID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "walletId", Message: "required"})
	}
	if i.Amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddActivityInput is the payload of AddActivity.
type AddActivityInput struct {
	ActivityType domain.ActivityType
	PostID       string
}

func (i AddActivityInput) Validate() error {
	var errs []domain.FieldError
	if !i.ActivityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activityType", Message: "unknown activity type"})
	}
	switch {
	case i.PostID == "":
		errs = append(errs, domain.FieldError{Field: "postId", Message: "required"})
	case len(i.PostID) > MaxPostIDLength:
		errs = append(errs, domain.FieldError{Field: "postId", Message: "too long"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError(field, "required")
	}
	return nil
}
