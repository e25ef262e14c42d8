package profile

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/account-service/internal/domain"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

const (
	minUsernameLen = 3
	maxUsernameLen = 32
	minPasswordLen = 8
	// bcrypt ignores everything after 72 bytes.
	maxPasswordBytes = 72
	maxEmailLen      = 254
	maxAliasLen      = 32
	maxTokenLen      = 128
)

// SignUpInput holds parameters for the sign-up operation.
type SignUpInput struct {
	Username string
	Email    string
	Password string
}

func (i *SignUpInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = domain.NormalizeEmail(i.Email)
}

// Validate validates the sign-up input.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError
	errs = appendUsernameErrs(errs, "username", i.Username)
	errs = appendEmailErrs(errs, "email", i.Email)
	errs = appendPasswordErrs(errs, "password", i.Password)
	return toValidationError(errs)
}

// SignInInput holds parameters for the sign-in operation.
type SignInInput struct {
	Identifier string
	Password   string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Identifier) == "" {
		errs = append(errs, domain.FieldError{Field: "identifier", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	return toValidationError(errs)
}

// RequestEmailChangeInput holds parameters for requesting an email change.
type RequestEmailChangeInput struct {
	NewEmail string
	Password string
}

// Validate validates the email change input.
func (i RequestEmailChangeInput) Validate() error {
	var errs []domain.FieldError
	errs = appendEmailErrs(errs, "new_email", i.NewEmail)
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	return toValidationError(errs)
}

// ChangeAliasInput holds parameters for changing the public username.
type ChangeAliasInput struct {
	NewAlias string
	Password string
}

// Validate validates the alias change input.
func (i ChangeAliasInput) Validate() error {
	var errs []domain.FieldError
	alias := strings.TrimSpace(i.NewAlias)
	switch {
	case alias == "":
		errs = append(errs, domain.FieldError{Field: "new_alias", Message: "required"})
	case utf8.RuneCountInString(alias) > maxAliasLen:
		errs = append(errs, domain.FieldError{Field: "new_alias", Message: "too long"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	return toValidationError(errs)
}

// UpdatePasswordInput holds parameters for changing the password of a signed-in user.
type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the password update input.
func (i UpdatePasswordInput) Validate() error {
	var errs []domain.FieldError
	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	errs = appendPasswordErrs(errs, "new_password", i.NewPassword)
	return toValidationError(errs)
}

// SubmitPasswordResetInput holds parameters for completing a password reset.
type SubmitPasswordResetInput struct {
	Token       string
	NewPassword string
}

// Validate validates the password reset input.
func (i SubmitPasswordResetInput) Validate() error {
	var errs []domain.FieldError
	errs = appendTokenErrs(errs, i.Token)
	errs = appendPasswordErrs(errs, "new_password", i.NewPassword)
	return toValidationError(errs)
}

func appendUsernameErrs(errs []domain.FieldError, field, v string) []domain.FieldError {
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(v) < minUsernameLen:
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	case len(v) > maxUsernameLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	case !usernameRe.MatchString(v):
		return append(errs, domain.FieldError{Field: field, Message: "must be alphanumeric"})
	}
	return errs
}

func appendEmailErrs(errs []domain.FieldError, field, v string) []domain.FieldError {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len(v) > maxEmailLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	case !domain.LooksLikeEmail(v) || strings.ContainsAny(v, " \t\r\n"):
		return append(errs, domain.FieldError{Field: field, Message: "invalid email"})
	}
	return errs
}

func appendPasswordErrs(errs []domain.FieldError, field, v string) []domain.FieldError {
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(v) < minPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	case len(v) > maxPasswordBytes:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func appendTokenErrs(errs []domain.FieldError, v string) []domain.FieldError {
	switch {
	case v == "":
		return append(errs, domain.FieldError{Field: "token", Message: "required"})
	case len(v) > maxTokenLen:
		return append(errs, domain.FieldError{Field: "token", Message: "too long"})
	}
	return errs
}

func toValidationError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
