// Package mailer turns account notifications into queued mail jobs and
// delivers queued jobs over SMTP.
package mailer

import (
	"time"

	"github.com/google/uuid"
)

// Template names a notification mail.
type Template string

const (
	TemplateSignUp          Template = "signUp"
	TemplatePasswordReset   Template = "pwdReset"
	TemplateEmailChange     Template = "emailChange"
	TemplateUsernameChanged Template = "usernameChanged"
)

func (t Template) String() string { return string(t) }

func (t Template) IsValid() bool {
	switch t {
	case TemplateSignUp, TemplatePasswordReset, TemplateEmailChange, TemplateUsernameChanged:
		return true
	}
	return false
}

// RoutingKey returns the AMQP routing key jobs of this template are published with.
func (t Template) RoutingKey() string { return "mail." + string(t) }

// Job is the queued unit of mail work. It carries the template arguments,
// never rendered content, so the worker owns presentation.
type Job struct {
	ID        uuid.UUID `json:"id"`
	Template  Template  `json:"template"`
	Recipient string    `json:"recipient"`
	Token     string    `json:"token,omitempty"`
	OldAlias  *string   `json:"old_alias,omitempty"`
	NewAlias  string    `json:"new_alias,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
