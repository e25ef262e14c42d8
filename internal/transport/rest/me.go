package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/account-service/internal/domain"
	"github.com/heartmarshall/account-service/internal/service/profile"
	"github.com/heartmarshall/account-service/internal/transport/pipeline"
	"github.com/heartmarshall/account-service/internal/transport/respond"
)

// profileService defines the profile operations of a signed-in caller.
type profileService interface {
	Me(ctx context.Context, callerID uuid.UUID) (*domain.User, error)
	RequestEmailChange(ctx context.Context, callerID uuid.UUID, input profile.RequestEmailChangeInput) error
	ChangeAlias(ctx context.Context, callerID uuid.UUID, input profile.ChangeAliasInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, callerID uuid.UUID, input profile.UpdatePasswordInput) (*domain.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
}

type activityLister interface {
	ListActivities(ctx context.Context, callerID uuid.UUID, req domain.PageRequest) (domain.Page[domain.Activity], error)
}

// MeHandler serves the caller's own profile and user lookups.
type MeHandler struct {
	profiles   profileService
	activities activityLister
	validator  *pipeline.Validator
	log        *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(profiles profileService, activities activityLister, validator *pipeline.Validator, logger *slog.Logger) *MeHandler {
	return &MeHandler{
		profiles:   profiles,
		activities: activities,
		validator:  validator,
		log:        logger.With("handler", "me"),
	}
}

// Me handles GET /v1/me.
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	var user *domain.User
	ok := run(w, r, h.log, pipeline.NewCall("me", r),
		pipeline.Authenticate(),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			var err error
			user, err = h.profiles.Me(ctx, call.CallerID)
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusOK, toSelfUser(user))
	}
}

// RequestEmailChange handles POST /v1/me/email.
func (h *MeHandler) RequestEmailChange(w http.ResponseWriter, r *http.Request) {
	var req emailChangeRequest
	ok := run(w, r, h.log, pipeline.NewCall("request_email_change", r),
		pipeline.Authenticate(),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			return h.profiles.RequestEmailChange(ctx, call.CallerID, profile.RequestEmailChangeInput{
				NewEmail: req.NewEmail,
				Password: req.Password,
			})
		}),
	)
	if ok {
		accepted(w)
	}
}

// ChangeAlias handles PUT /v1/me/alias.
func (h *MeHandler) ChangeAlias(w http.ResponseWriter, r *http.Request) {
	var (
		req  aliasRequest
		user *domain.User
	)
	ok := run(w, r, h.log, pipeline.NewCall("change_alias", r),
		pipeline.Authenticate(),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			var err error
			user, err = h.profiles.ChangeAlias(ctx, call.CallerID, profile.ChangeAliasInput{
				NewAlias: req.NewAlias,
				Password: req.Password,
			})
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusOK, toSelfUser(user))
	}
}

// UpdatePassword handles PUT /v1/me/password.
func (h *MeHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var (
		req  updatePasswordRequest
		user *domain.User
	)
	ok := run(w, r, h.log, pipeline.NewCall("update_password", r),
		pipeline.Authenticate(),
		pipeline.ValidateArgs(h.validator, &req),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			var err error
			user, err = h.profiles.UpdatePassword(ctx, call.CallerID, profile.UpdatePasswordInput{
				CurrentPassword: req.CurrentPassword,
				NewPassword:     req.NewPassword,
			})
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusOK, toSelfUser(user))
	}
}

// Activities handles GET /v1/me/activities.
func (h *MeHandler) Activities(w http.ResponseWriter, r *http.Request) {
	var page domain.Page[domain.Activity]
	ok := run(w, r, h.log, pipeline.NewCall("list_activities", r),
		pipeline.Authenticate(),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			req, err := parsePage(r)
			if err != nil {
				return err
			}
			page, err = h.activities.ListActivities(ctx, call.CallerID, req)
			return err
		}),
	)
	if ok {
		respond.JSON(w, http.StatusOK, toPage(page, toActivity))
	}
}

// UserByID handles GET /v1/users/{id}. The caller sees their own full profile
// and only the public view of anyone else.
func (h *MeHandler) UserByID(w http.ResponseWriter, r *http.Request) {
	var (
		user   *domain.User
		caller uuid.UUID
	)
	ok := run(w, r, h.log, pipeline.NewCall("user_by_id", r),
		pipeline.Authenticate(),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			id, err := parseUUID("id", chi.URLParam(r, "id"))
			if err != nil {
				return err
			}
			caller = call.CallerID
			user, err = h.profiles.UserByID(ctx, id)
			return err
		}),
	)
	if ok {
		h.writeUser(w, caller, user)
	}
}

// FindUser handles GET /v1/users?identifier=.
func (h *MeHandler) FindUser(w http.ResponseWriter, r *http.Request) {
	var (
		user   *domain.User
		caller uuid.UUID
	)
	ok := run(w, r, h.log, pipeline.NewCall("find_user", r),
		pipeline.Authenticate(),
		pipeline.Execute(func(ctx context.Context, call *pipeline.Call) error {
			var err error
			caller = call.CallerID
			user, err = h.profiles.FindUserByIdentifier(ctx, r.URL.Query().Get("identifier"))
			return err
		}),
	)
	if ok {
		h.writeUser(w, caller, user)
	}
}

func (h *MeHandler) writeUser(w http.ResponseWriter, caller uuid.UUID, user *domain.User) {
	if user.ID == caller {
		respond.JSON(w, http.StatusOK, toSelfUser(user))
		return
	}
	respond.JSON(w, http.StatusOK, toPublicUser(user))
}
