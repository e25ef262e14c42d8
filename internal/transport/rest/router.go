package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/account-service/internal/config"
	"github.com/heartmarshall/account-service/internal/transport/middleware"
	"github.com/heartmarshall/account-service/internal/transport/respond"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Limiter   *middleware.RateLimiter
	Tokens    tokenValidator

	Health *HealthHandler
	Auth   *AuthHandler
	Me     *MeHandler
	Ledger *LedgerHandler
}

// NewRouter builds the HTTP handler of the service.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(d.CORS))
	r.Use(middleware.Auth(d.Tokens, d.Logger))
	r.Use(middleware.Logger(d.Logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.Message(w, http.StatusNotFound, "ROUTE_NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respond.Message(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(d.Limiter.Limit("auth", d.RateLimit.AuthPerMinute))

			r.Post("/sign-up", d.Auth.SignUp)
			r.Post("/sign-up/resend", d.Auth.ResendSignUpToken)
			r.Post("/sign-up/confirm", d.Auth.ConfirmSignUp)
			r.Post("/sign-in", d.Auth.SignIn)
			r.Post("/password/forgot", d.Auth.ForgotPassword)
			r.Post("/password/reset/validate", d.Auth.ValidatePasswordReset)
			r.Post("/password/reset", d.Auth.SubmitPasswordReset)
			r.Post("/email/confirm", d.Auth.ConfirmEmailChange)
		})

		r.Route("/me", func(r chi.Router) {
			r.Get("/", d.Me.Me)
			r.Post("/email", d.Me.RequestEmailChange)
			r.Put("/alias", d.Me.ChangeAlias)
			r.Put("/password", d.Me.UpdatePassword)
			r.Get("/activities", d.Me.Activities)
		})

		r.Get("/users", d.Me.FindUser)
		r.Get("/users/{id}", d.Me.UserByID)

		r.Get("/wallets/{id}", d.Ledger.Wallet)
		r.Get("/wallets/{id}/transactions", d.Ledger.Transactions)

		r.Route("/mwp", func(r chi.Router) {
			r.Post("/wallets", d.Ledger.CreateWallet)
			r.Post("/wallets/rollback", d.Ledger.CreateWalletRollback)
			r.Post("/transactions/boost", d.Ledger.CreateBoostTransaction)
			r.Post("/transactions/boost/rollback", d.Ledger.CreateBoostTransactionRollback)
			r.Post("/balance", d.Ledger.AddBalance)
			r.Post("/balance/rollback", d.Ledger.AddBalanceRollback)
			r.Post("/activities", d.Ledger.AddActivity)
			r.Post("/activities/rollback", d.Ledger.AddActivityRollback)
		})
	})

	return r
}
